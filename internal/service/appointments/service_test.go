package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/domain"
	appointmentRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/appointment"
	"github.com/m04kA/barbershop-booking/internal/service/appointments/models"
	"github.com/m04kA/barbershop-booking/pkg/logger"
	"github.com/m04kA/barbershop-booking/pkg/ptr"
)

type memoryAppointments struct {
	items      map[int64]*domain.Appointment
	lastFilter domain.AppointmentsFilter
	err        error
	afterGet   func(id int64)
}

func (m *memoryAppointments) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if apt, ok := m.items[id]; ok {
		cp := *apt
		if m.afterGet != nil {
			m.afterGet(id)
		}
		return &cp, nil
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (m *memoryAppointments) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	result := make([]*domain.Appointment, 0)
	for _, apt := range m.items {
		if filter.ClientPhone != nil && apt.ClientPhone != *filter.ClientPhone {
			continue
		}
		result = append(result, apt)
	}
	return result, nil
}

func (m *memoryAppointments) UpdateStatus(_ context.Context, id int64, from, to domain.AppointmentStatus) (*domain.Appointment, error) {
	apt, ok := m.items[id]
	if !ok || apt.Status != from {
		return nil, appointmentRepo.ErrStatusChanged
	}
	apt.Status = to
	cp := *apt
	return &cp, nil
}

func (m *memoryAppointments) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	delete(m.items, id)
	return nil
}

type staticServices []*domain.Service

func (s staticServices) GetAll(context.Context, bool) ([]*domain.Service, error) { return s, nil }

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

type statusCounter map[string]int

func (c statusCounter) IncAppointmentStatus(status string) { c[status]++ }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newTestService(t *testing.T) (*Service, *memoryAppointments, statusCounter) {
	t.Helper()

	day, err := domain.ParseDate("2025-10-13")
	require.NoError(t, err)

	repo := &memoryAppointments{items: map[int64]*domain.Appointment{
		1: {ID: 1, ClientName: "João", ClientPhone: "11987654321", ServiceID: 1, Date: day, StartTime: "10:00", Status: domain.StatusPending},
		2: {ID: 2, ClientName: "Maria", ClientPhone: "11911112222", ServiceID: 7, Date: day, StartTime: "11:00", Status: domain.StatusCancelled},
	}}
	counter := statusCounter{}

	svc := NewService(
		repo,
		staticServices{{ID: 1, Name: "Corte de Cabelo", DurationMinutes: 30}},
		passthroughTx{},
		counter,
		logger.NewNop(),
	)
	svc.timeProvider = fixedTime{now: time.Date(2025, 10, 13, 8, 0, 0, 0, time.Local)}

	return svc, repo, counter
}

func TestGetByID_DeletedServiceFallback(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Corte de Cabelo", resp.ServiceName)
	assert.Equal(t, "2025-10-13", resp.Date)

	resp, err = svc.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, domain.DeletedServiceName, resp.ServiceName)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	svc, repo, counter := newTestService(t)
	ctx := context.Background()

	resp, err := svc.UpdateStatus(ctx, 1, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 1, counter["confirmed"])

	// confirmed -> pending запрещен
	_, err = svc.UpdateStatus(ctx, 1, &models.UpdateStatusRequest{Status: "pending"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, domain.StatusConfirmed, repo.items[1].Status)

	// cancelled - терминальный статус
	_, err = svc.UpdateStatus(ctx, 2, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.UpdateStatus(ctx, 1, &models.UpdateStatusRequest{Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateStatus(ctx, 99, &models.UpdateStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatus_ConcurrentCancelWins(t *testing.T) {
	svc, repo, counter := newTestService(t)

	// Другой администратор отменяет запись между чтением и обновлением
	repo.afterGet = func(id int64) {
		repo.items[id].Status = domain.StatusCancelled
	}

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, domain.StatusCancelled, repo.items[1].Status)
	assert.Zero(t, counter["confirmed"])
}

func TestList_Filters(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.List(ctx, &models.ListAppointmentsRequest{Date: ptr.Ptr("2025-10-13")})
	require.NoError(t, err)
	assert.True(t, repo.lastFilter.IsSingleDay())

	_, err = svc.List(ctx, &models.ListAppointmentsRequest{Period: ptr.Ptr("week")})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.StartDate)
	assert.Equal(t, "2025-10-13", domain.FormatDate(*repo.lastFilter.StartDate))
	assert.Equal(t, "2025-10-19", domain.FormatDate(*repo.lastFilter.EndDate))

	_, err = svc.List(ctx, &models.ListAppointmentsRequest{Period: ptr.Ptr("all"), Status: ptr.Ptr("pending")})
	require.NoError(t, err)
	assert.Nil(t, repo.lastFilter.StartDate)
	assert.Equal(t, domain.StatusPending, *repo.lastFilter.Status)

	_, err = svc.List(ctx, &models.ListAppointmentsRequest{From: ptr.Ptr("2025-10-20"), To: ptr.Ptr("2025-10-13")})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = svc.List(ctx, &models.ListAppointmentsRequest{Period: ptr.Ptr("year")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.err = errors.New("db down")
	_, err = svc.List(ctx, &models.ListAppointmentsRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestListByPhone_NormalizesPhone(t *testing.T) {
	svc, repo, _ := newTestService(t)

	resp, err := svc.ListByPhone(context.Background(), "(11) 98765-4321")
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, int64(1), resp.Appointments[0].ID)
	assert.True(t, repo.lastFilter.IncludeCancelled)

	_, err = svc.ListByPhone(context.Background(), "12")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	svc, repo, _ := newTestService(t)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.NotContains(t, repo.items, int64(1))

	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrAppointmentNotFound)
}
