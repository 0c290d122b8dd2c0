package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/availability"
	"github.com/m04kA/barbershop-booking/internal/domain"
	catalogRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/catalog"
	"github.com/m04kA/barbershop-booking/pkg/logger"
)

type fakeServices map[int64]*domain.Service

func (f fakeServices) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	if s, ok := f[id]; ok {
		return s, nil
	}
	return nil, catalogRepo.ErrServiceNotFound
}

type fakeLoader struct {
	data  availability.DayData
	err   error
	calls int
}

func (f *fakeLoader) Load(context.Context, time.Time) (availability.DayData, error) {
	f.calls++
	return f.data, f.err
}

type fakeTx struct{ readOnlyCalls int }

func (f *fakeTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	f.readOnlyCalls++
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func mondayHours() []domain.WorkingHours {
	return []domain.WorkingHours{
		{DayOfWeek: 0, IsOpen: false, OpenTime: "09:00", CloseTime: "18:00"},
		{DayOfWeek: 1, IsOpen: true, OpenTime: "09:00", CloseTime: "19:00"},
	}
}

func newUseCase(loader *fakeLoader, now time.Time, minNotice int) (*UseCase, *fakeTx) {
	tx := &fakeTx{}
	uc := NewUseCase(
		fakeServices{
			1: {ID: 1, Name: "Corte de Cabelo", DurationMinutes: 30, Active: true},
			3: {ID: 3, Name: "Corte + Barba", DurationMinutes: 45, Active: true},
			9: {ID: 9, Name: "Antigo", DurationMinutes: 30, Active: false},
		},
		loader,
		tx,
		minNotice,
		logger.NewNop(),
	)
	uc.timeProvider = fixedTime{now: now}
	return uc, tx
}

func TestExecute_ByService(t *testing.T) {
	day, _ := domain.ParseDate("2025-10-13")
	loader := &fakeLoader{data: availability.DayData{
		WorkingHours: mondayHours(),
		Appointments: []*domain.Appointment{
			{ID: 1, ServiceID: 3, Date: day, StartTime: "14:00", Status: domain.StatusConfirmed},
		},
		ServiceDurations: map[int64]int{3: 45},
	}}
	uc, tx := newUseCase(loader, time.Date(2025, 10, 10, 9, 0, 0, 0, time.Local), 0)

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-10-13", ServiceID: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, tx.readOnlyCalls)
	assert.Equal(t, 30, resp.DurationMinutes)
	require.Len(t, resp.Slots, 20)

	avail := map[string]bool{}
	for _, s := range resp.Slots {
		avail[s.Time.String()] = s.Available
	}
	assert.False(t, avail["14:00"])
	assert.False(t, avail["14:30"])
	assert.True(t, avail["13:30"])
	assert.True(t, avail["15:00"])
}

func TestExecute_ByDuration(t *testing.T) {
	loader := &fakeLoader{data: availability.DayData{WorkingHours: mondayHours()}}
	uc, _ := newUseCase(loader, time.Date(2025, 10, 10, 9, 0, 0, 0, time.Local), 0)

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-10-13", DurationMinutes: 60})
	require.NoError(t, err)
	assert.Equal(t, "18:00", resp.Slots[len(resp.Slots)-1].Time.String())
}

func TestExecute_ClosedDayReturnsEmpty(t *testing.T) {
	loader := &fakeLoader{data: availability.DayData{WorkingHours: mondayHours()}}
	uc, _ := newUseCase(loader, time.Date(2025, 10, 10, 9, 0, 0, 0, time.Local), 0)

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-10-12", ServiceID: 1})
	require.NoError(t, err)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_PastDateSkipsLoading(t *testing.T) {
	loader := &fakeLoader{data: availability.DayData{WorkingHours: mondayHours()}}
	uc, _ := newUseCase(loader, time.Date(2025, 10, 20, 9, 0, 0, 0, time.Local), 0)

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-10-13", ServiceID: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Zero(t, loader.calls)
}

func TestExecute_TodayHidesElapsedSlots(t *testing.T) {
	loader := &fakeLoader{data: availability.DayData{WorkingHours: mondayHours()}}
	uc, _ := newUseCase(loader, time.Date(2025, 10, 13, 10, 5, 0, 0, time.Local), 30)

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-10-13", ServiceID: 1})
	require.NoError(t, err)

	avail := map[string]bool{}
	for _, s := range resp.Slots {
		avail[s.Time.String()] = s.Available
	}
	assert.False(t, avail["09:00"])
	assert.False(t, avail["10:30"])
	assert.True(t, avail["11:00"])
	assert.Equal(t, "09:00", resp.Slots[0].Time.String())
}

func TestExecute_Errors(t *testing.T) {
	now := time.Date(2025, 10, 10, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		req     *Request
		loadErr error
		wantErr error
	}{
		{name: "malformed date", req: &Request{Date: "13-10-2025", ServiceID: 1}, wantErr: ErrInvalidDate},
		{name: "no service and no duration", req: &Request{Date: "2025-10-13"}, wantErr: ErrInvalidDuration},
		{name: "negative duration", req: &Request{Date: "2025-10-13", DurationMinutes: -5}, wantErr: ErrInvalidDuration},
		{name: "unknown service", req: &Request{Date: "2025-10-13", ServiceID: 42}, wantErr: ErrServiceNotFound},
		{name: "inactive service", req: &Request{Date: "2025-10-13", ServiceID: 9}, wantErr: ErrServiceNotFound},
		{name: "storage failure", req: &Request{Date: "2025-10-13", ServiceID: 1}, loadErr: errors.New("db down"), wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newUseCase(&fakeLoader{data: availability.DayData{WorkingHours: mondayHours()}, err: tt.loadErr}, now, 0)

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
