package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/domain"
	blockedDateRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/blockeddate"
	"github.com/m04kA/barbershop-booking/internal/service/schedule/models"
	"github.com/m04kA/barbershop-booking/pkg/logger"
	"github.com/m04kA/barbershop-booking/pkg/ptr"
)

type memoryHours struct {
	hours        []domain.WorkingHours
	replaceCalls int
	err          error
}

func (m *memoryHours) GetAll(context.Context) ([]domain.WorkingHours, error) {
	return m.hours, m.err
}

func (m *memoryHours) ReplaceAll(_ context.Context, hours []domain.WorkingHours) error {
	m.replaceCalls++
	if m.err != nil {
		return m.err
	}
	m.hours = hours
	return nil
}

type memoryBlocked struct {
	items  []domain.BlockedDate
	nextID int64
}

func (m *memoryBlocked) Create(_ context.Context, b *domain.BlockedDate) (*domain.BlockedDate, error) {
	for _, existing := range m.items {
		if domain.SameDay(existing.Date, b.Date) {
			return nil, blockedDateRepo.ErrBlockedDateExists
		}
	}
	m.nextID++
	b.ID = m.nextID
	b.CreatedAt = time.Now()
	m.items = append(m.items, *b)
	return b, nil
}

func (m *memoryBlocked) GetAll(context.Context) ([]domain.BlockedDate, error) {
	return m.items, nil
}

func (m *memoryBlocked) Delete(_ context.Context, id int64) error {
	for i, b := range m.items {
		if b.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return blockedDateRepo.ErrBlockedDateNotFound
}

type countingTx struct{ calls int }

func (c *countingTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	c.calls++
	return fn(ctx)
}

func TestGetWorkingHours_FillsMissingDays(t *testing.T) {
	hours := &memoryHours{hours: []domain.WorkingHours{
		{DayOfWeek: 1, IsOpen: true, OpenTime: "09:00", CloseTime: "19:00"},
		{DayOfWeek: 6, IsOpen: true, OpenTime: "09:00", CloseTime: "17:00"},
	}}
	svc := NewService(hours, &memoryBlocked{}, &countingTx{}, logger.NewNop())

	resp, err := svc.GetWorkingHours(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.WorkingHours, 7)

	for i, entry := range resp.WorkingHours {
		assert.Equal(t, i, entry.DayOfWeek)
	}
	assert.True(t, resp.WorkingHours[1].IsOpen)
	assert.False(t, resp.WorkingHours[0].IsOpen)
	assert.Equal(t, "09:00", resp.WorkingHours[0].OpenTime)
	assert.Equal(t, "17:00", resp.WorkingHours[6].CloseTime)
}

func TestUpdateWorkingHours(t *testing.T) {
	hours := &memoryHours{}
	tx := &countingTx{}
	svc := NewService(hours, &memoryBlocked{}, tx, logger.NewNop())

	resp, err := svc.UpdateWorkingHours(context.Background(), &models.UpdateWorkingHoursRequest{
		WorkingHours: []models.WorkingHoursEntry{
			{DayOfWeek: 0, IsOpen: false},
			{DayOfWeek: 1, IsOpen: true, OpenTime: "8:00", CloseTime: "20:00"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 1, hours.replaceCalls)
	require.Len(t, hours.hours, 2)
	assert.Equal(t, domain.DefaultOpenTime, hours.hours[0].OpenTime)
	assert.Equal(t, "08:00", resp.WorkingHours[1].OpenTime)
	assert.False(t, resp.WorkingHours[2].IsOpen)
}

func TestUpdateWorkingHours_Validation(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.WorkingHoursEntry
	}{
		{name: "weekday out of range", entries: []models.WorkingHoursEntry{{DayOfWeek: 7, IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"}}},
		{name: "duplicate weekday", entries: []models.WorkingHoursEntry{
			{DayOfWeek: 1, IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"},
			{DayOfWeek: 1, IsOpen: false},
		}},
		{name: "open after close", entries: []models.WorkingHoursEntry{{DayOfWeek: 2, IsOpen: true, OpenTime: "18:00", CloseTime: "09:00"}}},
		{name: "open equals close", entries: []models.WorkingHoursEntry{{DayOfWeek: 2, IsOpen: true, OpenTime: "09:00", CloseTime: "09:00"}}},
		{name: "open day without times", entries: []models.WorkingHoursEntry{{DayOfWeek: 3, IsOpen: true}}},
		{name: "malformed time", entries: []models.WorkingHoursEntry{{DayOfWeek: 4, IsOpen: true, OpenTime: "nine", CloseTime: "18:00"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours := &memoryHours{}
			svc := NewService(hours, &memoryBlocked{}, &countingTx{}, logger.NewNop())

			_, err := svc.UpdateWorkingHours(context.Background(), &models.UpdateWorkingHoursRequest{WorkingHours: tt.entries})
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, hours.replaceCalls)
		})
	}
}

func TestUpdateWorkingHours_RepositoryError(t *testing.T) {
	hours := &memoryHours{err: errors.New("db down")}
	svc := NewService(hours, &memoryBlocked{}, &countingTx{}, logger.NewNop())

	_, err := svc.UpdateWorkingHours(context.Background(), &models.UpdateWorkingHoursRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestBlockedDates(t *testing.T) {
	blocked := &memoryBlocked{}
	svc := NewService(&memoryHours{}, blocked, &countingTx{}, logger.NewNop())
	ctx := context.Background()

	created, err := svc.AddBlockedDate(ctx, &models.CreateBlockedDateRequest{Date: "2025-12-25", Reason: ptr.Ptr(" Natal ")})
	require.NoError(t, err)
	assert.Equal(t, "2025-12-25", created.Date)
	require.NotNil(t, created.Reason)
	assert.Equal(t, "Natal", *created.Reason)

	_, err = svc.AddBlockedDate(ctx, &models.CreateBlockedDateRequest{Date: "2025-12-25"})
	assert.ErrorIs(t, err, ErrBlockedDateExists)

	_, err = svc.AddBlockedDate(ctx, &models.CreateBlockedDateRequest{Date: "25/12/2025"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	list, err := svc.ListBlockedDates(ctx)
	require.NoError(t, err)
	assert.Len(t, list.BlockedDates, 1)

	require.NoError(t, svc.RemoveBlockedDate(ctx, created.ID))
	assert.ErrorIs(t, svc.RemoveBlockedDate(ctx, created.ID), ErrBlockedDateNotFound)
}
