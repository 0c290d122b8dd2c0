package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

type stubHours struct {
	hours []domain.WorkingHours
	err   error
}

func (s stubHours) GetAll(context.Context) ([]domain.WorkingHours, error) { return s.hours, s.err }

type stubBlocked struct{ blocked []domain.BlockedDate }

func (s stubBlocked) GetByDate(context.Context, time.Time) ([]domain.BlockedDate, error) {
	return s.blocked, nil
}

type stubAppointments struct {
	appointments []*domain.Appointment
	locked       *bool
}

func (s stubAppointments) GetByDate(context.Context, time.Time) ([]*domain.Appointment, error) {
	return s.appointments, nil
}

func (s stubAppointments) GetByDateForUpdate(context.Context, time.Time) ([]*domain.Appointment, error) {
	if s.locked != nil {
		*s.locked = true
	}
	return s.appointments, nil
}

type recordingDurations struct {
	requested []int64
	durations map[int64]int
}

func (r *recordingDurations) GetDurations(_ context.Context, ids []int64) (map[int64]int, error) {
	r.requested = ids
	return r.durations, nil
}

func TestLoader_Load(t *testing.T) {
	day := date(t, monday)
	durations := &recordingDurations{durations: map[int64]int{3: 45}}

	loader := NewLoader(
		stubHours{hours: weekHours("09:00", "19:00")},
		stubBlocked{},
		stubAppointments{appointments: []*domain.Appointment{
			appointment(t, monday, "10:00", 3, domain.StatusConfirmed),
			appointment(t, monday, "14:00", 3, domain.StatusPending),
			appointment(t, monday, "16:00", 1, domain.StatusPending),
		}},
		durations,
	)

	data, err := loader.Load(context.Background(), day)
	require.NoError(t, err)

	assert.Equal(t, []int64{3, 1}, durations.requested)
	assert.Len(t, data.WorkingHours, 7)
	assert.Len(t, data.Appointments, 3)
	assert.Equal(t, 45, ServiceDuration(data.ServiceDurations, 3))
	assert.Equal(t, domain.DefaultServiceDurationMinutes, ServiceDuration(data.ServiceDurations, 1))
}

func TestLoader_LoadError(t *testing.T) {
	loader := NewLoader(
		stubHours{err: errors.New("connection reset")},
		stubBlocked{},
		stubAppointments{},
		&recordingDurations{},
	)

	_, err := loader.Load(context.Background(), date(t, monday))
	assert.ErrorIs(t, err, ErrLoad)
}

func TestLoader_LockingOnlyForUpdate(t *testing.T) {
	locked := false
	loader := NewLoader(
		stubHours{hours: weekHours("09:00", "19:00")},
		stubBlocked{},
		stubAppointments{locked: &locked},
		&recordingDurations{},
	)

	_, err := loader.Load(context.Background(), date(t, monday))
	require.NoError(t, err)
	assert.False(t, locked)

	_, err = loader.LoadForUpdate(context.Background(), date(t, monday))
	require.NoError(t, err)
	assert.True(t, locked)
}
