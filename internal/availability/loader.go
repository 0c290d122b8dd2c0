package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// WorkingHoursReader источник расписания по дням недели
type WorkingHoursReader interface {
	GetAll(ctx context.Context) ([]domain.WorkingHours, error)
}

// BlockedDatesReader источник заблокированных дат
type BlockedDatesReader interface {
	GetByDate(ctx context.Context, date time.Time) ([]domain.BlockedDate, error)
}

// AppointmentsReader источник неотмененных записей на дату
type AppointmentsReader interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	GetByDateForUpdate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// ServiceDurationsReader источник длительностей услуг
type ServiceDurationsReader interface {
	GetDurations(ctx context.Context, ids []int64) (map[int64]int, error)
}

// Loader собирает DayData из хранилищ
// Если в ctx есть транзакция, все чтения выполняются в ней
type Loader struct {
	workingHours WorkingHoursReader
	blockedDates BlockedDatesReader
	appointments AppointmentsReader
	services     ServiceDurationsReader
}

// NewLoader создает загрузчик данных дня
func NewLoader(
	workingHours WorkingHoursReader,
	blockedDates BlockedDatesReader,
	appointments AppointmentsReader,
	services ServiceDurationsReader,
) *Loader {
	return &Loader{
		workingHours: workingHours,
		blockedDates: blockedDates,
		appointments: appointments,
		services:     services,
	}
}

// Load загружает расписание, блокировки, записи даты и длительности их услуг
// Строки не блокируются, подходит для read-only транзакции
func (l *Loader) Load(ctx context.Context, date time.Time) (DayData, error) {
	return l.load(ctx, date, l.appointments.GetByDate)
}

// LoadForUpdate как Load, но записи дня блокируются до конца транзакции
func (l *Loader) LoadForUpdate(ctx context.Context, date time.Time) (DayData, error) {
	return l.load(ctx, date, l.appointments.GetByDateForUpdate)
}

func (l *Loader) load(
	ctx context.Context,
	date time.Time,
	getAppointments func(ctx context.Context, date time.Time) ([]*domain.Appointment, error),
) (DayData, error) {
	hours, err := l.workingHours.GetAll(ctx)
	if err != nil {
		return DayData{}, fmt.Errorf("%w: working hours: %w", ErrLoad, err)
	}

	blocked, err := l.blockedDates.GetByDate(ctx, date)
	if err != nil {
		return DayData{}, fmt.Errorf("%w: blocked dates: %w", ErrLoad, err)
	}

	appointments, err := getAppointments(ctx, date)
	if err != nil {
		return DayData{}, fmt.Errorf("%w: appointments: %w", ErrLoad, err)
	}

	durations, err := l.services.GetDurations(ctx, serviceIDs(appointments))
	if err != nil {
		return DayData{}, fmt.Errorf("%w: service durations: %w", ErrLoad, err)
	}

	return DayData{
		WorkingHours:     hours,
		BlockedDates:     blocked,
		Appointments:     appointments,
		ServiceDurations: durations,
	}, nil
}

// serviceIDs возвращает уникальные ID услуг записей в порядке появления
func serviceIDs(appointments []*domain.Appointment) []int64 {
	seen := make(map[int64]struct{}, len(appointments))
	ids := make([]int64, 0, len(appointments))
	for _, apt := range appointments {
		if _, ok := seen[apt.ServiceID]; ok {
			continue
		}
		seen[apt.ServiceID] = struct{}{}
		ids = append(ids, apt.ServiceID)
	}
	return ids
}
