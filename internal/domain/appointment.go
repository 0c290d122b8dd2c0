package domain

import (
	"time"

	"github.com/m04kA/barbershop-booking/pkg/types"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// allowedTransitions lists the statuses reachable from each non-terminal status
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// Appointment represents a client's booking of a service at a date and time
type Appointment struct {
	ID          int64
	ClientName  string
	ClientPhone string
	ServiceID   int64
	Date        time.Time
	StartTime   types.TimeString
	Status      AppointmentStatus
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// IsTerminal returns true if no further status changes are allowed
func (a *Appointment) IsTerminal() bool {
	return a.Status.IsTerminal()
}

// IsValid returns true for a known status
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true for completed and cancelled
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether the status may change to next
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AppointmentsFilter фильтр для выборки записей (админская агенда и поиск клиента)
type AppointmentsFilter struct {
	StartDate        *time.Time         // Начало периода (включительно), nil - без ограничения
	EndDate          *time.Time         // Конец периода (включительно), nil - без ограничения
	Status           *AppointmentStatus // Фильтр по статусу
	ClientPhone      *string            // Фильтр по телефону клиента (нормализованному)
	IncludeCancelled bool               // Включать ли отмененные записи
	ForUpdate        bool               // Блокировать выбранные строки (только в read-write транзакции)
}

// IsSingleDay returns true if the filter selects exactly one date
func (f AppointmentsFilter) IsSingleDay() bool {
	return f.StartDate != nil && f.EndDate != nil && SameDay(*f.StartDate, *f.EndDate)
}
