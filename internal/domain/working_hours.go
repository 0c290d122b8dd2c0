package domain

import (
	"errors"
	"fmt"

	"github.com/m04kA/barbershop-booking/pkg/types"
)

// ErrInvalidWorkingHours is returned when a working hours entry breaks its invariants
var ErrInvalidWorkingHours = errors.New("domain: invalid working hours")

// WorkingHours describes the shop schedule for one weekday (0=Sunday..6=Saturday)
type WorkingHours struct {
	DayOfWeek int
	IsOpen    bool
	OpenTime  types.TimeString
	CloseTime types.TimeString
}

// Validate checks the weekday range and, for open days, that opening precedes closing
func (w WorkingHours) Validate() error {
	if w.DayOfWeek < MinDayOfWeek || w.DayOfWeek > MaxDayOfWeek {
		return fmt.Errorf("%w: dayOfWeek %d out of range", ErrInvalidWorkingHours, w.DayOfWeek)
	}
	if err := w.OpenTime.Validate(); err != nil {
		return fmt.Errorf("%w: openTime: %v", ErrInvalidWorkingHours, err)
	}
	if err := w.CloseTime.Validate(); err != nil {
		return fmt.Errorf("%w: closeTime: %v", ErrInvalidWorkingHours, err)
	}
	if w.IsOpen && !w.OpenTime.IsBefore(w.CloseTime) {
		return fmt.Errorf("%w: openTime %s must be before closeTime %s", ErrInvalidWorkingHours, w.OpenTime, w.CloseTime)
	}
	return nil
}

// ClosedDay returns the entry reported for a weekday with no stored schedule
func ClosedDay(dayOfWeek int) WorkingHours {
	return WorkingHours{
		DayOfWeek: dayOfWeek,
		IsOpen:    false,
		OpenTime:  DefaultOpenTime,
		CloseTime: DefaultCloseTime,
	}
}
