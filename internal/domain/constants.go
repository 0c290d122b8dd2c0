package domain

import "github.com/m04kA/barbershop-booking/pkg/types"

// Slot generation
const (
	SlotStepMinutes               = 30 // fixed stride between candidate starts
	DefaultServiceDurationMinutes = 30 // assumed when an appointment references an unknown service
)

// Default schedule values for weekdays without a stored entry
const (
	DefaultOpenTime  types.TimeString = "09:00"
	DefaultCloseTime types.TimeString = "18:00"
)

// Business validation constants
const (
	MinDayOfWeek              = 0
	MaxDayOfWeek              = 6
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxServiceNameLength      = 100
	MaxClientNameLength       = 100
	MinPhoneDigits            = 8
	MaxPhoneDigits            = 15
	MaxNotesLength            = 500
	MaxBlockReasonLength      = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DeletedServiceName is shown for appointments whose service no longer exists
const DeletedServiceName = "Услуга удалена"
