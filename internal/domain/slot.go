package domain

import "github.com/m04kA/barbershop-booking/pkg/types"

// Slot is a candidate start time for a booking on a given day
// Unavailable slots are kept so clients can render them disabled
type Slot struct {
	Time      types.TimeString
	Available bool
}
