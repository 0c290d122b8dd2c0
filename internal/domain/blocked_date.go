package domain

import "time"

// BlockedDate is a calendar date on which the shop takes no bookings
type BlockedDate struct {
	ID        int64
	Date      time.Time
	Reason    *string
	CreatedAt time.Time
}
