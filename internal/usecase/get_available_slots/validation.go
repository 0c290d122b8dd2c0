package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// validateRequest валидирует входные данные и возвращает разобранную дату
func validateRequest(req *Request) (time.Time, error) {
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	if req.ServiceID < 0 {
		return time.Time{}, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.ServiceID == 0 {
		if req.DurationMinutes <= 0 {
			return time.Time{}, fmt.Errorf("%w: either serviceID or a positive duration is required", ErrInvalidDuration)
		}
		if req.DurationMinutes > domain.MaxServiceDurationMinutes {
			return time.Time{}, fmt.Errorf("%w: duration exceeds %d minutes", ErrInvalidInput, domain.MaxServiceDurationMinutes)
		}
	}

	return date, nil
}

// markElapsedSlots помечает занятыми сегодняшние слоты, на которые уже поздно записываться
func markElapsedSlots(slots []domain.Slot, date, now time.Time, minNoticeMinutes int) {
	for i := range slots {
		if domain.IsTooLate(date, slots[i].Time, now, minNoticeMinutes) {
			slots[i].Available = false
		}
	}
}
