package create_appointment

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/barbershop-booking/internal/availability"
	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// validatedRequest нормализованные данные запроса
type validatedRequest struct {
	clientName  string
	clientPhone string
	date        time.Time
	startTime   types.TimeString
	notes       *string
}

// validateRequest валидирует и нормализует входные данные запроса
func validateRequest(req *Request) (*validatedRequest, error) {
	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return nil, fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxClientNameLength {
		return nil, fmt.Errorf("%w: clientName exceeds %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if strings.TrimSpace(req.ClientPhone) == "" {
		return nil, fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}
	phone, err := domain.NormalizePhone(req.ClientPhone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPhone, req.ClientPhone)
	}

	if req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	if req.StartTime.IsZero() {
		return nil, fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	// Приводим "9:00" и "09:00:00" к виду "09:00"
	startTime, err := types.NewTimeStringFromString(req.StartTime.String())
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	var notes *string
	if req.Notes != nil {
		trimmed := strings.TrimSpace(*req.Notes)
		if utf8.RuneCountInString(trimmed) > domain.MaxNotesLength {
			return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
		}
		if trimmed != "" {
			notes = &trimmed
		}
	}

	return &validatedRequest{
		clientName:  name,
		clientPhone: phone,
		date:        date,
		startTime:   startTime,
		notes:       notes,
	}, nil
}

// validateBookingTime проверяет, что дата не в прошлом и до начала слота осталось достаточно времени
func validateBookingTime(date time.Time, startTime types.TimeString, now time.Time, minNoticeMinutes int) error {
	if domain.IsDateInPast(date, now) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	if domain.IsTooLate(date, startTime, now, minNoticeMinutes) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minNoticeMinutes)
	}

	return nil
}

// checkSlot проверяет, что время начала совпадает со свободным слотом дня
func checkSlot(date time.Time, startTime types.TimeString, duration int, data availability.DayData) error {
	slots, err := availability.ComputeSlots(domain.FormatDate(date), duration, data)
	if err != nil {
		return fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	// Пустой список: выходной или заблокированная дата
	if len(slots) == 0 {
		if availability.IsBlocked(data.BlockedDates, date) {
			return ErrDateBlocked
		}
		if !isOpen(data.WorkingHours, date) {
			return ErrShopClosed
		}
		return ErrInvalidTimeSlot
	}

	slot, ok := availability.FindSlot(slots, startTime)
	if !ok {
		return ErrInvalidTimeSlot
	}
	if !slot.Available {
		return ErrSlotNotAvailable
	}

	return nil
}

// isOpen проверяет, работает ли барбершоп в день недели даты
func isOpen(hours []domain.WorkingHours, date time.Time) bool {
	weekday := int(date.Weekday())
	for _, h := range hours {
		if h.DayOfWeek == weekday {
			return h.IsOpen
		}
	}
	return false
}

// isBusinessError возвращает true для ошибок, которые не нужно логировать как внутренние
func isBusinessError(err error) bool {
	return errors.Is(err, ErrDateBlocked) ||
		errors.Is(err, ErrShopClosed) ||
		errors.Is(err, ErrInvalidTimeSlot) ||
		errors.Is(err, ErrSlotNotAvailable)
}
