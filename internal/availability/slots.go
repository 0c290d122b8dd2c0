package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// DayData данные, от которых зависит расписание дня
// Загружаются вызывающей стороной, сам расчет не выполняет ввода-вывода
type DayData struct {
	WorkingHours     []domain.WorkingHours // Расписание по дням недели
	BlockedDates     []domain.BlockedDate  // Заблокированные даты
	Appointments     []*domain.Appointment // Записи на дату (отмененные игнорируются)
	ServiceDurations map[int64]int         // Длительность услуг по ID
}

// interval полуоткрытый интервал [start, end) в минутах от полуночи
type interval struct {
	start int
	end   int
}

// ComputeSlots вычисляет слоты на дату date для услуги длительностью durationMinutes
//
// Закрытый или отсутствующий в расписании день недели, а также заблокированная дата дают пустой список.
// Слоты идут с шагом domain.SlotStepMinutes от открытия, пока слот целиком помещается до закрытия.
// Слот недоступен, если пересекается с любой неотмененной записью этого дня.
// Касание границ (конец одного интервала равен началу другого) пересечением не считается.
func ComputeSlots(date string, durationMinutes int, data DayData) ([]domain.Slot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDuration, durationMinutes)
	}

	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	hours, ok := findWorkingHours(data.WorkingHours, int(day.Weekday()))
	if !ok || !hours.IsOpen {
		return []domain.Slot{}, nil
	}

	if IsBlocked(data.BlockedDates, day) {
		return []domain.Slot{}, nil
	}

	openMinutes, err := hours.OpenTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: day %d: %v", ErrInvalidWorkingHours, hours.DayOfWeek, err)
	}
	closeMinutes, err := hours.CloseTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: day %d: %v", ErrInvalidWorkingHours, hours.DayOfWeek, err)
	}

	busy := busyIntervals(day, data.Appointments, data.ServiceDurations)

	slots := make([]domain.Slot, 0)
	for start := openMinutes; start+durationMinutes <= closeMinutes; start += domain.SlotStepMinutes {
		slotTime, err := types.FromMinutes(start)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWorkingHours, err)
		}

		slots = append(slots, domain.Slot{
			Time:      slotTime,
			Available: !overlapsAny(interval{start: start, end: start + durationMinutes}, busy),
		})
	}

	return slots, nil
}

// FindSlot ищет слот с временем начала t
func FindSlot(slots []domain.Slot, t types.TimeString) (domain.Slot, bool) {
	for _, slot := range slots {
		if slot.Time.Equal(t) {
			return slot, true
		}
	}
	return domain.Slot{}, false
}

// IsBlocked проверяет, заблокирована ли календарная дата day
func IsBlocked(blocked []domain.BlockedDate, day time.Time) bool {
	target := day.Format(domain.DateFormat)
	for _, b := range blocked {
		if domain.FormatDate(b.Date) == target {
			return true
		}
	}
	return false
}

// Overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd)
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// ServiceDuration возвращает длительность услуги или значение по умолчанию, если услуга неизвестна
func ServiceDuration(durations map[int64]int, serviceID int64) int {
	if d, ok := durations[serviceID]; ok && d > 0 {
		return d
	}
	return domain.DefaultServiceDurationMinutes
}

func findWorkingHours(hours []domain.WorkingHours, dayOfWeek int) (domain.WorkingHours, bool) {
	for _, h := range hours {
		if h.DayOfWeek == dayOfWeek {
			return h, true
		}
	}
	return domain.WorkingHours{}, false
}

// busyIntervals собирает занятые интервалы неотмененных записей на дату day
func busyIntervals(day time.Time, appointments []*domain.Appointment, durations map[int64]int) []interval {
	target := day.Format(domain.DateFormat)
	busy := make([]interval, 0, len(appointments))

	for _, apt := range appointments {
		if apt == nil || !apt.IsActive() {
			continue
		}
		if !apt.Date.IsZero() && domain.FormatDate(apt.Date) != target {
			continue
		}

		start, err := apt.StartTime.Minutes()
		if err != nil {
			// Запись с поврежденным временем не может занимать слот
			continue
		}

		busy = append(busy, interval{start: start, end: start + ServiceDuration(durations, apt.ServiceID)})
	}

	return busy
}

func overlapsAny(slot interval, busy []interval) bool {
	for _, b := range busy {
		if Overlaps(slot.start, slot.end, b.start, b.end) {
			return true
		}
	}
	return false
}
