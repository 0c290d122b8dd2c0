package availability

import "errors"

var (
	// ErrInvalidDuration возвращается при неположительной длительности услуги
	ErrInvalidDuration = errors.New("availability: duration must be positive")

	// ErrInvalidDate возвращается, когда дату нельзя разобрать как YYYY-MM-DD
	ErrInvalidDate = errors.New("availability: invalid date")

	// ErrInvalidWorkingHours возвращается, когда время открытия или закрытия повреждено
	ErrInvalidWorkingHours = errors.New("availability: invalid working hours")
)

// ErrLoad возвращается, когда данные дня не удалось прочитать из хранилища
var ErrLoad = errors.New("availability: failed to load day data")
