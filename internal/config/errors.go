package config

import "errors"

var (
	// ErrMissingValue возвращается, когда обязательный параметр не задан
	ErrMissingValue = errors.New("config: missing required value")

	// ErrInvalidValue возвращается при некорректном значении параметра
	ErrInvalidValue = errors.New("config: invalid value")
)
