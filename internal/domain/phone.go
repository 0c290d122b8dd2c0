package domain

import (
	"errors"
	"strings"
)

// ErrInvalidPhone is returned when a phone number has too few or too many digits
var ErrInvalidPhone = errors.New("domain: invalid phone number")

// NormalizePhone strips formatting from a phone number, keeping digits and a leading "+"
// "(11) 98765-4321" and "11987654321" normalize to the same value
func NormalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	var b strings.Builder
	if strings.HasPrefix(raw, "+") {
		b.WriteByte('+')
	}

	digits := 0
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			digits++
		}
	}

	if digits < MinPhoneDigits || digits > MaxPhoneDigits {
		return "", ErrInvalidPhone
	}
	return b.String(), nil
}
