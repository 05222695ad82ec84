package employee

import "errors"

var (
	ErrInvalidAgeRange            = errors.New("age.min must not exceed age.max")
	ErrBirthdateAttemptsExhausted = errors.New("no birthdate within the age range after max attempts")
)
