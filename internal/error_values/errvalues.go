package errorvalues

import "errors"

var (
	ErrUserNotFound = errors.New("user doesn't exists")

	ErrDayNotFound = errors.New("day doesn't exist in user's history")
	// Returned by the store when a day for (user, date) was created concurrently
	ErrDayExists = errors.New("day already exists in user's history")

	ErrValidation  = errors.New("validation error")
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)
