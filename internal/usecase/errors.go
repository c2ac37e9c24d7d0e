package usecase

import "errors"

var (
	ErrFlightNotFound = errors.New("flight not found")
	ErrAlertNotFound  = errors.New("alert not found")
	ErrEmptyMessage   = errors.New("message must not be empty")
	ErrInvalidHours   = errors.New("hours must be positive")
	ErrInvalidDays    = errors.New("days must be between 1 and 30")
	ErrInvalidFilter  = errors.New("invalid filter")
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
