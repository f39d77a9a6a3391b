package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidDateRange       = errors.New("end date must not be before start date")
	ErrInvalidTravelers       = errors.New("travelers must be at least 1")
	ErrTripTooLong            = errors.New("trip exceeds the maximum number of days")
	ErrDestinationNotFound    = errors.New("destination not found")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected behavior of AI service")
	ErrUnsupportedProvider    = errors.New("unsupported LLM provider")
	ErrDatabaseError          = errors.New("database error")
)
