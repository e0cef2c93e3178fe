package usecase

import "errors"

var (
	ErrValidation           = errors.New("validation failed")
	ErrMuseumNotFound       = errors.New("museum not found")
	ErrInvalidTier          = errors.New("invalid ticket type")
	ErrInvalidDate          = errors.New("invalid date format, use YYYY-MM-DD")
	ErrPastDate             = errors.New("cannot book for a past date")
	ErrDateTooFar           = errors.New("booking date is too far ahead")
	ErrFullyBooked          = errors.New("date is fully booked, choose another date")
	ErrInvalidSlot          = errors.New("invalid time slot")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)
