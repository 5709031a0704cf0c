package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrNoBookingStatus = fmt.Errorf("%w: no valid booking status found", ErrValidation)
	ErrNoDiary         = fmt.Errorf("%w: no diary selected", ErrValidation)
	ErrNoPatient       = fmt.Errorf("%w: patient is required", ErrValidation)
	ErrBookingNotFound = errors.New("booking not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("upstream session expired")
	ErrMalformed       = errors.New("malformed response")
)
