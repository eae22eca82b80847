package service

import (
	"errors"

	"github.com/prithvinet/backend/internal/domain"
)

// DataRepository is re-exported from domain for convenience
type DataRepository = domain.DataRepository

var (
	ErrCityNotFound   = errors.New("city not found")
	ErrInvalidHours   = errors.New("hours must be between 1 and 720")
	ErrReportNotFound = errors.New("report not found")
	ErrEmailRequired  = errors.New("email is required")
	ErrInvalidEmail   = errors.New("invalid email address")
)
