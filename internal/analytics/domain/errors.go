package domain

import (
	"errors"
	"fmt"

	"github.com/smallbiznis/praxis/internal/analytics/daterange"
	"github.com/smallbiznis/praxis/pkg/db/pagination"
)

// ValidationError is a request the engine refuses before touching the ledger.
// Message is stable and shown to the caller verbatim.
type ValidationError struct {
	Field   string
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DependencyError is a ledger read failure. It never carries a partial result.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("analytics %s: %v", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

var (
	ErrInvalidFormat = &ValidationError{
		Field:   "format",
		Code:    "invalid_format",
		Message: "format must be one of: csv, excel",
	}
	ErrNotFound = errors.New("not_found")
)

// AsValidation converts range and paging failures into a ValidationError. Other errors
// are returned unchanged.
func AsValidation(err error) error {
	if err == nil {
		return nil
	}
	var rangeErr *daterange.Error
	if errors.As(err, &rangeErr) {
		return &ValidationError{Field: rangeErr.Field, Code: rangeErr.Code, Message: rangeErr.Message}
	}
	var pageErr *pagination.ErrNotPositive
	if errors.As(err, &pageErr) {
		return &ValidationError{Field: pageErr.Field, Code: "not_positive", Message: pageErr.Error()}
	}
	return err
}
