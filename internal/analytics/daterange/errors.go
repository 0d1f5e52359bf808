package daterange

// Error is a range validation failure with a stable, user-facing message.
type Error struct {
	Field   string
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches on Code so that sentinels compare equal regardless of Field.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrMissingCustomRange = &Error{
		Field:   "startDate",
		Code:    "missing_custom_range",
		Message: "startDate and endDate are required for a custom range",
	}
	ErrInvalidCustomDate = &Error{
		Field:   "startDate",
		Code:    "invalid_custom_date",
		Message: "startDate and endDate must be valid dates (YYYY-MM-DD or MM/DD/YYYY)",
	}
	ErrUnknownSelector = &Error{
		Field:   "range",
		Code:    "invalid_range",
		Message: "range must be one of: thisMonth, lastMonth, last30days, thisYear, custom",
	}

	ErrDatesRequired = &Error{
		Field:   "startDate",
		Code:    "required",
		Message: "Both startDate and endDate are required",
	}
	ErrInvalidDateFormat = &Error{
		Field:   "startDate",
		Code:    "invalid_format",
		Message: "Invalid date format. Expected YYYY-MM-DD",
	}
	ErrInvalidDateValue = &Error{
		Field:   "startDate",
		Code:    "invalid_date",
		Message: "Invalid date value. Please provide a real calendar date",
	}
	ErrEndBeforeStart = &Error{
		Field:   "endDate",
		Code:    "invalid_order",
		Message: "endDate must be on or after startDate",
	}
)

func withField(base *Error, field string) *Error {
	return &Error{Field: field, Code: base.Code, Message: base.Message}
}
