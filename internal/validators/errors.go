package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUsernameTooShort = errors.New("username must be at least 4 characters")
	ErrPasswordTooShort = errors.New("password must be at least 12 characters")

	ErrInvalidHealthDate   = errors.New("health entry date must be YYYY-MM-DD")
	ErrNegativeMeasurement = errors.New("measurements cannot be negative")
	ErrInvalidPainLevel    = errors.New("pain level must be between 0 and 10")

	ErrEmptyNoteText = errors.New("note text is required")
	ErrEmptyName     = errors.New("name is required")
	ErrInvalidAge    = errors.New("age must be a non-negative number")

	ErrInvalidDateRange = errors.New("date range start is after its end")
)
