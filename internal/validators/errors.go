package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidDate              = errors.New("date must be a valid YYYY-MM-DD calendar date")
	ErrInvalidExerciseType      = errors.New("invalid exercise type")
	ErrInvalidExerciseValue     = errors.New("exercise value must not be negative")
	ErrInvalidDiscoveryCategory = errors.New("invalid discovery category")
	ErrDuplicateItemID          = errors.New("item ids must be unique within a section")
	ErrMissingDateRange         = errors.New("both range bounds are required")
	ErrInvalidDateRange         = errors.New("range start is after range end")
	ErrInvalidExportFormat      = errors.New("export format must be markdown or json")
	ErrEmptyLogin               = errors.New("login is required")
	ErrEmptyPassword            = errors.New("password is required")
	ErrInvalidSection           = errors.New("invalid section")
)
