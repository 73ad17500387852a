package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-daily-diary/models"
)

// Field names accepted by DiaryValidator.Validate.
const (
	// FieldDate targets the YYYY-MM-DD date of an entry.
	FieldDate = "date"

	// FieldExercises targets every exercise of an entry.
	FieldExercises = "exercises"

	// FieldTodos targets every to-do of an entry.
	FieldTodos = "todos"

	// FieldDiscoveries targets every discovery of an entry.
	FieldDiscoveries = "discoveries"

	// FieldRange targets the From/To bounds of an export request.
	FieldRange = "range"

	// FieldFormat targets the export format.
	FieldFormat = "format"

	FieldLogin    = "login"
	FieldPassword = "password"
)

// DiaryValidator validates diary domain models.
//
// Supported types, as values or pointers: models.DailyEntry,
// models.ExportRequest, models.User and models.Section.
type DiaryValidator struct{}

// NewDiaryValidator returns a DiaryValidator as a Validator.
func NewDiaryValidator() Validator {
	return &DiaryValidator{}
}

// Validate dispatches on the dynamic type of obj. ErrUnsupportedType is
// returned for any other type.
func (v *DiaryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DailyEntry:
		return v.validateEntry(ctx, value, fields...)
	case *models.DailyEntry:
		return v.validateEntry(ctx, *value, fields...)

	case models.ExportRequest:
		return v.validateExportRequest(ctx, value, fields...)
	case *models.ExportRequest:
		return v.validateExportRequest(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.Section:
		if !value.IsValid() {
			return fmt.Errorf("%w: %q", ErrInvalidSection, value)
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

// validateEntry checks an entry about to be saved.
//
// Default fields: date, exercises, todos, discoveries. Non-empty item ids
// must be unique within their section; empty ids are assigned on save.
func (v *DiaryValidator) validateEntry(ctx context.Context, entry models.DailyEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDate, FieldExercises, FieldTodos, FieldDiscoveries}
	}

	for _, f := range fields {
		switch f {
		case FieldDate:
			if !models.IsValidDate(entry.Date) {
				return fmt.Errorf("%w: %q", ErrInvalidDate, entry.Date)
			}
		case FieldExercises:
			ids := make(map[string]struct{}, len(entry.Exercises))
			for i, ex := range entry.Exercises {
				if err := checkItemID(ids, ex.ID); err != nil {
					return fmt.Errorf("exercise at index %d: %w", i, err)
				}
				if !ex.Type.IsValid() {
					return fmt.Errorf("exercise at index %d: %w: %q", i, ErrInvalidExerciseType, ex.Type)
				}
				if ex.Value < 0 {
					return fmt.Errorf("exercise at index %d: %w", i, ErrInvalidExerciseValue)
				}
			}
		case FieldTodos:
			ids := make(map[string]struct{}, len(entry.Todos))
			for i, todo := range entry.Todos {
				if err := checkItemID(ids, todo.ID); err != nil {
					return fmt.Errorf("todo at index %d: %w", i, err)
				}
			}
		case FieldDiscoveries:
			ids := make(map[string]struct{}, len(entry.Discoveries))
			for i, d := range entry.Discoveries {
				if err := checkItemID(ids, d.ID); err != nil {
					return fmt.Errorf("discovery at index %d: %w", i, err)
				}
				if !d.Category.IsValid() {
					return fmt.Errorf("discovery at index %d: %w: %q", i, ErrInvalidDiscoveryCategory, d.Category)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkItemID(seen map[string]struct{}, id string) error {
	if id == "" {
		return nil
	}
	if _, dup := seen[id]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateItemID, id)
	}
	seen[id] = struct{}{}
	return nil
}

// validateExportRequest requires both bounds as valid dates with From <= To
// and a supported format. Default fields: range, format.
func (v *DiaryValidator) validateExportRequest(ctx context.Context, request models.ExportRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRange, FieldFormat}
	}

	for _, f := range fields {
		switch f {
		case FieldRange:
			if request.From == "" || request.To == "" {
				return ErrMissingDateRange
			}
			if !models.IsValidDate(request.From) || !models.IsValidDate(request.To) {
				return ErrInvalidDate
			}
			if request.From > request.To {
				return ErrInvalidDateRange
			}
		case FieldFormat:
			switch request.Options.Format {
			case models.ExportMarkdown, models.ExportJSON:
			default:
				return fmt.Errorf("%w: %q", ErrInvalidExportFormat, request.Options.Format)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DiaryValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if user.Login == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
