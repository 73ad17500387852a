package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-daily-diary/internal/validators"
	"github.com/MKhiriev/go-daily-diary/models"
)

// EntryValidationService rejects malformed dates and entries before they
// reach the wrapped EntryService.
type EntryValidationService struct {
	inner     EntryService
	validator validators.Validator
}

func NewEntryValidationService(validator validators.Validator) EntryServiceWrapper {
	return &EntryValidationService{validator: validator}
}

func (v *EntryValidationService) GetEntry(ctx context.Context, date string) (models.DailyEntry, error) {
	if err := v.validator.Validate(ctx, models.DailyEntry{Date: date}, validators.FieldDate); err != nil {
		return models.DailyEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.GetEntry(ctx, date)
}

func (v *EntryValidationService) SaveEntry(ctx context.Context, date string, entry models.DailyEntry) (models.DailyEntry, error) {
	entry.Date = date
	if err := v.validator.Validate(ctx, entry); err != nil {
		return models.DailyEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.SaveEntry(ctx, date, entry)
}

func (v *EntryValidationService) ListEntries(ctx context.Context, from, to string) ([]models.DailyEntry, error) {
	for _, bound := range []string{from, to} {
		if bound == "" {
			continue
		}
		if err := v.validator.Validate(ctx, models.DailyEntry{Date: bound}, validators.FieldDate); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}
	return v.inner.ListEntries(ctx, from, to)
}

func (v *EntryValidationService) ActiveDate(date string) (string, bool) {
	return v.inner.ActiveDate(date)
}

func (v *EntryValidationService) Wrap(inner EntryService) EntryService {
	v.inner = inner
	return v
}
