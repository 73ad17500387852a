package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-daily-diary/internal/export"
	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/internal/store"
	"github.com/MKhiriev/go-daily-diary/internal/utils"
	"github.com/MKhiriev/go-daily-diary/internal/validators"
	"github.com/MKhiriev/go-daily-diary/models"
)

type exportService struct {
	entryStore store.EntryStore
	validator  validators.Validator
	clock      *utils.Clock
	logger     *logger.Logger
}

func NewExportService(entryStore store.EntryStore, validator validators.Validator, clock *utils.Clock, logger *logger.Logger) ExportService {
	return &exportService{entryStore: entryStore, validator: validator, clock: clock, logger: logger}
}

// Export renders the days with content in [request.From, request.To].
func (s *exportService) Export(ctx context.Context, request models.ExportRequest) (models.ExportDocument, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.ExportDocument{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	entries, err := s.entryStore.GetEntriesByDateRange(ctx, request.From, request.To)
	if err != nil {
		log.Err(err).Str("func", "*exportService.Export").Str("from", request.From).Str("to", request.To).Msg("error loading entries")
		return models.ExportDocument{}, fmt.Errorf("error loading entries for export: %w", err)
	}

	doc, err := export.Document(models.FilterWithContent(entries), request.Options, s.clock.Now())
	if err != nil {
		log.Err(err).Str("func", "*exportService.Export").Msg("error rendering export")
		return models.ExportDocument{}, err
	}
	return doc, nil
}
