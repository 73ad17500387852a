package service

import (
	"github.com/MKhiriev/go-daily-diary/internal/cache"
	"github.com/MKhiriev/go-daily-diary/internal/config"
	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/internal/store"
	"github.com/MKhiriev/go-daily-diary/internal/utils"
	"github.com/MKhiriev/go-daily-diary/internal/validators"
	"github.com/MKhiriev/go-daily-diary/models"
)

// Services is the set of services handed to the transport layer.
//
// AuthService is nil under the local backend; the HTTP layer then serves
// every route without authentication.
type Services struct {
	EntryService       EntryService
	StatisticsService  StatisticsService
	SearchService      SearchService
	ExportService      ExportService
	HistoryService     HistoryService
	TimelineService    TimelineService
	PreferencesService PreferencesService
	AuthService        AuthService
	AppInfoService     AppInfoService

	// EntryCache fronts storages.EntryStore for every service. Its janitor
	// is started by the server.
	EntryCache *cache.EntryCache
}

// NewServices wires every service over storages.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, clock *utils.Clock, ids utils.IDGenerator, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	entryCache := cache.New(storages.EntryStore, cfg.Cache, logger)
	validator := validators.NewDiaryValidator()

	entryService := NewEntryValidationService(validator).Wrap(
		NewEntryService(entryCache, entryCache, ids, clock, logger),
	)

	var auth AuthService
	if storages.IsRemote() {
		auth = NewAuthService(storages.UserRepository, cfg.App, logger)
	}

	return &Services{
		EntryService:       entryService,
		StatisticsService:  NewStatisticsService(entryCache, clock, logger),
		SearchService:      NewSearchService(entryCache, logger),
		ExportService:      NewExportService(entryCache, validator, clock, logger),
		HistoryService:     NewHistoryService(entryCache, logger),
		TimelineService:    NewTimelineService(entryCache, logger),
		PreferencesService: NewPreferencesService(storages.PreferencesStore, logger),
		AuthService:        auth,
		AppInfoService:     appInfo,
		EntryCache:         entryCache,
	}, nil
}
