package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-daily-diary/internal/config"
	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/internal/mock"
	"github.com/MKhiriev/go-daily-diary/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Fixtures
// ─────────────────────────────────────────────

// testServices holds the gomock doubles behind a service.Services value.
type testServices struct {
	entries     *mock.MockEntryService
	statistics  *mock.MockStatisticsService
	search      *mock.MockSearchService
	export      *mock.MockExportService
	history     *mock.MockHistoryService
	timeline    *mock.MockTimelineService
	preferences *mock.MockPreferencesService
	auth        *mock.MockAuthService
	appInfo     *mock.MockAppInfoService
}

// newTestServices builds mocks for every service. withAuth selects the
// remote backend layout where AuthService is present.
func newTestServices(t *testing.T, withAuth bool) (*testServices, *service.Services) {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServices{
		entries:     mock.NewMockEntryService(ctrl),
		statistics:  mock.NewMockStatisticsService(ctrl),
		search:      mock.NewMockSearchService(ctrl),
		export:      mock.NewMockExportService(ctrl),
		history:     mock.NewMockHistoryService(ctrl),
		timeline:    mock.NewMockTimelineService(ctrl),
		preferences: mock.NewMockPreferencesService(ctrl),
		auth:        mock.NewMockAuthService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		EntryService:       ts.entries,
		StatisticsService:  ts.statistics,
		SearchService:      ts.search,
		ExportService:      ts.export,
		HistoryService:     ts.history,
		TimelineService:    ts.timeline,
		PreferencesService: ts.preferences,
		AppInfoService:     ts.appInfo,
	}
	if withAuth {
		services.AuthService = ts.auth
	}

	return ts, services
}

// newTestRouter returns the routed handler of a local (no auth) setup.
func newTestRouter(t *testing.T) (*testServices, http.Handler) {
	t.Helper()
	ts, services := newTestServices(t, false)
	return ts, NewHandler(services, &config.StructuredConfig{}, logger.Nop()).Init()
}

func serve(router http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	return record(router, newRequest(method, target, body))
}

func newRequest(method, target string, body io.Reader) *http.Request {
	return httptest.NewRequest(method, target, body)
}

func record(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}
