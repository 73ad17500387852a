package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-daily-diary/internal/export"
	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/internal/service"
	"github.com/MKhiriev/go-daily-diary/internal/store"
	"github.com/MKhiriev/go-daily-diary/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidQueryParam: http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrIncompleteRange:         http.StatusBadRequest,
	service.ErrInvalidMonth:            http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	validators.ErrInvalidDate:          http.StatusBadRequest,
	validators.ErrInvalidDateRange:     http.StatusBadRequest,
	validators.ErrMissingDateRange:     http.StatusBadRequest,
	validators.ErrInvalidExportFormat:  http.StatusBadRequest,
	validators.ErrInvalidSection:       http.StatusBadRequest,
	validators.ErrInvalidExerciseType:  http.StatusBadRequest,
	validators.ErrInvalidExerciseValue: http.StatusBadRequest,
	export.ErrUnsupportedFormat:        http.StatusBadRequest,

	store.ErrUnauthenticated:    http.StatusUnauthorized,
	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,

	store.ErrCorruptedStorage:   http.StatusInternalServerError,
	store.ErrDecodingEntry:      http.StatusInternalServerError,
	store.ErrEncodingEntry:      http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err with the request logger and answers with the mapped
// status. Server errors hide err from the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName, msg string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg(msg)
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Str("func", funcName).Int("status", status).Msg(msg)
	http.Error(w, err.Error(), status)
}
