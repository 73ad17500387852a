// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-daily-diary/internal/config"
	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/internal/utils"
	"github.com/MKhiriev/go-daily-diary/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// getTokenFromAuthHeader
// ─────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "missing token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token", header: "Bearer ", wantErr: ErrEmptyToken},
		{name: "other scheme keeps second part", header: "Token abc", wantToken: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ─────────────────────────────────────────────
// entryHashing
// ─────────────────────────────────────────────

func newSignedRouter(t *testing.T, hashKey string) (*testServices, http.Handler) {
	t.Helper()
	ts, services := newTestServices(t, false)
	cfg := &config.StructuredConfig{App: config.App{HashKey: hashKey}}
	return ts, NewHandler(services, cfg, logger.Nop()).Init()
}

func TestEntryHashing(t *testing.T) {
	const key = "secret"
	body := `{"thoughts":"signed day"}`
	signer := utils.NewSigner(key)

	tests := []struct {
		name       string
		signature  string
		wantStatus int
		wantSave   bool
	}{
		{name: "valid signature", signature: signer.Sign([]byte(body)), wantStatus: http.StatusOK, wantSave: true},
		{name: "missing signature", wantStatus: http.StatusBadRequest},
		{name: "wrong signature", signature: utils.NewSigner("other").Sign([]byte(body)), wantStatus: http.StatusBadRequest},
		{name: "not hex", signature: "zz", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, router := newSignedRouter(t, key)
			if tt.wantSave {
				ts.entries.EXPECT().SaveEntry(gomock.Any(), "2024-01-10", models.DailyEntry{Thoughts: "signed day"}).
					Return(models.DailyEntry{Date: "2024-01-10", Thoughts: "signed day"}, nil)
			}

			req := newRequest(http.MethodPut, "/api/entries/2024-01-10", strings.NewReader(body))
			if tt.signature != "" {
				req.Header.Set(HashHeader, tt.signature)
			}
			rec := record(router, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestEntryHashing_OnlyGuardsSaves(t *testing.T) {
	ts, router := newSignedRouter(t, "secret")
	ts.entries.EXPECT().GetEntry(gomock.Any(), "2024-01-10").Return(models.DailyEntry{Date: "2024-01-10"}, nil)

	rec := serve(router, http.MethodGet, "/api/entries/2024-01-10", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEntryHashing_DisabledWithoutKey(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	wrapped := h.entryHashing(next)

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/", strings.NewReader("{}")))
	assert.Equal(t, http.StatusOK, rec.Code)
}

// ─────────────────────────────────────────────
// withGZip
// ─────────────────────────────────────────────

func gzipped(t *testing.T, s string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func TestWithGZip_DecodesRequestBody(t *testing.T) {
	ts, router := newTestRouter(t)
	ts.entries.EXPECT().SaveEntry(gomock.Any(), "2024-01-10", models.DailyEntry{Thoughts: "packed"}).
		Return(models.DailyEntry{Date: "2024-01-10", Thoughts: "packed"}, nil)

	req := newRequest(http.MethodPut, "/api/entries/2024-01-10", gzipped(t, `{"thoughts":"packed"}`))
	req.Header.Set("Content-Encoding", "gzip")
	rec := record(router, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	_, router := newTestRouter(t)

	req := newRequest(http.MethodPut, "/api/entries/2024-01-10", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := record(router, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWithGZip_CompressesResponse(t *testing.T) {
	ts, router := newTestRouter(t)
	ts.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("9.9.9")

	req := newRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := record(router, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "9.9.9", string(plain))
}

// ─────────────────────────────────────────────
// withTraceID / withLogging
// ─────────────────────────────────────────────

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	wrapped := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
	assert.NoError(t, err)
}

func TestWithLogging_WritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	})
	wrapped := h.withTraceID(h.withLogging(next))

	req := httptest.NewRequest(http.MethodPut, "/api/entries/2024-01-10", nil)
	req.Header.Set(traceIDHeader, "trace-1")
	wrapped.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	assert.Contains(t, line, `"method":"PUT"`)
	assert.Contains(t, line, `"uri":"/api/entries/2024-01-10"`)
	assert.Contains(t, line, `"status":201`)
	assert.Contains(t, line, `"size":2`)
	assert.Contains(t, line, `"trace_id":"trace-1"`)
}

func TestWithLogging_ImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	wrapped := h.withTraceID(h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))
	wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, buf.String(), `"status":200`)
}

// ─────────────────────────────────────────────
// CheckHTTPMethod
// ─────────────────────────────────────────────

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/items", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("items"))
	})
	router.Post("/api/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method     string
		wantStatus int
	}{
		{http.MethodGet, http.StatusOK},
		{http.MethodPost, http.StatusCreated},
		{http.MethodDelete, http.StatusNotFound},
		{http.MethodPatch, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rec := serve(router, tt.method, "/api/items", nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
