// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the CLI's client of the diary server REST API.
//
// [ServerAdapter] hides the transport from the commands. Error values defined
// in errors.go are mapped from HTTP status codes by mapHTTPError so that
// callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-daily-diary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines the operations the CLI performs against the diary
// server. Authenticated calls carry the bearer token set by SetToken,
// Register or Login.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to subsequent requests.
	SetToken(token string)

	// Token returns the current bearer token, or "".
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// OpenDay returns the entry of date, or of today when date is empty
	// or invalid (the server redirects).
	OpenDay(ctx context.Context, date string) (models.DailyEntry, error)

	// SaveEntry stores entry under date and returns the saved entry. The
	// body is signed with HashSHA256 when a hash key is configured.
	SaveEntry(ctx context.Context, date string, entry models.DailyEntry) (models.DailyEntry, error)

	// ListEntries returns the entries of [from, to], or all entries when
	// both are empty.
	ListEntries(ctx context.Context, from, to string) ([]models.DailyEntry, error)

	History(ctx context.Context, month string) ([]models.HistoryDay, error)
	Favorites(ctx context.Context) ([]models.DailyEntry, error)
	Timeline(ctx context.Context, section models.Section) ([]models.TimelineGroup, error)

	Statistics(ctx context.Context) (models.Stats, error)
	Search(ctx context.Context, query string) ([]models.SearchResult, error)

	// Export downloads the rendered export of request.
	Export(ctx context.Context, request models.ExportRequest) (models.ExportDocument, error)

	Preferences(ctx context.Context) (models.StatisticsPreferences, error)
	UpdatePreferences(ctx context.Context, update models.StatisticsPreferencesUpdate) (models.StatisticsPreferences, error)
	ResetPreferences(ctx context.Context) (models.StatisticsPreferences, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
