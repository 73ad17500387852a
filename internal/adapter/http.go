package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-daily-diary/internal/config"
	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/internal/utils"
	"github.com/MKhiriev/go-daily-diary/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

// hashHeader must match the header checked by the server.
const hashHeader = "HashSHA256"

type httpServerAdapter struct {
	client *resty.Client
	signer *utils.Signer

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
//
// The base URL of cfg is normalised (a missing scheme defaults to http).
// Entry saves are signed when hashKey is set. Returns [ErrInvalidAddress]
// when the address has no host.
func NewHTTPServerAdapter(cfg config.Adapter, hashKey string, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	a := &httpServerAdapter{client: client, logger: logger}
	if hashKey != "" {
		a.signer = utils.NewSigner(hashKey)
	}
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidAddress)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ── auth ────────────────────────────────────────────────────────────────────

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/user/register", user)
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/user/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, err
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		// the token stays usable; the id is informational
		h.logger.Warn().Err(err).Str("func", "*httpServerAdapter.authenticate").Msg("token subject is not a user id")
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

// ── entries ─────────────────────────────────────────────────────────────────

func (h *httpServerAdapter) OpenDay(ctx context.Context, date string) (models.DailyEntry, error) {
	var entry models.DailyEntry
	req := h.authedRequest(ctx).SetResult(&entry)
	if date != "" {
		req.SetQueryParam("date", date)
	}

	resp, err := req.Get("/api/diary")
	if err = checkResponse("open day", resp, err); err != nil {
		return models.DailyEntry{}, err
	}
	return entry, nil
}

func (h *httpServerAdapter) SaveEntry(ctx context.Context, date string, entry models.DailyEntry) (models.DailyEntry, error) {
	body, err := json.Marshal(entry)
	if err != nil {
		return models.DailyEntry{}, fmt.Errorf("encode entry: %w", err)
	}

	var saved models.DailyEntry
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("date", date).
		SetBody(body).
		SetResult(&saved)
	if h.signer != nil {
		req.SetHeader(hashHeader, h.signer.Sign(body))
	}

	resp, err := req.Put("/api/entries/{date}")
	if err = checkResponse("save entry", resp, err); err != nil {
		return models.DailyEntry{}, err
	}
	return saved, nil
}

func (h *httpServerAdapter) ListEntries(ctx context.Context, from, to string) ([]models.DailyEntry, error) {
	var entries []models.DailyEntry
	req := h.authedRequest(ctx).SetResult(&entries)
	if from != "" || to != "" {
		req.SetQueryParams(map[string]string{"from": from, "to": to})
	}

	resp, err := req.Get("/api/entries")
	if err = checkResponse("list entries", resp, err); err != nil {
		return nil, err
	}
	return entries, nil
}

// ── history ─────────────────────────────────────────────────────────────────

func (h *httpServerAdapter) History(ctx context.Context, month string) ([]models.HistoryDay, error) {
	var days []models.HistoryDay
	resp, err := h.authedRequest(ctx).SetPathParam("month", month).SetResult(&days).Get("/api/history/{month}")
	if err = checkResponse("history", resp, err); err != nil {
		return nil, err
	}
	return days, nil
}

func (h *httpServerAdapter) Favorites(ctx context.Context) ([]models.DailyEntry, error) {
	var entries []models.DailyEntry
	resp, err := h.authedRequest(ctx).SetResult(&entries).Get("/api/favorites")
	if err = checkResponse("favorites", resp, err); err != nil {
		return nil, err
	}
	return entries, nil
}

func (h *httpServerAdapter) Timeline(ctx context.Context, section models.Section) ([]models.TimelineGroup, error) {
	var groups []models.TimelineGroup
	resp, err := h.authedRequest(ctx).SetPathParam("section", string(section)).SetResult(&groups).Get("/api/timeline/{section}")
	if err = checkResponse("timeline", resp, err); err != nil {
		return nil, err
	}
	return groups, nil
}

// ── statistics, search, export ──────────────────────────────────────────────

func (h *httpServerAdapter) Statistics(ctx context.Context) (models.Stats, error) {
	var stats models.Stats
	resp, err := h.authedRequest(ctx).SetResult(&stats).Get("/api/statistics")
	if err = checkResponse("statistics", resp, err); err != nil {
		return models.Stats{}, err
	}
	return stats, nil
}

func (h *httpServerAdapter) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	var results []models.SearchResult
	resp, err := h.authedRequest(ctx).SetQueryParam("q", query).SetResult(&results).Get("/api/search")
	if err = checkResponse("search", resp, err); err != nil {
		return nil, err
	}
	return results, nil
}

func (h *httpServerAdapter) Export(ctx context.Context, request models.ExportRequest) (models.ExportDocument, error) {
	opts := request.Options
	resp, err := h.authedRequest(ctx).
		SetHeader("Accept", "*/*").
		SetQueryParams(map[string]string{
			"from":     request.From,
			"to":       request.To,
			"format":   string(opts.Format),
			"thoughts": strconv.FormatBool(opts.IncludeThoughts),
			"diet":     strconv.FormatBool(opts.IncludeDiet),
			"exercise": strconv.FormatBool(opts.IncludeExercise),
			"todos":    strconv.FormatBool(opts.IncludeTodos),
		}).
		Get("/api/export")
	if err = checkResponse("export", resp, err); err != nil {
		return models.ExportDocument{}, err
	}

	doc := models.ExportDocument{
		ContentType: resp.Header().Get("Content-Type"),
		Content:     string(resp.Body()),
	}
	if _, params, err := mime.ParseMediaType(resp.Header().Get("Content-Disposition")); err == nil {
		doc.FileName = params["filename"]
	}
	return doc, nil
}

// ── preferences ─────────────────────────────────────────────────────────────

func (h *httpServerAdapter) Preferences(ctx context.Context) (models.StatisticsPreferences, error) {
	var prefs models.StatisticsPreferences
	resp, err := h.authedRequest(ctx).SetResult(&prefs).Get("/api/preferences")
	if err = checkResponse("preferences", resp, err); err != nil {
		return models.StatisticsPreferences{}, err
	}
	return prefs, nil
}

func (h *httpServerAdapter) UpdatePreferences(ctx context.Context, update models.StatisticsPreferencesUpdate) (models.StatisticsPreferences, error) {
	var prefs models.StatisticsPreferences
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&prefs).
		Put("/api/preferences")
	if err = checkResponse("update preferences", resp, err); err != nil {
		return models.StatisticsPreferences{}, err
	}
	return prefs, nil
}

func (h *httpServerAdapter) ResetPreferences(ctx context.Context) (models.StatisticsPreferences, error) {
	var prefs models.StatisticsPreferences
	resp, err := h.authedRequest(ctx).SetResult(&prefs).Delete("/api/preferences")
	if err = checkResponse("reset preferences", resp, err); err != nil {
		return models.StatisticsPreferences{}, err
	}
	return prefs, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).SetHeader("Accept", "text/plain").Get("/api/version/")
	if err = checkResponse("version", resp, err); err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.Body())), nil
}

// ── helpers ─────────────────────────────────────────────────────────────────

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// checkResponse folds a transport error and a non-2xx status into one error.
func checkResponse(op string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

func parseUserIDFromJWT(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return 0, err
	}
	return strconv.ParseInt(claims.Subject, 10, 64)
}
