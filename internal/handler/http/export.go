package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-daily-diary/internal/utils"
	"github.com/MKhiriev/go-daily-diary/models"
)

// export streams the rendered export of [from, to] as a file attachment.
//
// Query parameters: from, to, format (markdown by default) and the section
// toggles thoughts, diet, exercise and todos (true by default).
func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	request, err := exportRequestFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err, "*Handler.export", "invalid export parameters")
		return
	}

	doc, err := h.services.ExportService.Export(r.Context(), request)
	if err != nil {
		writeError(w, r, err, "*Handler.export", "error exporting entries")
		return
	}

	utils.WriteAttachment(w, doc.FileName, doc.ContentType, doc.Content)
}

func exportRequestFromQuery(query url.Values) (models.ExportRequest, error) {
	format := models.ExportFormat(query.Get("format"))
	if format == "" {
		format = models.ExportMarkdown
	}

	request := models.ExportRequest{
		From:    query.Get("from"),
		To:      query.Get("to"),
		Options: models.ExportOptions{Format: format},
	}

	toggles := []struct {
		name   string
		target *bool
	}{
		{"thoughts", &request.Options.IncludeThoughts},
		{"diet", &request.Options.IncludeDiet},
		{"exercise", &request.Options.IncludeExercise},
		{"todos", &request.Options.IncludeTodos},
	}
	for _, toggle := range toggles {
		value, err := boolParam(query, toggle.name, true)
		if err != nil {
			return models.ExportRequest{}, err
		}
		*toggle.target = value
	}

	return request, nil
}

func boolParam(query url.Values, name string, fallback bool) (bool, error) {
	raw := query.Get(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrInvalidQueryParam, name, raw)
	}
	return value, nil
}
