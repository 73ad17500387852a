// Package export renders diary entries as a Markdown or JSON document.
//
// The caller is expected to pass entries already filtered to those with
// content; Export only sorts them by date before rendering.
package export

import (
	"fmt"
	"sort"
	"time"

	"github.com/MKhiriev/go-daily-diary/models"
)

const fileNamePrefix = "diary-export-"

// Export renders entries in opts.Format. now is the export timestamp.
func Export(entries []models.DailyEntry, opts models.ExportOptions, now time.Time) (string, error) {
	sorted := make([]models.DailyEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	switch opts.Format {
	case models.ExportMarkdown:
		return toMarkdown(sorted, opts, now), nil
	case models.ExportJSON:
		return toJSON(sorted, opts, now)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}
}

// FileName returns the download name of an export made at now,
// e.g. diary-export-2024-01-31.md.
func FileName(format models.ExportFormat, now time.Time) string {
	return fileNamePrefix + models.FormatDate(now) + "." + format.Extension()
}

// Document renders entries and wraps the result with its file name and
// content type.
func Document(entries []models.DailyEntry, opts models.ExportOptions, now time.Time) (models.ExportDocument, error) {
	content, err := Export(entries, opts, now)
	if err != nil {
		return models.ExportDocument{}, err
	}
	return models.ExportDocument{
		FileName:    FileName(opts.Format, now),
		ContentType: opts.Format.MIMEType(),
		Content:     content,
	}, nil
}
