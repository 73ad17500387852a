package models

// ExportFormat is the output format of a diary export.
type ExportFormat string

const (
	ExportMarkdown ExportFormat = "markdown"
	ExportJSON     ExportFormat = "json"
)

// Extension returns the file extension used for exported documents.
func (f ExportFormat) Extension() string {
	if f == ExportMarkdown {
		return "md"
	}
	return string(f)
}

// MIMEType returns the media type of exported documents, including charset.
func (f ExportFormat) MIMEType() string {
	if f == ExportMarkdown {
		return "text/markdown;charset=utf-8"
	}
	return "application/json;charset=utf-8"
}

// ExportOptions selects the format and the sections included in an export.
type ExportOptions struct {
	Format          ExportFormat `json:"format"`
	IncludeThoughts bool         `json:"includeThoughts"`
	IncludeDiet     bool         `json:"includeDiet"`
	IncludeExercise bool         `json:"includeExercise"`
	IncludeTodos    bool         `json:"includeTodos"`
}

// ExportRequest is an export of the inclusive date range [From, To].
type ExportRequest struct {
	From    string
	To      string
	Options ExportOptions
}

// ExportDocument is a rendered export ready to be written to a file.
type ExportDocument struct {
	FileName    string
	ContentType string
	Content     string
}
