package export

import "errors"

// ErrUnsupportedFormat is returned for a format outside markdown and json.
var ErrUnsupportedFormat = errors.New("unsupported export format")
