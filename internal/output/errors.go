package output

import "errors"

// ErrUnsupportedFormat is returned when a requested output format is unknown.
var ErrUnsupportedFormat = errors.New("unsupported output format")
