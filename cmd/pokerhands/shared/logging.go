package shared

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// SetupLogger builds the process logger. Text output carries timestamps;
// jsonOutput switches to one JSON object per line.
func SetupLogger(w io.Writer, level string, jsonOutput bool) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	opts := log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	}
	if jsonOutput {
		opts.Formatter = log.JSONFormatter
		opts.TimeFormat = time.RFC3339Nano
	}
	return log.NewWithOptions(w, opts), nil
}
