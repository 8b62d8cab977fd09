package internal

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	ENV_LOG_LEVEL  = "MIPSLITE_LOG_LEVEL"  // debug, info, warn or error.
	ENV_LOG_PREFIX = "MIPSLITE_LOG_PREFIX" // Prefix for every message.
)

// NewLogger creates a logger writing to w. The level comes from
// level, else MIPSLITE_LOG_LEVEL, else info.
func NewLogger(w io.Writer, level string) *log.Logger {
	lg := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})

	if len(level) == 0 {
		level = os.Getenv(ENV_LOG_LEVEL)
	}
	parsed, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = log.InfoLevel
	}
	lg.SetLevel(parsed)

	prefix := os.Getenv(ENV_LOG_PREFIX)
	if len(prefix) == 0 {
		prefix = "mipslite"
	}

	return lg.WithPrefix(prefix)
}
