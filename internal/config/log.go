package config

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger returns a stderr logger tagged with prefix. The level comes
// from LOG_LEVEL (debug, info, warn, error) and defaults to info.
func NewLogger(prefix string) *log.Logger {
	level, err := log.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}
