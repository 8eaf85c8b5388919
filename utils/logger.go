package utils

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds the process logger and installs it as the package default,
// so log.Info and friends elsewhere pick up the same level and format.
func NewLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		ReportCaller:    true,
		Prefix:          "bandhub",
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", level)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)

	log.SetDefault(logger)
	return logger
}
