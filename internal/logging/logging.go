// Package logging builds the structured loggers used by the commands.
package logging

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/pong/internal/config"
)

// LevelEnv names the environment variable holding the log level.
const LevelEnv = "PONG_LOG_LEVEL"

// New creates a logger writing to w with the given prefix.
// The level is read from PONG_LOG_LEVEL; unknown values fall back to info.
func New(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           log.InfoLevel,
	})

	raw := config.GetEnv(LevelEnv, "info")
	level, err := log.ParseLevel(raw)
	if err != nil {
		logger.Warn("unknown log level, using info", "value", raw)
		return logger
	}
	logger.SetLevel(level)
	return logger
}
