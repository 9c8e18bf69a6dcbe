// 12 Aug 2025

// Package logx makes the logger used by the commands. Output goes to
// stderr, never to the sequence files. The level comes from the
// environment variable PREFIXHDR_LOG. Without it, only warnings and
// errors appear, so a normal run prints nothing.
package logx

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// EnvLevel names the environment variable holding the log level.
const EnvLevel = "PREFIXHDR_LOG"

const dfltLevel = log.WarnLevel

// level turns a string like "debug" or "INFO" into a log level.
// Rubbish gives the default and false.
func level(s string) (log.Level, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return dfltLevel, true
	}
	lvl, err := log.ParseLevel(strings.ToLower(s))
	if err != nil {
		return dfltLevel, false
	}
	return lvl, true
}

// New returns a logger writing to w with the program name as prefix.
func New(w io.Writer, prog string) *log.Logger {
	lvl, ok := level(os.Getenv(EnvLevel))
	logger := log.NewWithOptions(w, log.Options{
		Prefix: prog,
		Level:  lvl,
	})
	if !ok {
		logger.Warn("unknown log level, using default", "env", EnvLevel,
			"provided", os.Getenv(EnvLevel), "default", dfltLevel)
	}
	return logger
}
