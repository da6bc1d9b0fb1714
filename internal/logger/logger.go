// SPDX-License-Identifier: EPL-2.0

// Package logger sets up zerolog for the command line tools.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvLevel names the environment variable holding the log level.
const EnvLevel = "LOG_LEVEL"

// ParseLevel maps debug, info, warn and error to their zerolog level.
// Anything else is info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Init sets the global level from LOG_LEVEL, installs a console logger
// writing to w as the global logger and returns it.
func Init(w io.Writer) zerolog.Logger {
	level := ParseLevel(os.Getenv(EnvLevel))

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !isTerminal(w),
		TimeFormat: "15:04:05",
	}).With().Timestamp().Logger()

	log.Logger = logger

	logger.Debug().
		Str("level", level.String()).
		Msg("logger initialized")

	return logger
}
