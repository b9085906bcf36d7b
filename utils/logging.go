package utils

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogWriter turns lines written by HTTP server internals into log messages
type LogWriter struct {
	Logger zerolog.Logger
}

func (lw LogWriter) Write(bs []byte) (int, error) {
	lw.Logger.Info().Str("component", "http").Msg(strings.TrimRight(string(bs), "\r\n"))
	return len(bs), nil
}

// SetupLogger configures global logger: "json" format goes to stderr as
// JSON lines, anything else is human readable console output
func SetupLogger(levelStr, format string) {
	if strings.EqualFold(format, "json") {
		SetupJSONLogger(levelStr, os.Stderr)
	} else {
		SetupDefaultLogger(levelStr)
	}
}

func setupFieldNames() {
	zerolog.MessageFieldName = "message"
	zerolog.LevelFieldName = "level"
	zerolog.TimestampFieldName = "time"
	zerolog.TimeFieldFormat = time.RFC3339
}

// SetupJSONLogger sends JSON log lines to w
func SetupJSONLogger(levelStr string, w io.Writer) {
	setupFieldNames()

	log.Logger = zerolog.New(w).
		Level(GetLogLevelOrDebug(levelStr)).
		With().
		Timestamp().
		Logger()
}

// SetupDefaultLogger logs to console
func SetupDefaultLogger(levelStr string) {
	setupFieldNames()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(GetLogLevelOrDebug(levelStr)).
		With().
		Timestamp().
		Logger()
}

var levelAliases = map[string]string{
	"warning":  "warn",
	"critical": "fatal",
	"off":      "disabled",
	"none":     "disabled",
}

// GetLogLevelOrDebug parses level name, unknown names enable debug logging
func GetLogLevelOrDebug(levelStr string) zerolog.Level {
	name := strings.ToLower(strings.TrimSpace(levelStr))
	if alias, ok := levelAliases[name]; ok {
		name = alias
	}

	level, err := zerolog.ParseLevel(name)
	if err == nil && name != "" {
		return level
	}

	log.Warn().Msgf("Unknown log level '%s', defaulting to debug", levelStr)
	return zerolog.DebugLevel
}
