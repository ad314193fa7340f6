// Package logger holds the process-wide zerolog logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

var globalLogger zerolog.Logger

func init() {
	globalLogger = New(os.Stderr).Level(zerolog.InfoLevel)
}

// New builds a console logger writing to w
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05.99",
		FormatMessage: func(i interface{}) string {
			return fmt.Sprintf("| %s |", i)
		},
		FormatCaller: func(i interface{}) string {
			return filepath.Base(fmt.Sprintf("%s", i))
		},
	}).With().
		Timestamp().
		Caller().
		Logger()
}

// GetLogger retrieves the global zerolog logger
func GetLogger() zerolog.Logger {
	return globalLogger
}

// SetOutput redirects the global logger to w, keeping its level
func SetOutput(w io.Writer) {
	globalLogger = New(w).Level(globalLogger.GetLevel())
}

// SetDebug switches the global logger between debug and info level
func SetDebug(debug bool) {
	if debug {
		globalLogger = globalLogger.Level(zerolog.DebugLevel)
		return
	}
	globalLogger = globalLogger.Level(zerolog.InfoLevel)
}
