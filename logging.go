package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// The TUI owns the terminal, so diagnostics go to a file instead of
// stderr. Logging is off unless GRIDPLAN_DEBUG names a log file.
var debugLogger = logrus.New()

func initLogging() {
	debugLogger.SetOutput(io.Discard)

	path := os.Getenv("GRIDPLAN_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	debugLogger.SetOutput(f)
	debugLogger.SetLevel(logrus.DebugLevel)
	debugLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func debugLog(format string, args ...interface{}) {
	debugLogger.Debugf(format, args...)
}
