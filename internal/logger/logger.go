// Package logger holds the process-wide logrus instance.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is usable before Init; Init only reconfigures it.
var Log = logrus.New()

// Init sets level and format. LOG_LEVEL and LOG_FORMAT override the
// arguments when present. Unknown levels fall back to info.
func Init(level, format string) {
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		level = v
	}
	if v, ok := os.LookupEnv("LOG_FORMAT"); ok {
		format = v
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	// "json" for collected logs, anything else is human-readable text
	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(os.Stdout)
}

// Discard silences the logger, for tests.
func Discard() {
	Log.SetOutput(io.Discard)
}
