// Package logger owns the process-wide diagnostic logger. Results go to
// stdout, so everything logged here lands on stderr.
package logger

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

// Init initializes the global logger with the given level. The LOG_LEVEL
// environment variable overrides it, and unknown levels fall back to warn.
// Only the first call has any effect.
func Init(level string) {
	once.Do(func() {
		if env := os.Getenv("LOG_LEVEL"); env != "" {
			level = env
		}
		logger = newLogger(level)
	})
}

// GetLogger returns the global logger.
func GetLogger() *logrus.Logger {
	if logger == nil {
		Init("warn")
	}
	return logger
}

func newLogger(level string) *logrus.Logger {
	l := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.WarnLevel
	}
	l.SetLevel(parsed)
	return l
}
