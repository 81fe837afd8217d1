// Package logger configures the process-wide structured logger.
package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Init builds the root logger. Level falls back to info on anything
// unparseable. Output is JSON unless MEET_LOG_FORMAT=text is set.
func Init(level string) *logrus.Logger {
	log := logrus.New()

	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	if strings.EqualFold(os.Getenv("MEET_LOG_FORMAT"), "text") {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	log.SetOutput(os.Stderr)
	return log
}

// WithComponent returns an entry tagged for one subsystem.
func WithComponent(log *logrus.Logger, component string) *logrus.Entry {
	return log.WithField("component", component)
}
