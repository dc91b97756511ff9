// Package logger configures the process-wide logrus instance.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a logger writing to stdout. Unknown level strings fall
// back to info.
func New(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log
}
