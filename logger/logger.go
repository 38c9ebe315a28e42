package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

func Get() *logrus.Logger {
	return log
}

func init() {
	log = logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
}

// SideEffectFailure records a swallowed best-effort failure so partial
// workflow applications stay visible in the logs.
func SideEffectFailure(module, context string, err error) {
	log.WithFields(logrus.Fields{
		"module":  module,
		"context": context,
	}).Error(err.Error())
}
