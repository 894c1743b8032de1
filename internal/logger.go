package internal

import (
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogger initializes the logger with optional file output and level.
func InitLogger(logfile, level string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableQuote:  true,
		PadLevelText:  true,
	})
	logrus.SetOutput(os.Stderr)

	if lvl, err := logrus.ParseLevel(level); err == nil {
		logrus.SetLevel(lvl)
	} else {
		logrus.Warnf("Unknown log level %q, using info", level)
	}

	if logfile != "" {
		file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			logrus.SetOutput(file)
		} else {
			logrus.Warn("Failed to open log file, logging to stderr")
		}
	}
}
