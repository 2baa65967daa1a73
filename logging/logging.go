package logging

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

// InitLogger sets the level of the shared logger. Packages grab the logger
// in their init functions, so this only adjusts the existing instance.
func InitLogger(level logrus.Level) {
	GetLogger().SetLevel(level)
}

// GetLogger returns the shared logger, creating it at info level on first use.
func GetLogger() *logrus.Logger {
	once.Do(func() {
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	})
	return logger
}
