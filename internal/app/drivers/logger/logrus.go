package logger

import (
	"medadmin-service/internal/app/config"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the access logger used by the request logging
// middleware. Production writes JSON lines to the access log file and falls
// back to stderr when the file cannot be opened.
func NewLogrusLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *logrus.Logger {
	accessLogger := logrus.New()
	accessLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if internalConfig.App.Env != envProduction {
		return accessLogger
	}

	accessLogger.SetFormatter(&logrus.JSONFormatter{})
	file, err := os.OpenFile(driverConfig.Logger.AccessFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		accessLogger.WithError(err).Warn("Cannot open access log file, writing to stderr")
		return accessLogger
	}
	accessLogger.SetOutput(file)
	return accessLogger
}
