package logger

import (
	"medadmin-service/internal/app/config"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewZapLogger_Levels(t *testing.T) {
	internalConfig := &config.InternalConfig{App: config.App{Env: envDevelopment, Version: "test"}}

	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for raw, want := range cases {
		driverConfig := &config.DriverConfig{Logger: config.Logger{Level: raw}}
		log, err := NewZapLogger(driverConfig, internalConfig)
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(want), "level %q", raw)
		if want > zapcore.DebugLevel {
			assert.False(t, log.Core().Enabled(want-1), "level %q", raw)
		}
	}
}

func TestNewLogrusLogger_ProductionWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "access.log")
	driverConfig := &config.DriverConfig{Logger: config.Logger{AccessFileName: path}}

	accessLogger := NewLogrusLogger(driverConfig, &config.InternalConfig{App: config.App{Env: envProduction}})
	assert.IsType(t, &logrus.JSONFormatter{}, accessLogger.Formatter)
	assert.FileExists(t, path)

	devLogger := NewLogrusLogger(driverConfig, &config.InternalConfig{App: config.App{Env: envDevelopment}})
	assert.IsType(t, &logrus.TextFormatter{}, devLogger.Formatter)
}
