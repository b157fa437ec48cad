package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"careerday/config"
	"careerday/shared/constant"
	"careerday/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func preserve(t *testing.T) {
	t.Helper()

	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	originalTimeFormat := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
		zerolog.TimeFieldFormat = originalTimeFormat
	})
}

func TestInitLogger(t *testing.T) {
	preserve(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	preserve(t)

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("slot ledger unavailable"))

	assert.Contains(t, buf.String(), "slot ledger unavailable")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name          string
		env           string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{name: "debug level", logLevel: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "warn level", logLevel: "warn", expectedLevel: zerolog.WarnLevel},
		{name: "disabled level", logLevel: "disabled", expectedLevel: zerolog.Disabled},
		{name: "unknown level falls back to info", logLevel: "loud", expectedLevel: zerolog.InfoLevel},
		{name: "unset level falls back to info", expectedLevel: zerolog.InfoLevel},
		{name: "unset level in development", env: constant.ServerEnvDevelopment, expectedLevel: zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preserve(t)

			log.Logger = log.Output(&bytes.Buffer{})

			cfg := &config.Config{}
			cfg.Server.Env = tt.env
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}

func TestConfigureWritesJSONOutsideDevelopment(t *testing.T) {
	preserve(t)

	var buf bytes.Buffer

	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.Server.LogLevel = "info"
	cfg.App.Name = "careerday"

	logger.Configure(cfg, &buf)
	log.Info().Str("event_id", "e1").Msg("event activated")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "careerday", line["app"])
	assert.Equal(t, "e1", line["event_id"])
	assert.Equal(t, "event activated", line["message"])
}

func TestConfigureKeepsConsoleInDevelopment(t *testing.T) {
	preserve(t)

	var before bytes.Buffer
	log.Logger = log.Output(&before)

	var buf bytes.Buffer

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvDevelopment
	cfg.Server.LogLevel = "debug"

	logger.Configure(cfg, &buf)
	log.Debug().Msg("still here")

	assert.Empty(t, buf.String())
	assert.Contains(t, before.String(), "still here")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}
