package logger

import (
	"io"
	"os"
	"time"

	"careerday/config"
	"careerday/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs a console logger at trace level for the bootstrap phase, before config is read.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
}

// Configure applies the configured level and, outside development, switches to JSON lines tagged with the app name.
func Configure(cfg *config.Config, out io.Writer) {
	SetLogLevel(cfg)

	if cfg.Server.Env == constant.ServerEnvDevelopment {
		return
	}

	log.Logger = zerolog.New(out).With().Timestamp().Str("app", cfg.App.Name).Logger()
}

// ErrorWithStack logs err with the stack of the caller attached.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel falls back to debug in development and info elsewhere when the level is unset or unknown.
func SetLogLevel(cfg *config.Config) {
	fallback := zerolog.InfoLevel
	if cfg.Server.Env == constant.ServerEnvDevelopment {
		fallback = zerolog.DebugLevel
	}

	level := fallback

	if cfg.Server.LogLevel != "" {
		parsed, err := zerolog.ParseLevel(cfg.Server.LogLevel)
		if err != nil {
			log.Warn().Str("loglevel", cfg.Server.LogLevel).Str("using", fallback.String()).Msg("Unknown log level")
		} else {
			level = parsed
		}
	}

	zerolog.SetGlobalLevel(level)
}
