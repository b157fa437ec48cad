package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const envFile = ".env"

type Server struct {
	Env      string `envconfig:"ENV"`
	LogLevel string `envconfig:"LOG_LEVEL"`
	Port     string `envconfig:"PORT" default:"8080"`
	Host     string `envconfig:"HOST"`
	Shutdown struct {
		CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
		GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS" default:"10"`
	} `envconfig:"SHUTDOWN"`
}

type CORS struct {
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
	Enable           bool     `envconfig:"ENABLE"`
	MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
}

type RateLimiter struct {
	Enable        bool `envconfig:"ENABLE"`
	MaxRequests   int  `envconfig:"MAX_REQUESTS" default:"120"`
	WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
}

type App struct {
	Name        string      `envconfig:"APP_NAME" default:"careerday"`
	Timezone    string      `envconfig:"TIMEZONE" default:"Europe/Rome"`
	CORS        CORS        `envconfig:"CORS"`
	RateLimiter RateLimiter `envconfig:"RATE_LIMITER"`
	APIKey      string      `envconfig:"API_KEY"`
}

type RedisNode struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB"`
}

type Cache struct {
	Redis struct {
		Primary RedisNode `envconfig:"PRIMARY"`
	} `envconfig:"REDIS"`
	TTL int `envconfig:"TTL" default:"300"`
}

type JWT struct {
	AccessSecret    string `envconfig:"ACCESS_SECRET"`
	AccessExpireMin int    `envconfig:"ACCESS_EXPIRE_MIN" default:"720"`
	Issuer          string `envconfig:"ISSUER"`
}

// PostgresNode is one side of the read/write split.
type PostgresNode struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT" default:"5432"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

type Postgres struct {
	MaxRetry       int          `envconfig:"MAX_RETRY" default:"3"`
	TxMaxRetry     int          `envconfig:"TX_MAX_RETRY" default:"5"`
	RetryWaitTime  int          `envconfig:"RETRY_WAIT_TIME" default:"2"`
	MigrationTable string       `envconfig:"MIGRATION_TABLE"`
	AutoMigrate    bool         `envconfig:"AUTO_MIGRATE"`
	Prefix         string       `envconfig:"PREFIX"`
	Read           PostgresNode `envconfig:"READ"`
	Write          PostgresNode `envconfig:"WRITE"`
}

type Schedule struct {
	StepMinutes                int      `envconfig:"STEP_MINUTES" default:"15"`
	Ranges                     []string `envconfig:"RANGES" default:"11:30-13:00,14:30-16:30"`
	CancelBufferMinutes        int      `envconfig:"CANCEL_BUFFER_MINUTES" default:"60"`
	CancelCutover              string   `envconfig:"CANCEL_CUTOVER"`
	RunningLateCooldownSeconds int      `envconfig:"RUNNING_LATE_COOLDOWN_SECONDS" default:"60"`
}

type Notification struct {
	Sink  string `envconfig:"SINK" default:"none"`
	Topic string `envconfig:"TOPIC" default:"careerday.notifications"`
}

type Kafka struct {
	Brokers       []string `envconfig:"BROKERS"`
	ConsumerGroup string   `envconfig:"CONSUMER_GROUP"`
	SASL          struct {
		Username string `envconfig:"USERNAME"`
		Password string `envconfig:"PASSWORD"`
	} `envconfig:"SASL"`
}

type RabbitMQ struct {
	URL      string `envconfig:"URL"`
	Exchange string `envconfig:"EXCHANGE" default:"careerday"`
}

type Config struct {
	Server Server `envconfig:"SERVER"`
	App    App    `envconfig:"APP"`
	Cache  Cache  `envconfig:"CACHE"`
	JWT    JWT    `envconfig:"JWT"`
	DB     struct {
		Postgres Postgres `envconfig:"POSTGRES"`
	} `envconfig:"DB"`
	Schedule   Schedule `envconfig:"SCHEDULE"`
	RoundTable struct {
		DefaultCapacity int `envconfig:"DEFAULT_CAPACITY" default:"10"`
	} `envconfig:"ROUND_TABLE"`
	Notification Notification `envconfig:"NOTIFICATION"`
	Kafka        Kafka        `envconfig:"KAFKA"`
	RabbitMQ     RabbitMQ     `envconfig:"RABBITMQ"`
	External     struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

// Validate reports every setting the booking core cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if c.Schedule.StepMinutes <= 0 {
		errs = append(errs, fmt.Errorf("SCHEDULE_STEP_MINUTES must be positive, got %d", c.Schedule.StepMinutes))
	}

	if len(c.Schedule.Ranges) == 0 {
		errs = append(errs, errors.New("SCHEDULE_RANGES is empty"))
	}

	if c.Schedule.CancelBufferMinutes < 0 {
		errs = append(errs, fmt.Errorf("SCHEDULE_CANCEL_BUFFER_MINUTES must not be negative, got %d", c.Schedule.CancelBufferMinutes))
	}

	if c.RoundTable.DefaultCapacity <= 0 {
		errs = append(errs, fmt.Errorf("ROUND_TABLE_DEFAULT_CAPACITY must be positive, got %d", c.RoundTable.DefaultCapacity))
	}

	switch strings.ToLower(c.Notification.Sink) {
	case "kafka":
		if len(c.Kafka.Brokers) == 0 {
			errs = append(errs, errors.New("KAFKA_BROKERS is required for the kafka notification sink"))
		}
	case "rabbitmq":
		if c.RabbitMQ.URL == "" {
			errs = append(errs, errors.New("RABBITMQ_URL is required for the rabbitmq notification sink"))
		}
	}

	return errors.Join(errs...)
}

// Load overlays the given dotenv files on the process environment and decodes it.
// Missing files are skipped.
func Load(files ...string) (*Config, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Debug().Str("file", file).Msg("No dotenv file, using the process environment")

				continue
			}

			return nil, fmt.Errorf("loading %s: %w", file, err)
		}

		log.Info().Str("file", file).Msg("Loaded variables from dotenv file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

var (
	conf    *Config
	once    sync.Once
	loadErr error
)

// Init loads the process wide configuration once.
func Init() error {
	once.Do(func() {
		conf, loadErr = Load(envFile)
		if loadErr == nil {
			log.Info().Str("env", conf.Server.Env).Msg("Service configuration initialized")
		}
	})

	return loadErr
}

func Get() *Config {
	if err := Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize configuration")
	}

	return conf
}
