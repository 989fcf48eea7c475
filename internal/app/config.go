package app

import (
	server "github.com/AndreaVaz0608/skyai/internal/adapters/primary/http"
	alerterAdapter "github.com/AndreaVaz0608/skyai/internal/adapters/secondary/alerter"
	ephemerisAdapter "github.com/AndreaVaz0608/skyai/internal/adapters/secondary/ephemeris"
	generatorAdapter "github.com/AndreaVaz0608/skyai/internal/adapters/secondary/generator"
	geocoderAdapter "github.com/AndreaVaz0608/skyai/internal/adapters/secondary/geocoder"
	kafkaAdapter "github.com/AndreaVaz0608/skyai/internal/adapters/secondary/kafka"
	stripeAdapter "github.com/AndreaVaz0608/skyai/internal/adapters/secondary/payment/stripe"
	"github.com/AndreaVaz0608/skyai/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/AndreaVaz0608/skyai/internal/adapters/secondary/storage/redis"
	s3Adapter "github.com/AndreaVaz0608/skyai/internal/adapters/secondary/storage/s3"
	timezoneAdapter "github.com/AndreaVaz0608/skyai/internal/adapters/secondary/timezone"
	"github.com/AndreaVaz0608/skyai/internal/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Log       *logger.Config           `envconfig:"LOG"`
	Server    *server.Config           `envconfig:"APISERVER"`
	Postgres  *pg.Config               `envconfig:"POSTGRES"`
	Redis     *redisAdapter.Config     `envconfig:"REDIS"`
	S3        *s3Adapter.Config        `envconfig:"S3"`
	Kafka     *kafkaAdapter.Config     `envconfig:"KAFKA"`
	Geocoder  *geocoderAdapter.Config  `envconfig:"GEOCODER"`
	TimeZone  *timezoneAdapter.Config  `envconfig:"TIMEZONE"`
	Ephemeris *ephemerisAdapter.Config `envconfig:"EPHEMERIS"`
	Generator *generatorAdapter.Config `envconfig:"GENERATOR"`
	Stripe    *stripeAdapter.Config    `envconfig:"STRIPE"`
	Alerter   *alerterAdapter.Config   `envconfig:"ALERTER"`
	Credits   CreditsConfig            `envconfig:"CREDITS"`
	Dispatch  DispatchConfig           `envconfig:"DISPATCH"`
}

// CreditsConfig holds the per-payment quota limits
type CreditsConfig struct {
	GuruQuestionLimit int `envconfig:"GURU_QUESTION_LIMIT" default:"10"`
}

// DispatchConfig tunes the in-process worker pool used when Kafka is absent
type DispatchConfig struct {
	Workers   int `envconfig:"WORKERS" default:"2"`
	QueueSize int `envconfig:"QUEUE_SIZE" default:"64"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
