package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Store drivers
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type Config struct {
	Service    Service    `envconfig:"SERVICE"`
	Store      Store      `envconfig:"STORE"`
	Mongo      Mongo      `envconfig:"MONGO"`
	Postgres   Postgres   `envconfig:"POSTGRES"`
	ClickHouse ClickHouse `envconfig:"CLICKHOUSE"`
	SQS        SQS        `envconfig:"SQS"`
	Consumer   Consumer   `envconfig:"CONSUMER"`
	Resume     Resume     `envconfig:"RESUME"`
}

type Service struct {
	Environment string   `split_words:"true" default:"development"`
	APIPort     string   `split_words:"true" default:"8001"`
	Host        string   `split_words:"true" default:"localhost:8001"`
	CORSOrigins []string `split_words:"true" default:"*"`
}

type Store struct {
	Driver string `split_words:"true" default:"mongo"`
}

// Mongo falls back to the bare DB_NAME key for the database name
type Mongo struct {
	URL               string `split_words:"true" default:"mongodb://localhost:27017"`
	Database          string `envconfig:"DB_NAME" default:"portfolio_db"`
	ConnectTimeoutSec int    `split_words:"true" default:"10"`
}

type Postgres struct {
	URL      string `split_words:"true"`
	MaxConns int32  `split_words:"true" default:"10"`
}

type ClickHouse struct {
	Host               string `split_words:"true"`
	Port               string `split_words:"true" default:"9000"`
	DB                 string `split_words:"true" default:"portfolio"`
	User               string `split_words:"true" default:""`
	Password           string `split_words:"true" default:""`
	UseTLS             bool   `split_words:"true" default:"false"`
	MaxOpenConns       int    `split_words:"true" default:"5"`
	MaxIdleConns       int    `split_words:"true" default:"2"`
	ConnMaxLifetimeSec int    `split_words:"true" default:"3600"`
}

// Enabled reports whether a ClickHouse host is configured
func (c ClickHouse) Enabled() bool {
	return c.Host != ""
}

type SQS struct {
	Endpoint string `split_words:"true"`
	QueueURL string `split_words:"true"`
	Region   string `split_words:"true" default:"us-east-1"`
}

// Enabled reports whether a tracking queue is configured
func (s SQS) Enabled() bool {
	return s.QueueURL != ""
}

type Consumer struct {
	BatchSizeMax    int    `split_words:"true" default:"500"`
	BatchTimeoutSec int    `split_words:"true" default:"10"`
	HealthCheckPort string `split_words:"true" default:"8081"`
}

type Resume struct {
	Filename string `split_words:"true" default:"Nikhil_Kumar_Bandi_Resume.pdf"`
}

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the settings the API needs
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMongo:
		if c.Mongo.URL == "" {
			return errors.New("MONGO_URL is required for the mongo store")
		}
		if c.Mongo.Database == "" {
			return errors.New("MONGO_DB_NAME is required for the mongo store")
		}
	case DriverPostgres:
		if c.Postgres.URL == "" {
			return errors.New("POSTGRES_URL is required for the postgres store")
		}
	default:
		return fmt.Errorf("unsupported store driver: %q (supported: %s, %s)", c.Store.Driver, DriverMongo, DriverPostgres)
	}
	return nil
}

// ValidateConsumer checks the settings the tracking consumer needs
func (c *Config) ValidateConsumer() error {
	if !c.SQS.Enabled() {
		return errors.New("SQS_QUEUE_URL is required for the consumer")
	}
	if !c.ClickHouse.Enabled() {
		return errors.New("CLICKHOUSE_HOST is required for the consumer")
	}
	if c.Consumer.BatchSizeMax <= 0 {
		return fmt.Errorf("CONSUMER_BATCH_SIZE_MAX must be positive, got %d", c.Consumer.BatchSizeMax)
	}
	if c.Consumer.BatchTimeoutSec <= 0 {
		return fmt.Errorf("CONSUMER_BATCH_TIMEOUT_SEC must be positive, got %d", c.Consumer.BatchTimeoutSec)
	}
	return nil
}
