package config

import (
	"context"

	"github.com/SeaCloudHub/eventually/pkg/validation"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV" default:"local" mod:"trim,lcase"`
	Debug        bool   `envconfig:"DEBUG" default:"false"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info" mod:"trim,lcase" validate:"oneof=debug info warn error"`
	Port         int    `envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS" mod:"trim"`
	SentryDSN    string `envconfig:"SENTRY_DSN" mod:"trim"`

	Events EventsConfig `envconfig:"EVENTS"`
}

// EventsConfig overrides the settings of every declared event source type.
type EventsConfig struct {
	MaxListeners int  `envconfig:"MAX_LISTENERS" default:"10" validate:"min=0"`
	Strict       bool `envconfig:"STRICT" default:"false"`
}

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig(filenames ...string) (*Config, error) {
	_ = godotenv.Load(filenames...)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "cannot process env")
	}

	if err := validation.Conform().Struct(context.Background(), &cfg); err != nil {
		return nil, errors.Wrap(err, "cannot conform config")
	}

	if err := validation.Validate().Struct(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.AppEnv == "local"
}
