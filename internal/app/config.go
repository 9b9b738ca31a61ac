package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultPort = 3000

// ErrMissingSecondNumber is returned when no destination number is configured.
var ErrMissingSecondNumber = errors.New("missing YOUR_SECOND_NUMBER")

type Config struct {
	// SecondNumber is the phone the inbound call gets connected to.
	SecondNumber string `mapstructure:"YOUR_SECOND_NUMBER" validate:"required,number"`
	// VonageNumber, when set, is presented as caller id on the connected leg.
	VonageNumber string `mapstructure:"YOUR_VONAGE_NUMBER" validate:"omitempty,number"`
	Port         int    `mapstructure:"PORT" validate:"min=1,max=65535"`
	LogLevel     string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn warning error"`
}

func (c *Config) Addr() string { return ":" + strconv.Itoa(c.Port) }

// LoadConfigFromEnv reads the process environment, after merging a local
// .env file if there is one. Variables already set in the process win.
func LoadConfigFromEnv() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("LOG_LEVEL", "info")
	for _, key := range []string{"YOUR_SECOND_NUMBER", "YOUR_VONAGE_NUMBER"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.SecondNumber = strings.TrimSpace(cfg.SecondNumber)
	cfg.VonageNumber = strings.TrimSpace(cfg.VonageNumber)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if cfg.SecondNumber == "" {
		return nil, ErrMissingSecondNumber
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
