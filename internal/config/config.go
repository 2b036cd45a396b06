// Package config loads service settings from the environment through viper.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds every runtime setting of the service.
type Config struct {
	AppPort        string `validate:"required"`
	DatabaseDriver string `validate:"oneof=sqlite postgres"`
	DatabaseDSN    string `validate:"required"`
	ActingUserID   uint   `validate:"gt=0"`
	RabbitMQURL    string `validate:"omitempty,url"`
	LogLevel       string `validate:"oneof=debug info warn error"`
	LogPretty      bool
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "favorites.db")
	v.SetDefault("ACTING_USER_ID", 1)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
}

// Load reads the configuration from v, falling back to defaults and
// environment variables, and validates it.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		AppPort:        v.GetString("APP_PORT"),
		DatabaseDriver: v.GetString("DATABASE_DRIVER"),
		DatabaseDSN:    v.GetString("DATABASE_DSN"),
		ActingUserID:   v.GetUint("ACTING_USER_ID"),
		RabbitMQURL:    v.GetString("RABBITMQ_URL"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogPretty:      v.GetBool("LOG_PRETTY"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
