package main

import (
	"fmt"
	"strings"
	"time"

	"AIV_training_backend/internal/repository"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configPath   = "./"
	configName   = "config"
	configFormat = "yaml"
)

type Config struct {
	Database repository.Config `yaml:"database"`
	Server   ServerConfig      `yaml:"server"`

	Session   SessionConfig   `yaml:"session"`
	Countdown CountdownConfig `yaml:"countdown"`
	Payment   PaymentConfig   `yaml:"payment"`

	LogLevel string `yaml:"logLevel"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type SessionConfig struct {
	Secret   string        `yaml:"secret"`
	TokenTTL time.Duration `yaml:"tokenTTL"`
}

type CountdownConfig struct {
	Target string `yaml:"target"`
}

// TargetTime parses the configured launch instant.
func (c CountdownConfig) TargetTime() (time.Time, error) {
	return time.Parse(time.RFC3339, c.Target)
}

type PaymentConfig struct {
	URL             string `yaml:"url"`
	RedirectDelayMS int    `yaml:"redirectDelayMs"`
}

func LoadConfig() (*Config, error) {
	// Local overrides live in .env, same keys as the APP_ env variables.
	_ = godotenv.Load()

	viper.SetConfigName(configName)
	viper.AddConfigPath(configPath)
	viper.SetConfigType(configFormat)

	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
