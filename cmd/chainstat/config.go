package main

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config of chainstat, read from CHAINSTAT_* variables.
type Config struct {
	Multi    bool   `envconfig:"MULTI" default:"false"`
	Buckets  uint   `envconfig:"BUCKETS" default:"0"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Top      int    `envconfig:"TOP" default:"5"`
}

// LoadFromEnv loads the configuration from environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Variables already set take precedence over the .env file
	_ = godotenv.Load()

	config := new(Config)
	if err := envconfig.Process("chainstat", config); err != nil {
		return nil, err
	}
	return config, nil
}
