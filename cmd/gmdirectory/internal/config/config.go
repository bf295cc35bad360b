package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/cetteup/gmdirectory/internal/chesscom"
)

type Config struct {
	API  APIConfig  `yaml:"api"`
	CORS CORSConfig `yaml:"cors"`
}

type APIConfig struct {
	BaseURL   string `yaml:"baseUrl" validate:"required,url"`
	UserAgent string `yaml:"userAgent"`
	// Zero leaves requests without a client-side timeout
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins" validate:"dive,required"`
}

func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL:   chesscom.DefaultBaseURL,
			UserAgent: chesscom.DefaultUserAgent,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}

// LoadConfig Values missing from the file (or the entire file) fall back to defaults
func LoadConfig(path string) (Config, error) {
	config := Default()

	content, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	if err == nil {
		if err = yaml.Unmarshal(content, &config); err != nil {
			return Config{}, err
		}
	}

	if err = validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
