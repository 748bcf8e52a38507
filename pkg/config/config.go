package configutils

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

func ReadFromFile[T any](path string) (*T, error) {
	var cfg T
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read configuration from file: %w", err)
	}

	return &cfg, nil
}

func ReadFromEnv[T any]() (*T, error) {
	var cfg T
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read configuration from env: %w", err)
	}

	return &cfg, nil
}

// Read loads from path when it is set and from the environment otherwise.
func Read[T any](path string) (*T, error) {
	if path == "" {
		return ReadFromEnv[T]()
	}
	return ReadFromFile[T](path)
}

// Usage describes the environment variables T understands.
func Usage[T any](header string) (string, error) {
	var cfg T
	return cleanenv.GetDescription(&cfg, &header)
}
