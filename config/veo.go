package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	DefaultPollIntervalSeconds = 8
	DefaultMaxRetries          = 2
	defaultMaxPollAttempts     = 75
	defaultVeoModel            = "veo-3.1-generate-preview"
)

type VeoConfig struct {
	ApiUrl              string
	ApiKey              string
	Model               string
	PollIntervalSeconds int
	MaxRetries          int
	MaxPollAttempts     int
}

func GetVeoConfig() (*VeoConfig, error) {
	apiUrl := os.Getenv("VEO_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("VEO_API_URL must be set")
	}
	apiKey := os.Getenv("VEO_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("VEO_API_KEY must be set")
	}
	model := os.Getenv("VEO_MODEL")
	if model == "" {
		model = defaultVeoModel
	}

	pollInterval, err := intFromEnv("VEO_POLL_INTERVAL", DefaultPollIntervalSeconds)
	if err != nil {
		return nil, err
	}
	maxRetries, err := intFromEnv("VEO_MAX_RETRIES", DefaultMaxRetries)
	if err != nil {
		return nil, err
	}
	maxPollAttempts, err := intFromEnv("VEO_MAX_POLL_ATTEMPTS", defaultMaxPollAttempts)
	if err != nil {
		return nil, err
	}

	return &VeoConfig{
		ApiUrl:              apiUrl,
		ApiKey:              apiKey,
		Model:               model,
		PollIntervalSeconds: pollInterval,
		MaxRetries:          maxRetries,
		MaxPollAttempts:     maxPollAttempts,
	}, nil
}

func intFromEnv(name string, fallback int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return val, nil
}
