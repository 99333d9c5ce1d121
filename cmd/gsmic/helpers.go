package main

import (
	"fmt"

	"github.com/at-ishikawa/gsmic/internal/config"
	"github.com/at-ishikawa/gsmic/internal/inference/openai"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newOpenAIClient(cfg config.OpenAIConfig) (*openai.Client, error) {
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}
	return openai.NewClient(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.RetryAttempts), nil
}
