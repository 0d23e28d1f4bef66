// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the bot's runtime configuration from the process
// environment. Values are read from environment variables with an optional
// .env file for local development; in Cloud Run they arrive through
// --set-env-vars and --set-secrets.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/imdario/mergo"
	"github.com/joho/godotenv"
)

// Environment variable names read by Load.
const (
	envDiscordToken = "DISCORD_API_KEY"
	envADKBaseURL   = "ADK_BASE_URL"
	envADKAppName   = "ADK_APP_NAME"
	envPort         = "PORT"
)

// ADK holds the settings for reaching the agent service.
type ADK struct {
	// BaseURL is the root URL of the ADK API server, without a trailing slash.
	BaseURL string
	// AppName is the agent application registered with the ADK server.
	AppName string
}

// Config holds the runtime settings for the bot process.
type Config struct {
	// DiscordToken authenticates the gateway connection. Required.
	DiscordToken string
	// ADK configures the agent backend that answers support questions.
	ADK ADK
	// Port is the address the health server listens on. Cloud Run sets it.
	Port int
}

func defaultConfig() Config {
	return Config{
		ADK: ADK{
			BaseURL: "http://localhost:8000",
			AppName: "hackathon_support",
		},
		Port: 8080,
	}
}

// Load reads the configuration from the environment, falling back to
// defaults for any unset optional value. A .env file in the working
// directory is loaded first if present; real environment variables win over
// file entries.
func Load() (Config, error) {
	_ = godotenv.Load() // best effort, the file only exists in local dev

	cfg := Config{
		DiscordToken: os.Getenv(envDiscordToken),
		ADK: ADK{
			BaseURL: os.Getenv(envADKBaseURL),
			AppName: os.Getenv(envADKAppName),
		},
	}
	if raw := os.Getenv(envPort); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s %q: %w", envPort, raw, err)
		}
		cfg.Port = port
	}
	if err := mergo.Merge(&cfg, defaultConfig()); err != nil {
		return Config{}, fmt.Errorf("apply default configuration: %w", err)
	}
	if cfg.DiscordToken == "" {
		return Config{}, &ErrMissingDiscordToken{}
	}
	return cfg, nil
}
