// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	testCases := map[string]struct {
		envs map[string]string

		wantedConfig Config
		wantedErrMsg string
	}{
		"defaults applied when only the token is set": {
			envs: map[string]string{
				"DISCORD_API_KEY": "token",
			},
			wantedConfig: Config{
				DiscordToken: "token",
				ADK: ADK{
					BaseURL: "http://localhost:8000",
					AppName: "hackathon_support",
				},
				Port: 8080,
			},
		},
		"environment overrides the defaults": {
			envs: map[string]string{
				"DISCORD_API_KEY": "token",
				"ADK_BASE_URL":    "https://adk.example.com",
				"ADK_APP_NAME":    "my_agent",
				"PORT":            "9090",
			},
			wantedConfig: Config{
				DiscordToken: "token",
				ADK: ADK{
					BaseURL: "https://adk.example.com",
					AppName: "my_agent",
				},
				Port: 9090,
			},
		},
		"error when the token is missing": {
			envs: map[string]string{
				"ADK_BASE_URL": "https://adk.example.com",
			},
			wantedErrMsg: "environment variable DISCORD_API_KEY is not set",
		},
		"error when the port is not a number": {
			envs: map[string]string{
				"DISCORD_API_KEY": "token",
				"PORT":            "not-a-port",
			},
			wantedErrMsg: `parse PORT "not-a-port":`,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			for _, key := range []string{"DISCORD_API_KEY", "ADK_BASE_URL", "ADK_APP_NAME", "PORT"} {
				t.Setenv(key, "")
			}
			for key, value := range tc.envs {
				t.Setenv(key, value)
			}

			// WHEN
			cfg, err := Load()

			// THEN
			if tc.wantedErrMsg != "" {
				require.ErrorContains(t, err, tc.wantedErrMsg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantedConfig, cfg)
		})
	}
}

func TestErrMissingDiscordToken_RecommendActions(t *testing.T) {
	var err error = &ErrMissingDiscordToken{}

	var target *ErrMissingDiscordToken
	require.True(t, errors.As(err, &target))
	require.Contains(t, target.RecommendActions(), "hackbot init")
}
