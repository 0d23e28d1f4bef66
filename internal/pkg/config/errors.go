// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package config

import "fmt"

// ErrMissingDiscordToken means the Discord token is not set in the environment.
type ErrMissingDiscordToken struct{}

func (e *ErrMissingDiscordToken) Error() string {
	return fmt.Sprintf("environment variable %s is not set", envDiscordToken)
}

// RecommendActions implements the cli.actionRecommender interface.
func (e *ErrMissingDiscordToken) RecommendActions() string {
	return fmt.Sprintf(`Run %s to write a .env file with your bot token, or export %s before starting the bot.`,
		"`hackbot init`", envDiscordToken)
}
