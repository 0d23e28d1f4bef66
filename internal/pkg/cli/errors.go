// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"

	"github.com/hackathon-support/hackbot/internal/pkg/term/color"
)

// errInitCancelled means the user declined to overwrite an existing .env file.
var errInitCancelled = errors.New("init cancelled - no changes made")

type errSecretMalformed struct {
	env string
	ref string
}

func (e *errSecretMalformed) Error() string {
	return fmt.Sprintf("invalid secret reference %q for %s", e.ref, e.env)
}

// RecommendActions returns the format that secret references must follow.
func (e *errSecretMalformed) RecommendActions() string {
	return fmt.Sprintf(`Reference Secret Manager secrets as %s.
For example: %s.`,
		color.HighlightCode("ENV_VAR=SECRET_NAME:VERSION"),
		color.HighlightCode("--set-secrets DISCORD_API_KEY=DISCORD_API_KEY:latest"))
}

type errEmptyFlag struct {
	name string
}

func (e *errEmptyFlag) Error() string {
	return fmt.Sprintf("--%s cannot be empty", e.name)
}
