// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hackathon-support/hackbot/internal/pkg/config"
)

func TestServeOpts_Execute(t *testing.T) {
	t.Run("should return the configuration error", func(t *testing.T) {
		// GIVEN
		opts := serveOpts{
			loadConfig: func() (config.Config, error) {
				return config.Config{}, errors.New("some error")
			},
		}

		// WHEN
		err := opts.Execute()

		// THEN
		require.EqualError(t, err, "some error")
	})
}

func TestBuildServeCmd(t *testing.T) {
	t.Run("should take no flags", func(t *testing.T) {
		cmd := BuildServeCmd()
		require.False(t, cmd.Flags().HasFlags())
	})
}
