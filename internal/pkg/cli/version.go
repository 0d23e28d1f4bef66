// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hackathon-support/hackbot/cmd/hackbot/template"
	"github.com/hackathon-support/hackbot/internal/pkg/cli/group"
	"github.com/hackathon-support/hackbot/internal/pkg/version"
)

// BuildVersionCmd builds the command for displaying the version.
func BuildVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number.",
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			fmt.Printf("version: %s, built for %s\n", version.Version, version.Platform)
			return nil
		}),
		Annotations: map[string]string{
			"group": group.Settings,
		},
	}
	cmd.SetUsageTemplate(template.Usage)
	return cmd
}
