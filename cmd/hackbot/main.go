// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

// Package main contains the root command.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/hackathon-support/hackbot/cmd/hackbot/template"
	"github.com/hackathon-support/hackbot/internal/pkg/cli"
	"github.com/hackathon-support/hackbot/internal/pkg/term/color"
	"github.com/hackathon-support/hackbot/internal/pkg/term/log"
	"github.com/hackathon-support/hackbot/internal/pkg/version"
)

const shortDescription = "Run and ship the hackathon support Discord bot."

type actionRecommender interface {
	RecommendActions() string
}

type exitCodeError interface {
	ExitCode() int
}

func init() {
	color.DisableColorBasedOnEnvVar()
	cobra.EnableCommandSorting = false // Maintain the order in which we add commands.
}

func main() {
	cmd := buildRootCmd()
	if err := cmd.Execute(); err != nil {
		var ac actionRecommender
		var exitCodeErr exitCodeError

		if errors.As(err, &ac) {
			log.Infoln(ac.RecommendActions())
		}
		if errors.As(err, &exitCodeErr) {
			// gcloud already reported the failure on the inherited terminal.
			log.Infoln(err.Error())
			os.Exit(exitCodeErr.ExitCode())
		}
		log.Errorln(err.Error())
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hackbot",
		Short: shortDescription,
		Example: `
  Displays the help menu for the "deploy" command.
  /code $ hackbot deploy --help`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If we don't set a Run() function the help menu doesn't show up.
			// See https://github.com/spf13/cobra/issues/790
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(log.OutputWriter)
	cmd.SetErr(log.DiagnosticWriter)

	// Sets version for --version flag. Version command gives more detailed
	// version information.
	cmd.Version = version.Version
	cmd.SetVersionTemplate("hackbot version: {{.Version}}\n")

	// NOTE: Order for each grouping below is significant in that it affects help menu output ordering.
	// "Getting Started" command group.
	cmd.AddCommand(cli.BuildInitCmd())

	// "Develop" command group.
	cmd.AddCommand(cli.BuildServeCmd())
	cmd.AddCommand(cli.BuildStatusCmd())

	// "Release" command group.
	cmd.AddCommand(cli.BuildDeployCmd())

	// "Settings" command group.
	cmd.AddCommand(cli.BuildVersionCmd())
	cmd.AddCommand(cli.BuildCompletionCmd(cmd))

	cmd.SetUsageTemplate(template.RootUsage)
	return cmd
}
