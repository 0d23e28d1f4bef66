// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

// Package cli contains the hackbot subcommands.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/hackathon-support/hackbot/internal/pkg/term/log"
	"github.com/spf13/cobra"
)

// Default values shared by multiple commands. They mirror the settings that
// the bot's Cloud Run service was originally created with.
const (
	defaultServiceName = "discord-hackathon-bot"
	defaultRegion      = "europe-north2"
	defaultSource      = "."
	defaultADKAppName  = "hackathon_support"
	defaultADKBaseURL  = "http://localhost:8000"
)

// envFileName is the local dotenv file that `hackbot init` writes and `hackbot serve` reads.
const envFileName = ".env"

// runCmdE wraps one of the run error methods, PreRunE, RunE, of a cobra command so that if a user
// types "help" in the arguments the usage string is printed instead of running the command.
func runCmdE(f func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && args[0] == "help" {
			_ = cmd.Help() // Help always returns nil.
			os.Exit(0)
		}
		return f(cmd, args)
	}
}

// run executes a given command.
func run(cmd cmd) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Ask(); err != nil {
		return err
	}
	if err := cmd.Execute(); err != nil {
		return err
	}
	if actionCmd, ok := cmd.(actionCommand); ok {
		if err := actionCmd.RecommendActions(); err != nil {
			return err
		}
	}
	return nil
}

// logRecommendedActions logs follow-up actions users can run after successfully executing a command.
func logRecommendedActions(actions []string) {
	log.Infoln("Recommended follow-up actions:")
	for _, followup := range actions {
		log.Infof("%s\n", indentListItem(followup))
	}
}

func indentListItem(multiline string) string {
	var prefixedLines []string
	for i, line := range strings.Split(multiline, "\n") {
		prefix := "    "
		if i == 0 {
			prefix = "  - "
		}
		prefixedLines = append(prefixedLines, fmt.Sprintf("%s%s", prefix, line))
	}
	return strings.Join(prefixedLines, "\n")
}
