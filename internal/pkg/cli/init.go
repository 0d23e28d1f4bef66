// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hackathon-support/hackbot/internal/pkg/cli/group"
	"github.com/hackathon-support/hackbot/internal/pkg/term/color"
	"github.com/hackathon-support/hackbot/internal/pkg/term/log"
	"github.com/hackathon-support/hackbot/internal/pkg/term/prompt"
	"github.com/hackathon-support/hackbot/internal/pkg/workspace"
)

const (
	initDiscordTokenPrompt     = "What is the token of the Discord bot account?"
	initDiscordTokenPromptHelp = `The token from the "Bot" page of your application in the Discord developer portal.
It is written to .env for local development only; the deployed bot reads it from Secret Manager.`

	initADKBaseURLPrompt     = "What is the base URL of the agent service?"
	initADKBaseURLPromptHelp = `The root URL of the ADK API server that answers support questions.
Keep the default if you run the agent locally with "adk api_server".`

	initADKAppNamePrompt     = "What is the name of the agent app?"
	initADKAppNamePromptHelp = "The agent application registered with the ADK server."

	fmtInitOverwritePrompt  = "The file %s already exists. Overwrite it?"
	initOverwritePromptHelp = "The existing values are replaced. Pass --force to skip this confirmation."
)

type initVars struct {
	discordToken string
	adkBaseURL   string
	adkAppName   string
	force        bool
}

type initOpts struct {
	initVars

	prompt prompter
	ws     envFileWriter
}

func newInitOpts(vars initVars) (*initOpts, error) {
	ws, err := workspace.New()
	if err != nil {
		return nil, err
	}
	return &initOpts{
		initVars: vars,
		prompt:   prompt.New(),
		ws:       ws,
	}, nil
}

// Validate returns an error if the values passed as flags are invalid.
func (o *initOpts) Validate() error {
	if o.discordToken != "" {
		if err := validateDiscordToken(o.discordToken); err != nil {
			return err
		}
	}
	if o.adkBaseURL != "" {
		if err := validateBaseURL(o.adkBaseURL); err != nil {
			return err
		}
	}
	if o.adkAppName != "" {
		if err := validateAppName(o.adkAppName); err != nil {
			return err
		}
	}
	return nil
}

// Ask prompts for the values that were not passed as flags.
func (o *initOpts) Ask() error {
	if o.discordToken == "" {
		token, err := o.prompt.GetSecret(initDiscordTokenPrompt, initDiscordTokenPromptHelp,
			prompt.WithFinalMessage("Discord token:"))
		if err != nil {
			return fmt.Errorf("get Discord token: %w", err)
		}
		o.discordToken = token
	}
	if o.adkBaseURL == "" {
		baseURL, err := o.prompt.Get(initADKBaseURLPrompt, initADKBaseURLPromptHelp,
			validateBaseURL,
			prompt.WithDefaultInput(defaultADKBaseURL),
			prompt.WithFinalMessage("Agent URL:"))
		if err != nil {
			return fmt.Errorf("get agent base URL: %w", err)
		}
		o.adkBaseURL = baseURL
	}
	if o.adkAppName == "" {
		appName, err := o.prompt.Get(initADKAppNamePrompt, initADKAppNamePromptHelp,
			validateAppName,
			prompt.WithDefaultInput(defaultADKAppName),
			prompt.WithFinalMessage("Agent app:"))
		if err != nil {
			return fmt.Errorf("get agent app name: %w", err)
		}
		o.adkAppName = appName
	}
	return nil
}

// Execute writes the .env file that `hackbot serve` reads.
func (o *initOpts) Execute() error {
	exists, err := o.ws.Exists(envFileName)
	if err != nil {
		return err
	}
	if exists && !o.force {
		overwrite, err := o.prompt.Confirm(
			fmt.Sprintf(fmtInitOverwritePrompt, color.HighlightResource(envFileName)),
			initOverwritePromptHelp)
		if err != nil {
			return fmt.Errorf("confirm overwrite of %s: %w", envFileName, err)
		}
		if !overwrite {
			return errInitCancelled
		}
	}
	content, err := godotenv.Marshal(map[string]string{
		"DISCORD_API_KEY": o.discordToken,
		"ADK_BASE_URL":    o.adkBaseURL,
		"ADK_APP_NAME":    o.adkAppName,
	})
	if err != nil {
		return fmt.Errorf("marshal %s content: %w", envFileName, err)
	}
	path, err := o.ws.Write([]byte(content+"\n"), envFileName)
	if err != nil {
		return err
	}
	log.Successf("Wrote the bot's configuration to %s.\n", color.HighlightResource(path))
	return nil
}

// RecommendActions suggests what to do with the fresh configuration.
func (o *initOpts) RecommendActions() error {
	logRecommendedActions([]string{
		fmt.Sprintf("Run %s to talk to the bot from your own Discord account.",
			color.HighlightCode("hackbot serve")),
		fmt.Sprintf("Store the token in Secret Manager and run %s to put the bot on Cloud Run.",
			color.HighlightCode("hackbot deploy")),
	})
	return nil
}

// BuildInitCmd builds the command to write a starter .env file.
func BuildInitCmd() *cobra.Command {
	vars := initVars{}
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .env file with the bot's configuration.",
		Long: `Create a .env file in the current directory with the settings that "hackbot serve" reads.
Values not passed as flags are asked for interactively.`,
		Example: `
  Create the configuration interactively.
  /code $ hackbot init
  Recreate it without being asked about the existing file.
  /code $ hackbot init --force`,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			opts, err := newInitOpts(vars)
			if err != nil {
				return err
			}
			return run(opts)
		}),
	}
	cmd.Flags().StringVar(&vars.discordToken, discordTokenFlag, "", discordTokenFlagDescription)
	cmd.Flags().StringVar(&vars.adkBaseURL, adkBaseURLFlag, "", adkBaseURLFlagDescription)
	cmd.Flags().StringVar(&vars.adkAppName, adkAppNameFlag, "", adkAppNameFlagDescription)
	cmd.Flags().BoolVar(&vars.force, forceFlag, false, forceFlagDescription)
	cmd.Annotations = map[string]string{
		"group": group.GettingStarted,
	}
	return cmd
}
