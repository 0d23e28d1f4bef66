// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hackathon-support/hackbot/cmd/hackbot/template"
	"github.com/hackathon-support/hackbot/internal/pkg/cli/group"
)

// completionOpts contains the fields needed to generate completion scripts.
type completionOpts struct {
	Shell string // must be "bash" or "zsh"

	w         io.Writer
	completer shellCompleter
}

// Validate returns an error if the shell is not "bash" or "zsh".
func (o *completionOpts) Validate() error {
	if o.Shell == "bash" {
		return nil
	}
	if o.Shell == "zsh" {
		return nil
	}
	return errors.New("shell must be bash or zsh")
}

// Execute writes the completion code to the writer.
// This method assumes that Validate() was called prior to invocation.
func (o *completionOpts) Execute() error {
	if o.Shell == "bash" {
		return o.completer.GenBashCompletion(o.w)
	}
	return o.completer.GenZshCompletion(o.w)
}

// BuildCompletionCmd returns the command to output shell completion code for the specified shell (bash or zsh).
func BuildCompletionCmd(rootCmd *cobra.Command) *cobra.Command {
	opts := &completionOpts{}
	cmd := &cobra.Command{
		Use:   "completion [shell]",
		Short: "Output shell completion code.",
		Long: `Output shell completion code for bash or zsh.
The code must be evaluated to provide interactive completion of commands.`,
		Example: `
  Install zsh completion
  /code $ source <(hackbot completion zsh)
  /code $ hackbot completion zsh > "${fpath[1]}/_hackbot" # to autoload on startup

  Install bash completion on macOS using homebrew
  /code $ brew install bash-completion   # if running 3.2
  /code $ brew install bash-completion@2 # if running Bash 4.1+
  /code $ hackbot completion bash > /usr/local/etc/bash_completion.d

  Install bash completion on linux
  /code $ source <(hackbot completion bash)
  /code $ hackbot completion bash > hackbot.sh
  /code $ sudo mv hackbot.sh /etc/bash_completion.d/hackbot`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			opts.Shell = args[0]
			return opts.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.w = os.Stdout
			opts.completer = rootCmd
			return opts.Execute()
		},
	}
	cmd.SetUsageTemplate(template.Usage)
	cmd.Annotations = map[string]string{
		"group": group.Settings,
	}
	return cmd
}
