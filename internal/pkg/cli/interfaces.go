// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"

	"github.com/hackathon-support/hackbot/internal/pkg/gcloud"
	"github.com/hackathon-support/hackbot/internal/pkg/term/prompt"
	"github.com/hackathon-support/hackbot/internal/pkg/workspace"
)

// cmd is the interface that every command in the CLI implements.
type cmd interface {
	// Validate returns an error if a flag's value is invalid.
	Validate() error

	// Ask prompts for flag values that are required but not passed in.
	Ask() error

	// Execute runs the command after collecting all required options.
	Execute() error
}

// actionCommand is the interface to run an action.
type actionCommand interface {
	cmd

	// RecommendActions logs follow-up suggestions users can run once the command executes successfully.
	RecommendActions() error
}

type prompter interface {
	Get(message, help string, validator prompt.ValidatorFunc, promptOpts ...prompt.PromptConfig) (string, error)
	GetSecret(message, help string, promptOpts ...prompt.PromptConfig) (string, error)
	Confirm(message, help string, promptOpts ...prompt.PromptConfig) (bool, error)
}

type progress interface {
	Start(label string)
	Stop(label string)
}

// runDeployer wraps the gcloud operations used by the deploy command.
type runDeployer interface {
	Deploy(in *gcloud.DeployArguments) error
	DeployCommand(in *gcloud.DeployArguments) (name string, args []string, err error)
	ActiveProject() string
}

// serviceDescriber wraps the gcloud operation used by the status command.
type serviceDescriber interface {
	DescribeService(service, region string) (*gcloud.Service, error)
}

// commitGetter reads the checked out commit of the repository containing the working directory.
type commitGetter interface {
	Commit() (*workspace.Commit, error)
}

// deployWorkspace wraps the workspace operations used by the deploy command.
type deployWorkspace interface {
	commitGetter

	Path(dir string) string
	IsExistingDir(dir string) (bool, error)
}

// envFileWriter wraps the workspace operations used to scaffold the .env file.
type envFileWriter interface {
	Exists(elem ...string) (bool, error)
	Write(data []byte, elem ...string) (string, error)
}

type shellCompleter interface {
	GenBashCompletion(w io.Writer) error
	GenZshCompletion(w io.Writer) error
}
