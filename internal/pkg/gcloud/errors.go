// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package gcloud

import "fmt"

// ErrGcloudCommandNotFound means the gcloud binary could not be found on the PATH.
type ErrGcloudCommandNotFound struct {
	parent error
}

func (e *ErrGcloudCommandNotFound) Error() string {
	return fmt.Sprintf("gcloud: command not found: %v", e.parent)
}

// RecommendActions implements the cli.actionRecommender interface.
func (e *ErrGcloudCommandNotFound) RecommendActions() string {
	return fmt.Sprintf(`Please follow instructions at: %q to install the Google Cloud CLI,
then authenticate with "gcloud auth login".`, "https://cloud.google.com/sdk/docs/install")
}

// ErrDeployExited means `gcloud run deploy` ran but exited with a non-zero code.
type ErrDeployExited struct {
	service  string
	exitcode int
}

func (e *ErrDeployExited) Error() string {
	return fmt.Sprintf("deploy service %q: gcloud exited with code %d", e.service, e.exitcode)
}

// ExitCode returns the code that gcloud exited with so that callers can propagate it.
func (e *ErrDeployExited) ExitCode() int {
	return e.exitcode
}
