// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package workspace

import (
	"errors"
	"fmt"
)

// ErrNotAGitRepository means the working directory is not inside a git checkout.
type ErrNotAGitRepository struct {
	dir string
}

func (e *ErrNotAGitRepository) Error() string {
	return fmt.Sprintf("directory %s is not inside a git repository", e.dir)
}

// IsNoCommitErr returns whether the error means that no commit information is
// available for the workspace, as opposed to the git metadata being unreadable.
func IsNoCommitErr(err error) bool {
	var notRepo *ErrNotAGitRepository
	return errors.As(err, &notRepo)
}
