// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package workspace

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
)

const shortSHALength = 7

// Commit summarizes the git checkout that a deployment is built from.
type Commit struct {
	ShortSHA string
	Dirty    bool // Whether there are uncommitted changes in the worktree.
}

// String implements the fmt.Stringer interface.
func (c *Commit) String() string {
	if c.Dirty {
		return fmt.Sprintf("%s (dirty)", c.ShortSHA)
	}
	return c.ShortSHA
}

// Commit returns the checked out commit of the repository containing the working directory.
func (ws *Workspace) Commit() (*Commit, error) {
	repo, err := git.PlainOpenWithOptions(ws.workingDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, &ErrNotAGitRepository{dir: ws.workingDir}
		}
		return nil, fmt.Errorf("open git repository at %s: %w", ws.workingDir, err)
	}
	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("read HEAD: %w", err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}
	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("read worktree status: %w", err)
	}
	return &Commit{
		ShortSHA: head.Hash().String()[:shortSHALength],
		Dirty:    !status.IsClean(),
	}, nil
}
