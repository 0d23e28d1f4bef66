// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

// Package exec provides an interface to execute certain commands.
package exec

import (
	"context"
	"io"
	"os"
	"os/exec"
)

type cmdRunner interface {
	Run() error
}

// CmdOption is a function that can configure a command before it runs.
type CmdOption func(cmd *exec.Cmd)

// Stdin sets the command's standard input to r.
func Stdin(r io.Reader) CmdOption {
	return func(c *exec.Cmd) {
		c.Stdin = r
	}
}

// Stdout sets the command's standard output to w.
func Stdout(w io.Writer) CmdOption {
	return func(c *exec.Cmd) {
		c.Stdout = w
	}
}

// Stderr sets the command's standard error to w.
func Stderr(w io.Writer) CmdOption {
	return func(c *exec.Cmd) {
		c.Stderr = w
	}
}

// Cmd runs external commands. It wraps the stdlib's exec package so that
// commands are testable.
type Cmd struct {
	command func(ctx context.Context, name string, args []string, opts ...CmdOption) cmdRunner
}

// NewCmd returns a Cmd that can run external commands.
// By default the output of the commands is piped to stderr so that
// stdout remains reserved for machine-readable output.
func NewCmd() *Cmd {
	return &Cmd{
		command: newProcessCmd,
	}
}

func newProcessCmd(ctx context.Context, name string, args []string, opts ...CmdOption) cmdRunner {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	for _, opt := range opts {
		opt(cmd)
	}
	return cmd
}

// Run starts the named command and waits until it finishes.
func (c *Cmd) Run(name string, args []string, opts ...CmdOption) error {
	cmd := c.command(context.Background(), name, args, opts...)
	return cmd.Run()
}

// RunWithContext starts the named command with the given context and waits until it finishes.
// The process is killed if the context becomes done before the command completes.
func (c *Cmd) RunWithContext(ctx context.Context, name string, args []string, opts ...CmdOption) error {
	cmd := c.command(ctx, name, args, opts...)
	return cmd.Run()
}
