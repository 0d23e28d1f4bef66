// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

// Package observability holds the logger and Prometheus metrics for the bot
// process. CLI commands print through the term packages instead; only the
// long-running serve process logs here.
package observability

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// NewLogger returns the root logger for the bot process and installs it as
// zerolog's global logger. Output is human-readable when stdout is a
// terminal and JSON otherwise, which Cloud Run ingests as structured log
// entries.
func NewLogger(app string) zerolog.Logger {
	var out io.Writer = os.Stdout
	if term.IsTerminal(int(os.Stdout.Fd())) {
		out = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}
	logger := zerolog.New(out).With().Timestamp().Str("app", app).Logger()
	log.Logger = logger
	return logger
}
