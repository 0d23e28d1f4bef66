//go:build !windows

// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

// Package group contains the names of command groups.
package group

// Categories for each top level command in the CLI.
const (
	GettingStarted = "Getting Started ✨"
	Develop        = "Develop 🔧"
	Release        = "Release 🚀"
	Settings       = "Settings ⚙️"
)
