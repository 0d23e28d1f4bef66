//go:build !windows

// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package log

// Log message prefixes.
const (
	successPrefix = "✔ Success!"
	errorPrefix   = "✘ Error!"
	warningPrefix = "Note:"
)
