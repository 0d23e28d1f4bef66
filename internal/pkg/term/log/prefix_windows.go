// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package log

const (
	successPrefix = "√ Success!"
	errorPrefix   = "X Error!"
	warningPrefix = "Note:"
)
