//go:build !windows

// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	spin "github.com/briandowns/spinner"
)

var charset = spin.CharSets[14]
