// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

// Package describe renders deployed Cloud Run services for humans and machines.
package describe

import (
	"github.com/dustin/go-humanize"
)

const (
	minCellWidth           = 20  // minimum number of characters in a table's cell.
	tabWidth               = 4   // number of characters in between columns.
	cellPaddingWidth       = 2   // number of padding characters added by default to a cell.
	paddingChar            = ' ' // character in between columns.
	noAdditionalFormatting = 0
)

// humanizeTime is overridden in tests so that its output is constant as time passes.
var humanizeTime = humanize.Time
