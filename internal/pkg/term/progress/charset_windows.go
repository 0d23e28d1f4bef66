// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	spin "github.com/briandowns/spinner"
)

// Windows terminals do not render the braille charset correctly.
var charset = spin.CharSets[9]
