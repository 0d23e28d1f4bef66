// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

// Package color provides utilities to globally enable/disable color
// output of the CLI.
package color

import (
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/core"
	"github.com/fatih/color"
)

const colorEnvVar = "COLOR"

var lookupEnv = os.LookupEnv

var (
	cyan               = color.New(color.FgHiCyan)
	whiteBoldUnderline = color.New(color.FgHiWhite, color.Bold, color.Underline)
	magenta            = color.New(color.FgHiMagenta)
	bold               = color.New(color.Bold)
)

// Predefined colors.
var (
	Red    = color.New(color.FgHiRed)
	Green  = color.New(color.FgHiGreen)
	Yellow = color.New(color.FgHiYellow)
	Bold   = color.New(color.Bold)
	Faint  = color.New(color.Faint)
)

// Wrapper writers around standard error and standard output that work on windows.
var (
	Error  = color.Error
	Output = color.Output
)

// DisableColorBasedOnEnvVar determines whether the CLI will produce color
// output based on the environment variable, COLOR.
func DisableColorBasedOnEnvVar() {
	value, exists := lookupEnv(colorEnvVar)
	if !exists {
		// If the COLOR environment variable is not set
		// then follow the settings in the color library
		// since it's dynamically set based on the type of terminal
		// and whether stdout is connected to a terminal or not.
		core.DisableColor = color.NoColor
		return
	}

	if strings.ToLower(value) == "false" {
		core.DisableColor = true
		color.NoColor = true
	} else if strings.ToLower(value) == "true" {
		core.DisableColor = false
		color.NoColor = false
	}
}

// HighlightUserInput colors the string to denote it as an input from standard input, and returns it.
func HighlightUserInput(s string) string {
	return cyan.Sprint(s)
}

// HighlightResource colors the string to denote it as a resource managed by the CLI, and returns it.
func HighlightResource(s string) string {
	return whiteBoldUnderline.Sprint(s)
}

// HighlightCode wraps the string with the ` character, colors it to denote it's a code block, and returns it.
func HighlightCode(s string) string {
	return magenta.Sprintf("`%s`", s)
}

// Emphasize colors the string in bold, and returns it.
func Emphasize(s string) string {
	return bold.Sprint(s)
}

// Help colors the string to denote that it's a supplementary helpful message, and returns it.
func Help(s string) string {
	return Faint.Sprint(s)
}
