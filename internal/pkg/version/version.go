// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

// Package version holds variables for generating version information
package version

// Version is this binary's version. Set with linker flags when building hackbot.
var Version string

// Platform is the operating system and architecture this binary was built for.
// Set with linker flags.
var Platform string
