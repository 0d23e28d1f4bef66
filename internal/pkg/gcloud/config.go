// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package gcloud

import (
	"path/filepath"
	"strings"

	"github.com/hackathon-support/hackbot/internal/pkg/ini"
	"github.com/spf13/afero"
)

// Environment variables honored by gcloud that override the configuration on disk.
// See https://cloud.google.com/sdk/docs/properties.
const (
	coreProjectEnvVar  = "CLOUDSDK_CORE_PROJECT"
	activeConfigEnvVar = "CLOUDSDK_ACTIVE_CONFIG_NAME"
)

const defaultConfigName = "default"

// ActiveProject returns the project that gcloud commands run against by default.
//
// The CLOUDSDK_CORE_PROJECT environment variable takes precedence over the project
// set with `gcloud config set project`. An empty string is returned if no project
// is configured; the deploy still proceeds, gcloud prompts for the project itself.
func (c CLI) ActiveProject() string {
	if project, ok := c.lookupEnv(coreProjectEnvVar); ok && project != "" {
		return project
	}
	if c.homePath == "" {
		return ""
	}
	cfg, err := ini.New(c.fs, c.configPath())
	if err != nil {
		return ""
	}
	return cfg.Value("core", "project")
}

// configPath returns the path of the active gcloud named configuration file.
func (c CLI) configPath() string {
	name := defaultConfigName
	if override, ok := c.lookupEnv(activeConfigEnvVar); ok && override != "" {
		name = override
	} else if raw, err := afero.ReadFile(c.fs, filepath.Join(c.homePath, ".config", "gcloud", "active_config")); err == nil {
		if active := strings.TrimSpace(string(raw)); active != "" {
			name = active
		}
	}
	return filepath.Join(c.homePath, ".config", "gcloud", "configurations", "config_"+name)
}
