// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

// Package ini provides functionality to parse and read properties from INI files.
package ini

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

// INI represents a parsed INI file in memory.
type INI struct {
	cfg *ini.File
}

// New returns an INI parsed from the file at path on the given file system.
// An error is returned if the file cannot be read or parsed.
func New(fs afero.Fs, path string) (*INI, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read ini file %s: %w", path, err)
	}
	cfg, err := ini.Load(raw)
	if err != nil {
		return nil, fmt.Errorf("parse ini file %s: %w", path, err)
	}
	return &INI{
		cfg: cfg,
	}, nil
}

// Sections returns the names of non-default sections in the INI file.
func (i *INI) Sections() []string {
	var names []string
	for _, section := range i.cfg.Sections() {
		if name := section.Name(); name != ini.DefaultSection {
			names = append(names, name)
		}
	}
	return names
}

// Value returns the value of key under the given section.
// An empty string is returned if the section or the key does not exist.
func (i *INI) Value(section, key string) string {
	sec, err := i.cfg.GetSection(section)
	if err != nil {
		return ""
	}
	if !sec.HasKey(key) {
		return ""
	}
	return sec.Key(key).String()
}
