// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

// Package workspace contains functionality to inspect and manage the directory
// that hackbot commands run from. Deployments upload this directory to Cloud
// Build, so commands display and validate it before shelling out.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Workspace provides access to the directory that commands run in.
type Workspace struct {
	workingDir string
	fsUtils    *afero.Afero
}

// New returns a Workspace rooted at the process's current working directory.
func New() (*Workspace, error) {
	workingDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return &Workspace{
		workingDir: workingDir,
		fsUtils:    &afero.Afero{Fs: afero.NewOsFs()},
	}, nil
}

// Path returns the absolute path of dir.
// Relative paths are resolved against the working directory, so "." resolves
// to the working directory itself.
func (ws *Workspace) Path(dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(ws.workingDir, dir)
}

// IsExistingDir returns whether dir exists and is a directory.
func (ws *Workspace) IsExistingDir(dir string) (bool, error) {
	info, err := ws.fsUtils.Stat(ws.Path(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat directory %s: %w", dir, err)
	}
	return info.IsDir(), nil
}

// Exists returns whether the file under the working directory joined by path elements exists.
func (ws *Workspace) Exists(elem ...string) (bool, error) {
	pathElems := append([]string{ws.workingDir}, elem...)
	return ws.fsUtils.Exists(filepath.Join(pathElems...))
}

// Write writes the data to a file under the working directory joined by path elements.
// If successful returns the full path of the file, otherwise returns an empty string and the error.
func (ws *Workspace) Write(data []byte, elem ...string) (string, error) {
	pathElems := append([]string{ws.workingDir}, elem...)
	filename := filepath.Join(pathElems...)

	if err := ws.fsUtils.MkdirAll(filepath.Dir(filename), 0755 /* -rwxr-xr-x */); err != nil {
		return "", fmt.Errorf("create directories for file %s: %w", filename, err)
	}
	if err := ws.fsUtils.WriteFile(filename, data, 0644 /* -rw-r--r-- */); err != nil {
		return "", fmt.Errorf("write file %s: %w", filename, err)
	}
	return filename, nil
}
