// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package workspace

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestWorkspace_Path(t *testing.T) {
	workingDir := filepath.FromSlash("/home/user/hackathon-bot")

	testCases := map[string]struct {
		dir string

		wanted string
	}{
		"should resolve the dot to the working directory": {
			dir:    ".",
			wanted: workingDir,
		},
		"should resolve a relative directory against the working directory": {
			dir:    "bot",
			wanted: filepath.FromSlash("/home/user/hackathon-bot/bot"),
		},
		"should clean an absolute directory": {
			dir:    filepath.FromSlash("/opt/src/../bot"),
			wanted: filepath.FromSlash("/opt/bot"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ws := &Workspace{
				workingDir: workingDir,
			}

			require.Equal(t, tc.wanted, ws.Path(tc.dir))
		})
	}
}

func TestWorkspace_IsExistingDir(t *testing.T) {
	workingDir := filepath.FromSlash("/home/user/hackathon-bot")

	testCases := map[string]struct {
		dir            string
		mockFileSystem func(appFS afero.Fs)

		wanted bool
	}{
		"should return true for an existing directory": {
			dir: ".",
			mockFileSystem: func(appFS afero.Fs) {
				_ = appFS.MkdirAll(workingDir, 0755)
			},
			wanted: true,
		},
		"should return false for a missing directory": {
			dir:            "does-not-exist",
			mockFileSystem: func(appFS afero.Fs) {},
			wanted:         false,
		},
		"should return false when the path is a file": {
			dir: "main.go",
			mockFileSystem: func(appFS afero.Fs) {
				_ = afero.WriteFile(appFS, filepath.Join(workingDir, "main.go"), []byte("package main"), 0644)
			},
			wanted: false,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			appFS := afero.NewMemMapFs()
			tc.mockFileSystem(appFS)
			ws := &Workspace{
				workingDir: workingDir,
				fsUtils:    &afero.Afero{Fs: appFS},
			}

			got, err := ws.IsExistingDir(tc.dir)

			require.NoError(t, err)
			require.Equal(t, tc.wanted, got)
		})
	}
}

func TestWorkspace_Write(t *testing.T) {
	// GIVEN
	workingDir := filepath.FromSlash("/home/user/hackathon-bot")
	appFS := afero.NewMemMapFs()
	ws := &Workspace{
		workingDir: workingDir,
		fsUtils:    &afero.Afero{Fs: appFS},
	}

	// WHEN
	path, err := ws.Write([]byte("PORT=8080\n"), ".env")

	// THEN
	require.NoError(t, err)
	require.Equal(t, filepath.Join(workingDir, ".env"), path)

	content, err := afero.ReadFile(appFS, path)
	require.NoError(t, err)
	require.Equal(t, "PORT=8080\n", string(content))

	exists, err := ws.Exists(".env")
	require.NoError(t, err)
	require.True(t, exists)
}
