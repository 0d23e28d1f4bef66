// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/hackathon-support/hackbot/internal/pkg/cli/mocks"
	"github.com/hackathon-support/hackbot/internal/pkg/gcloud"
	"github.com/hackathon-support/hackbot/internal/pkg/workspace"
)

var defaultDeployVars = deployVars{
	name:                 "discord-hackathon-bot",
	source:               ".",
	region:               "europe-north2",
	allowUnauthenticated: true,
	envVars: map[string]string{
		"ADK_APP_NAME": "hackathon_support",
	},
	secrets: map[string]string{
		"DISCORD_API_KEY": "DISCORD_API_KEY:latest",
		"ADK_BASE_URL":    "ADK_BASE_URL:latest",
	},
	minInstances:    1,
	maxInstances:    1,
	noCPUThrottling: true,
}

func TestDeployOpts_Validate(t *testing.T) {
	testCases := map[string]struct {
		inVars func() deployVars
		mockWs func(m *mocks.MockdeployWorkspace)

		wantedError string
	}{
		"valid with the production defaults": {
			inVars: func() deployVars { return defaultDeployVars },
			mockWs: func(m *mocks.MockdeployWorkspace) {
				m.EXPECT().IsExistingDir(".").Return(true, nil)
			},
		},
		"fail if the service name is empty": {
			inVars: func() deployVars {
				vars := defaultDeployVars
				vars.name = ""
				return vars
			},
			wantedError: "--name cannot be empty",
		},
		"fail if the region is empty": {
			inVars: func() deployVars {
				vars := defaultDeployVars
				vars.region = ""
				return vars
			},
			wantedError: "--region cannot be empty",
		},
		"fail if the source is empty": {
			inVars: func() deployVars {
				vars := defaultDeployVars
				vars.source = ""
				return vars
			},
			wantedError: "--source cannot be empty",
		},
		"fail if the source is not an existing directory": {
			inVars: func() deployVars {
				vars := defaultDeployVars
				vars.source = "chicken/wings"
				return vars
			},
			mockWs: func(m *mocks.MockdeployWorkspace) {
				m.EXPECT().IsExistingDir("chicken/wings").Return(false, nil)
			},
			wantedError: "source chicken/wings is not an existing directory",
		},
		"fail if min instances is negative": {
			inVars: func() deployVars {
				vars := defaultDeployVars
				vars.minInstances = -1
				return vars
			},
			mockWs: func(m *mocks.MockdeployWorkspace) {
				m.EXPECT().IsExistingDir(".").Return(true, nil)
			},
			wantedError: "--min-instances cannot be negative",
		},
		"fail if max instances is negative": {
			inVars: func() deployVars {
				vars := defaultDeployVars
				vars.maxInstances = -3
				return vars
			},
			mockWs: func(m *mocks.MockdeployWorkspace) {
				m.EXPECT().IsExistingDir(".").Return(true, nil)
			},
			wantedError: "--max-instances cannot be negative",
		},
		"fail if a secret reference has no version": {
			inVars: func() deployVars {
				vars := defaultDeployVars
				vars.secrets = map[string]string{
					"DISCORD_API_KEY": "DISCORD_API_KEY",
				}
				return vars
			},
			mockWs: func(m *mocks.MockdeployWorkspace) {
				m.EXPECT().IsExistingDir(".").Return(true, nil)
			},
			wantedError: `invalid secret reference "DISCORD_API_KEY" for DISCORD_API_KEY`,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockWs := mocks.NewMockdeployWorkspace(ctrl)
			if tc.mockWs != nil {
				tc.mockWs(mockWs)
			}
			opts := deployOpts{
				deployVars: tc.inVars(),
				ws:         mockWs,
			}

			// WHEN
			err := opts.Validate()

			// THEN
			if tc.wantedError != "" {
				require.EqualError(t, err, tc.wantedError)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDeployOpts_Execute(t *testing.T) {
	wantedArgs := &gcloud.DeployArguments{
		Service:              "discord-hackathon-bot",
		Source:               ".",
		Region:               "europe-north2",
		AllowUnauthenticated: true,
		EnvVars: map[string]string{
			"ADK_APP_NAME": "hackathon_support",
		},
		Secrets: map[string]string{
			"DISCORD_API_KEY": "DISCORD_API_KEY:latest",
			"ADK_BASE_URL":    "ADK_BASE_URL:latest",
		},
		MinInstances:    1,
		MaxInstances:    1,
		NoCPUThrottling: true,
	}

	testCases := map[string]struct {
		inVars       func() deployVars
		mockDeployer func(m *mocks.MockrunDeployer)
		mockWs       func(m *mocks.MockdeployWorkspace)

		wantedOut   string
		wantedError error
	}{
		"deploy passes the flag values through unchanged": {
			inVars: func() deployVars { return defaultDeployVars },
			mockDeployer: func(m *mocks.MockrunDeployer) {
				m.EXPECT().ActiveProject().Return("hackathon-support")
				m.EXPECT().Deploy(wantedArgs).Return(nil)
			},
			mockWs: func(m *mocks.MockdeployWorkspace) {
				m.EXPECT().Path(".").Return("/home/user/bot")
				m.EXPECT().Commit().Return(&workspace.Commit{ShortSHA: "abc1234"}, nil)
			},
		},
		"deploy keeps going when the source is not a git checkout": {
			inVars: func() deployVars { return defaultDeployVars },
			mockDeployer: func(m *mocks.MockrunDeployer) {
				m.EXPECT().ActiveProject().Return("")
				m.EXPECT().Deploy(wantedArgs).Return(nil)
			},
			mockWs: func(m *mocks.MockdeployWorkspace) {
				m.EXPECT().Path(".").Return("/home/user/bot")
				m.EXPECT().Commit().Return(nil, &workspace.ErrNotAGitRepository{})
			},
		},
		"deploy returns the gcloud error unchanged": {
			inVars: func() deployVars { return defaultDeployVars },
			mockDeployer: func(m *mocks.MockrunDeployer) {
				m.EXPECT().ActiveProject().Return("hackathon-support")
				m.EXPECT().Deploy(wantedArgs).Return(&gcloud.ErrDeployExited{})
			},
			mockWs: func(m *mocks.MockdeployWorkspace) {
				m.EXPECT().Path(".").Return("/home/user/bot")
				m.EXPECT().Commit().Return(&workspace.Commit{ShortSHA: "abc1234"}, nil)
			},
			wantedError: &gcloud.ErrDeployExited{},
		},
		"dry run prints the command line without deploying": {
			inVars: func() deployVars {
				vars := defaultDeployVars
				vars.dryRun = true
				return vars
			},
			mockDeployer: func(m *mocks.MockrunDeployer) {
				m.EXPECT().DeployCommand(wantedArgs).
					Return("gcloud", []string{"run", "deploy", "discord-hackathon-bot"}, nil)
			},
			wantedOut: "gcloud run deploy discord-hackathon-bot\n",
		},
		"dry run returns the lookup error": {
			inVars: func() deployVars {
				vars := defaultDeployVars
				vars.dryRun = true
				return vars
			},
			mockDeployer: func(m *mocks.MockrunDeployer) {
				m.EXPECT().DeployCommand(wantedArgs).
					Return("", nil, errors.New("some error"))
			},
			wantedError: errors.New("some error"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDeployer := mocks.NewMockrunDeployer(ctrl)
			if tc.mockDeployer != nil {
				tc.mockDeployer(mockDeployer)
			}
			mockWs := mocks.NewMockdeployWorkspace(ctrl)
			if tc.mockWs != nil {
				tc.mockWs(mockWs)
			}
			buf := new(bytes.Buffer)
			opts := deployOpts{
				deployVars: tc.inVars(),
				deployer:   mockDeployer,
				ws:         mockWs,
				w:          buf,
			}

			// WHEN
			err := opts.Execute()

			// THEN
			if tc.wantedError != nil {
				require.EqualError(t, err, tc.wantedError.Error())
			} else {
				require.NoError(t, err)
			}
			if tc.wantedOut != "" {
				require.Equal(t, tc.wantedOut, buf.String())
			}
		})
	}
}

func TestBuildDeployCmd(t *testing.T) {
	t.Run("should default to the production deployment", func(t *testing.T) {
		// GIVEN
		cmd := BuildDeployCmd()

		// WHEN
		err := cmd.ParseFlags(nil)

		// THEN
		require.NoError(t, err)
		name, _ := cmd.Flags().GetString(nameFlag)
		require.Equal(t, "discord-hackathon-bot", name)
		source, _ := cmd.Flags().GetString(sourceFlag)
		require.Equal(t, ".", source)
		region, _ := cmd.Flags().GetString(regionFlag)
		require.Equal(t, "europe-north2", region)
		allowUnauthenticated, _ := cmd.Flags().GetBool(allowUnauthenticatedFlag)
		require.True(t, allowUnauthenticated)
		envVars, _ := cmd.Flags().GetStringToString(envVarsFlag)
		require.Equal(t, map[string]string{"ADK_APP_NAME": "hackathon_support"}, envVars)
		secrets, _ := cmd.Flags().GetStringToString(secretsFlag)
		require.Equal(t, map[string]string{
			"DISCORD_API_KEY": "DISCORD_API_KEY:latest",
			"ADK_BASE_URL":    "ADK_BASE_URL:latest",
		}, secrets)
		minInstances, _ := cmd.Flags().GetInt(minInstancesFlag)
		require.Equal(t, 1, minInstances)
		maxInstances, _ := cmd.Flags().GetInt(maxInstancesFlag)
		require.Equal(t, 1, maxInstances)
		noCPUThrottling, _ := cmd.Flags().GetBool(noCPUThrottlingFlag)
		require.True(t, noCPUThrottling)
		dryRun, _ := cmd.Flags().GetBool(dryRunFlag)
		require.False(t, dryRun)
	})

	t.Run("should group every flag for the help menu", func(t *testing.T) {
		// GIVEN
		cmd := BuildDeployCmd()

		// THEN
		require.Contains(t, cmd.Annotations["service"], "--"+secretsFlag)
		require.Contains(t, cmd.Annotations["scaling"], "--"+noCPUThrottlingFlag)
		require.Contains(t, cmd.Annotations["utility"], "--"+dryRunFlag)
	})
}
