// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

// Package gcloud provides functionality to interact with Google Cloud via the gcloud command line.
package gcloud

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	osexec "os/exec"
	"sort"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/hackathon-support/hackbot/internal/pkg/exec"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const binaryName = "gcloud"

// overrideEnvVar replaces the gcloud invocation with a shell-style command line,
// for example "gcloud beta" or "/opt/google-cloud-sdk/bin/gcloud".
const overrideEnvVar = "HACKBOT_GCLOUD"

// Cmd is the interface implemented by external commands.
type Cmd interface {
	Run(name string, args []string, opts ...exec.CmdOption) error
	InteractiveRun(name string, args []string) error
}

// CLI represents the Google Cloud command line to invoke gcloud subcommands with.
type CLI struct {
	runner Cmd
	// Override in unit tests.
	fs        afero.Fs
	homePath  string
	lookPath  func(file string) (string, error)
	lookupEnv func(key string) (string, bool)
}

// New returns a CLI that invokes the gcloud binary found on the PATH.
func New(cmd Cmd) CLI {
	return CLI{
		runner:    cmd,
		fs:        afero.NewOsFs(),
		homePath:  userHomeDirectory(),
		lookPath:  osexec.LookPath,
		lookupEnv: os.LookupEnv,
	}
}

// DeployArguments holds the arguments that can be passed to `gcloud run deploy`.
type DeployArguments struct {
	Service              string            // Required. Name of the Cloud Run service to deploy.
	Source               string            // Required. Directory with the source code to build and deploy.
	Region               string            // Required. Region to deploy the service in.
	AllowUnauthenticated bool              // Allow public, unauthenticated requests to reach the service.
	EnvVars              map[string]string // Optional. Environment variables to set on the service.
	Secrets              map[string]string // Optional. Secret Manager references to expose as environment variables.
	MinInstances         int               // Number of container instances to keep warm.
	MaxInstances         int               // Number of container instances to scale out to at most.
	NoCPUThrottling      bool              // Keep the CPU allocated outside of request processing.
}

// Deploy builds and deploys a service to Cloud Run by shelling out to `gcloud run deploy`.
//
// The child process inherits the terminal so that build logs and any prompts
// from gcloud, such as enabling missing APIs, reach the user directly.
// If gcloud exits with a non-zero code, the returned error carries that code.
func (c CLI) Deploy(in *DeployArguments) error {
	name, args, err := c.DeployCommand(in)
	if err != nil {
		return err
	}
	if err := c.runner.InteractiveRun(name, args); err != nil {
		// *exec.ExitError implements ExitCode(); keep whatever code gcloud exited with.
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			return &ErrDeployExited{
				service:  in.Service,
				exitcode: exitErr.ExitCode(),
			}
		}
		return fmt.Errorf("run gcloud run deploy: %w", err)
	}
	return nil
}

// DeployCommand returns the exact command line that Deploy would run, without running it.
func (c CLI) DeployCommand(in *DeployArguments) (name string, args []string, err error) {
	name, leading, err := c.gcloudCmd()
	if err != nil {
		return "", nil, err
	}
	return name, append(leading, deployArgs(in)...), nil
}

// Annotations on the revision template that carry the scaling settings
// `gcloud run deploy --min-instances/--max-instances` write.
const (
	minScaleAnnotation = "autoscaling.knative.dev/minScale"
	maxScaleAnnotation = "autoscaling.knative.dev/maxScale"
)

// Service holds the fields of a Cloud Run service description that we display.
type Service struct {
	Metadata struct {
		Name      string `yaml:"name"`
		Namespace string `yaml:"namespace"`
	} `yaml:"metadata"`
	Spec struct {
		Template struct {
			Metadata struct {
				Annotations map[string]string `yaml:"annotations"`
			} `yaml:"metadata"`
		} `yaml:"template"`
	} `yaml:"spec"`
	Status struct {
		URL                 string          `yaml:"url"`
		LatestReadyRevision string          `yaml:"latestReadyRevisionName"`
		Conditions          []Condition     `yaml:"conditions"`
		Traffic             []TrafficTarget `yaml:"traffic"`
	} `yaml:"status"`
}

// Condition reports the status of an aspect of a Cloud Run service, such as "Ready".
type Condition struct {
	Type               string `yaml:"type"`
	Status             string `yaml:"status"`
	Message            string `yaml:"message"`
	LastTransitionTime string `yaml:"lastTransitionTime"`
}

// TrafficTarget describes the share of traffic that a revision receives.
type TrafficTarget struct {
	RevisionName   string `yaml:"revisionName"`
	Percent        int    `yaml:"percent"`
	LatestRevision bool   `yaml:"latestRevision"`
}

// ScalingBounds returns the instance counts set through the autoscaling
// annotations. A bound is empty when the service does not set it.
func (s *Service) ScalingBounds() (minInstances, maxInstances string) {
	annotations := s.Spec.Template.Metadata.Annotations
	return annotations[minScaleAnnotation], annotations[maxScaleAnnotation]
}

// Ready returns whether the service's latest revision serves traffic, along with
// the message of the "Ready" condition if there is one.
func (s *Service) Ready() (bool, string) {
	for _, cond := range s.Status.Conditions {
		if cond.Type != "Ready" {
			continue
		}
		return cond.Status == "True", cond.Message
	}
	return false, ""
}

// DescribeService returns the description of a deployed Cloud Run service.
func (c CLI) DescribeService(service, region string) (*Service, error) {
	name, leading, err := c.gcloudCmd()
	if err != nil {
		return nil, err
	}
	args := append(leading, "run", "services", "describe", service, "--region", region, "--format", "yaml")
	buf := &bytes.Buffer{}
	if err := c.runner.Run(name, args, exec.Stdout(buf)); err != nil {
		return nil, fmt.Errorf("describe service %s: %w", service, err)
	}
	var svc Service
	if err := yaml.Unmarshal(buf.Bytes(), &svc); err != nil {
		return nil, fmt.Errorf("unmarshal description of service %s: %w", service, err)
	}
	return &svc, nil
}

func deployArgs(in *DeployArguments) []string {
	args := []string{"run", "deploy", in.Service}
	args = append(args, "--source", in.Source)
	args = append(args, "--region", in.Region)
	if in.AllowUnauthenticated {
		args = append(args, "--allow-unauthenticated")
	}
	if len(in.EnvVars) > 0 {
		args = append(args, "--set-env-vars", flattenKV(in.EnvVars))
	}
	if len(in.Secrets) > 0 {
		args = append(args, "--set-secrets", flattenKV(in.Secrets))
	}
	args = append(args, "--min-instances", strconv.Itoa(in.MinInstances))
	args = append(args, "--max-instances", strconv.Itoa(in.MaxInstances))
	if in.NoCPUThrottling {
		args = append(args, "--no-cpu-throttling")
	}
	return args
}

// flattenKV flattens kv into gcloud's "KEY1=VALUE1,KEY2=VALUE2" flag value format.
// Collect the keys in a slice to sort for a stable command line.
func flattenKV(kv map[string]string) string {
	var keys []string
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, kv[k]))
	}
	return strings.Join(pairs, ",")
}

// gcloudCmd returns the binary name and any leading arguments for invoking gcloud.
func (c CLI) gcloudCmd() (name string, leadingArgs []string, err error) {
	if override, ok := c.lookupEnv(overrideEnvVar); ok && strings.TrimSpace(override) != "" {
		parts, err := shlex.Split(override)
		if err != nil {
			return "", nil, fmt.Errorf("split %s %q into tokens using shell-style rules: %w", overrideEnvVar, override, err)
		}
		return parts[0], parts[1:], nil
	}
	if _, err := c.lookPath(binaryName); err != nil {
		return "", nil, &ErrGcloudCommandNotFound{parent: err}
	}
	return binaryName, nil, nil
}

func userHomeDirectory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return home
}
