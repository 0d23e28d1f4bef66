// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hackathon-support/hackbot/internal/pkg/exec"
	"github.com/hackathon-support/hackbot/internal/pkg/gcloud"
	"github.com/hackathon-support/hackbot/internal/pkg/term/color"
	"github.com/hackathon-support/hackbot/internal/pkg/term/log"
	"github.com/hackathon-support/hackbot/internal/pkg/workspace"

	"github.com/hackathon-support/hackbot/internal/pkg/cli/group"
)

type deployVars struct {
	name                 string
	source               string
	region               string
	allowUnauthenticated bool
	envVars              map[string]string
	secrets              map[string]string
	minInstances         int
	maxInstances         int
	noCPUThrottling      bool
	dryRun               bool
}

type deployOpts struct {
	deployVars

	deployer runDeployer
	ws       deployWorkspace
	w        io.Writer
}

func newDeployOpts(vars deployVars) (*deployOpts, error) {
	ws, err := workspace.New()
	if err != nil {
		return nil, err
	}
	return &deployOpts{
		deployVars: vars,
		deployer:   gcloud.New(exec.NewCmd()),
		ws:         ws,
		w:          log.OutputWriter,
	}, nil
}

// Validate returns an error if a flag override is malformed.
// Anything past flag-level well-formedness is left to gcloud.
func (o *deployOpts) Validate() error {
	if o.name == "" {
		return &errEmptyFlag{name: nameFlag}
	}
	if o.region == "" {
		return &errEmptyFlag{name: regionFlag}
	}
	if o.source == "" {
		return &errEmptyFlag{name: sourceFlag}
	}
	exists, err := o.ws.IsExistingDir(o.source)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("source %s is not an existing directory", o.source)
	}
	if o.minInstances < 0 {
		return fmt.Errorf("--%s cannot be negative", minInstancesFlag)
	}
	if o.maxInstances < 0 {
		return fmt.Errorf("--%s cannot be negative", maxInstancesFlag)
	}
	for env, ref := range o.secrets {
		if err := validateSecretRef(env, ref); err != nil {
			return err
		}
	}
	return nil
}

// Ask is a no-op for this command. Every flag has a default so that
// `hackbot deploy` works without arguments.
func (o *deployOpts) Ask() error {
	return nil
}

// Execute shells out to `gcloud run deploy`. gcloud inherits the terminal so
// build logs and prompts reach the user directly, and its exit code is
// carried back unchanged through an ExitCode() error.
func (o *deployOpts) Execute() error {
	in := &gcloud.DeployArguments{
		Service:              o.name,
		Source:               o.source,
		Region:               o.region,
		AllowUnauthenticated: o.allowUnauthenticated,
		EnvVars:              o.envVars,
		Secrets:              o.secrets,
		MinInstances:         o.minInstances,
		MaxInstances:         o.maxInstances,
		NoCPUThrottling:      o.noCPUThrottling,
	}
	if o.dryRun {
		name, args, err := o.deployer.DeployCommand(in)
		if err != nil {
			return err
		}
		fmt.Fprintln(o.w, strings.Join(append([]string{name}, args...), " "))
		return nil
	}

	o.logDeployment()
	if err := o.deployer.Deploy(in); err != nil {
		return err
	}
	log.Successf("Deployed service %s to region %s.\n",
		color.HighlightUserInput(o.name), color.HighlightUserInput(o.region))
	return nil
}

// logDeployment prints what is about to be deployed. Display only; nothing
// here changes the argument vector handed to gcloud.
func (o *deployOpts) logDeployment() {
	log.Infof("Deploying service %s to region %s from %s.\n",
		color.HighlightUserInput(o.name),
		color.HighlightUserInput(o.region),
		color.HighlightResource(o.ws.Path(o.source)))
	if project := o.deployer.ActiveProject(); project != "" {
		log.Infof("Using project %s from the active gcloud configuration.\n", color.HighlightResource(project))
	}
	if commit, err := o.ws.Commit(); err == nil {
		log.Infof("Source is at commit %s.\n", color.HighlightResource(commit.String()))
	} else if !workspace.IsNoCommitErr(err) {
		log.Debugf("Skipping commit information: %v\n", err)
	}
	if len(o.secrets) > 0 {
		envs := make([]string, 0, len(o.secrets))
		for env := range o.secrets {
			envs = append(envs, env)
		}
		sort.Strings(envs)
		log.Infof("Binding %s %s from Secret Manager.\n",
			english.PluralWord(len(envs), "secret", "secrets"), english.WordSeries(envs, "and"))
	}
}

// RecommendActions suggests a follow-up once the deployment went through.
func (o *deployOpts) RecommendActions() error {
	if o.dryRun {
		return nil
	}
	logRecommendedActions([]string{
		fmt.Sprintf("Run %s to check that the new revision is ready.",
			color.HighlightCode(fmt.Sprintf("hackbot status --name %s --region %s", o.name, o.region))),
		"Send the bot a direct message on Discord to try it out.",
	})
	return nil
}

// BuildDeployCmd builds the command to deploy the bot to Cloud Run.
func BuildDeployCmd() *cobra.Command {
	vars := deployVars{}
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Build and deploy the bot to Cloud Run.",
		Long: `Build the bot from source and deploy it to Cloud Run by shelling out to the gcloud CLI.
The defaults reproduce the hackathon support bot's production deployment.`,
		Example: `
  Deploy the bot with the production defaults.
  /code $ hackbot deploy
  Print the gcloud command line without running it.
  /code $ hackbot deploy --dry-run
  Deploy a staging copy that scales to zero when idle.
  /code $ hackbot deploy --name discord-hackathon-bot-staging --min-instances 0`,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			opts, err := newDeployOpts(vars)
			if err != nil {
				return err
			}
			return run(opts)
		}),
	}
	cmd.Flags().StringVarP(&vars.name, nameFlag, nameFlagShort, defaultServiceName, nameFlagDescription)
	cmd.Flags().StringVar(&vars.source, sourceFlag, defaultSource, sourceFlagDescription)
	cmd.Flags().StringVarP(&vars.region, regionFlag, regionFlagShort, defaultRegion, regionFlagDescription)
	cmd.Flags().BoolVar(&vars.allowUnauthenticated, allowUnauthenticatedFlag, true, allowUnauthenticatedFlagDescription)
	cmd.Flags().StringToStringVar(&vars.envVars, envVarsFlag, map[string]string{
		"ADK_APP_NAME": defaultADKAppName,
	}, envVarsFlagDescription)
	cmd.Flags().StringToStringVar(&vars.secrets, secretsFlag, map[string]string{
		"DISCORD_API_KEY": "DISCORD_API_KEY:latest",
		"ADK_BASE_URL":    "ADK_BASE_URL:latest",
	}, secretsFlagDescription)
	cmd.Flags().IntVar(&vars.minInstances, minInstancesFlag, 1, minInstancesFlagDescription)
	cmd.Flags().IntVar(&vars.maxInstances, maxInstancesFlag, 1, maxInstancesFlagDescription)
	cmd.Flags().BoolVar(&vars.noCPUThrottling, noCPUThrottlingFlag, true, noCPUThrottlingFlagDescription)
	cmd.Flags().BoolVar(&vars.dryRun, dryRunFlag, false, dryRunFlagDescription)

	serviceFlags := pflag.NewFlagSet("Service", pflag.ContinueOnError)
	for _, name := range []string{nameFlag, sourceFlag, regionFlag, allowUnauthenticatedFlag, envVarsFlag, secretsFlag} {
		serviceFlags.AddFlag(cmd.Flags().Lookup(name))
	}
	scalingFlags := pflag.NewFlagSet("Scaling", pflag.ContinueOnError)
	for _, name := range []string{minInstancesFlag, maxInstancesFlag, noCPUThrottlingFlag} {
		scalingFlags.AddFlag(cmd.Flags().Lookup(name))
	}
	utilityFlags := pflag.NewFlagSet("Utility", pflag.ContinueOnError)
	utilityFlags.AddFlag(cmd.Flags().Lookup(dryRunFlag))

	// prettify help menu.
	cmd.Annotations = map[string]string{
		"group":   group.Release,
		"service": serviceFlags.FlagUsages(),
		"scaling": scalingFlags.FlagUsages(),
		"utility": utilityFlags.FlagUsages(),
	}
	cmd.SetUsageTemplate(`{{h1 "Usage"}}
{{- if .Runnable}}
{{.UseLine}}
{{- end }}

{{h1 "Service Flags"}}
{{(index .Annotations "service") | trimTrailingWhitespaces}}

{{h1 "Scaling Flags"}}
{{(index .Annotations "scaling") | trimTrailingWhitespaces}}

{{h1 "Utility Flags"}}
{{(index .Annotations "utility") | trimTrailingWhitespaces}}

{{if .HasExample }}
{{- h1 "Examples"}}
{{- code .Example}}
{{- end}}
`)
	return cmd
}
