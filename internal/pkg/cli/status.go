// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hackathon-support/hackbot/internal/pkg/cli/group"
	"github.com/hackathon-support/hackbot/internal/pkg/describe"
	"github.com/hackathon-support/hackbot/internal/pkg/exec"
	"github.com/hackathon-support/hackbot/internal/pkg/gcloud"
	"github.com/hackathon-support/hackbot/internal/pkg/term/color"
	"github.com/hackathon-support/hackbot/internal/pkg/term/log"
	termprogress "github.com/hackathon-support/hackbot/internal/pkg/term/progress"
)

const (
	fmtStatusStart   = "Retrieving the status of service %s."
	fmtStatusFailed  = "Failed to retrieve the status of service %s.\n"
	fmtStatusSucceed = "Retrieved the status of service %s.\n"
)

type statusVars struct {
	name             string
	region           string
	shouldOutputJSON bool
}

type statusOpts struct {
	statusVars

	describer serviceDescriber
	spinner   progress
	w         io.Writer
}

func newStatusOpts(vars statusVars) *statusOpts {
	return &statusOpts{
		statusVars: vars,
		describer:  gcloud.New(exec.NewCmd()),
		spinner:    termprogress.NewSpinner(log.DiagnosticWriter),
		w:          log.OutputWriter,
	}
}

// Validate returns an error if the values provided by the user are invalid.
func (o *statusOpts) Validate() error {
	if o.name == "" {
		return &errEmptyFlag{name: nameFlag}
	}
	if o.region == "" {
		return &errEmptyFlag{name: regionFlag}
	}
	return nil
}

// Ask is a no-op for this command.
func (o *statusOpts) Ask() error {
	return nil
}

// Execute displays the status of the service.
func (o *statusOpts) Execute() error {
	o.spinner.Start(fmt.Sprintf(fmtStatusStart, color.HighlightUserInput(o.name)))
	svc, err := o.describer.DescribeService(o.name, o.region)
	if err != nil {
		o.spinner.Stop(log.Serrorf(fmtStatusFailed, color.HighlightUserInput(o.name)))
		return err
	}
	o.spinner.Stop(log.Ssuccessf(fmtStatusSucceed, color.HighlightUserInput(o.name)))

	desc := describe.NewService(svc)
	if o.shouldOutputJSON {
		data, err := desc.JSONString()
		if err != nil {
			return err
		}
		fmt.Fprint(o.w, data)
		return nil
	}
	fmt.Fprint(o.w, desc.HumanString())
	return nil
}

// BuildStatusCmd builds the command for showing the status of the deployed bot.
func BuildStatusCmd() *cobra.Command {
	vars := statusVars{}
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Shows the status of the deployed bot.",
		Long:  "Shows the URL, readiness conditions and traffic of the bot's Cloud Run service.",

		Example: `
  Show the status of the production bot.
  /code $ hackbot status
  Show the full description in JSON format.
  /code $ hackbot status --json`,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			return run(newStatusOpts(vars))
		}),
	}
	cmd.Flags().StringVarP(&vars.name, nameFlag, nameFlagShort, defaultServiceName, nameFlagDescription)
	cmd.Flags().StringVarP(&vars.region, regionFlag, regionFlagShort, defaultRegion, regionFlagDescription)
	cmd.Flags().BoolVar(&vars.shouldOutputJSON, jsonFlag, false, jsonFlagDescription)
	cmd.Annotations = map[string]string{
		"group": group.Develop,
	}
	return cmd
}
