// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hackathon-support/hackbot/internal/pkg/adk"
	"github.com/hackathon-support/hackbot/internal/pkg/bot"
	"github.com/hackathon-support/hackbot/internal/pkg/cli/group"
	"github.com/hackathon-support/hackbot/internal/pkg/config"
	"github.com/hackathon-support/hackbot/internal/pkg/health"
	"github.com/hackathon-support/hackbot/internal/pkg/observability"
	"github.com/hackathon-support/hackbot/internal/pkg/sessions"
)

type serveOpts struct {
	// loadConfig is overridden in tests.
	loadConfig func() (config.Config, error)
}

func newServeOpts() *serveOpts {
	return &serveOpts{
		loadConfig: config.Load,
	}
}

// Validate is a no-op for this command. The configuration is validated by
// Execute once it is loaded from the environment.
func (o *serveOpts) Validate() error {
	return nil
}

// Ask is a no-op for this command.
func (o *serveOpts) Ask() error {
	return nil
}

// Execute runs the bot until it is interrupted or one of its parts fails.
// The Discord gateway connection and the health endpoint run side by side;
// if either returns, both are shut down.
func (o *serveOpts) Execute() error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	logger := observability.NewLogger("hackbot")
	observability.RegisterMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clientOpts := []adk.Option{adk.WithLogger(logger)}
	ts, err := adk.NewTokenSource(ctx, cfg.ADK.BaseURL)
	if err != nil {
		// Outside of Google Cloud there are no service account credentials.
		// The local ADK server does not check tokens, so keep going.
		logger.Warn().Err(err).Msg("no identity token source, calling the agent unauthenticated")
	} else {
		clientOpts = append(clientOpts, adk.WithTokenSource(ts))
	}
	agent := adk.New(cfg.ADK.BaseURL, cfg.ADK.AppName, clientOpts...)

	b, err := bot.New(cfg.DiscordToken, agent, sessions.NewStore(), logger)
	if err != nil {
		return err
	}
	srv := health.NewServer(b, logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return b.Run(ctx)
	})
	g.Go(func() error {
		return srv.Run(ctx, cfg.Port)
	})
	return g.Wait()
}

// BuildServeCmd builds the command to run the bot in the foreground.
func BuildServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the bot in the foreground.",
		Long: `Run the bot in the foreground until interrupted.
The bot answers Discord direct messages by relaying them to the agent service,
and exposes a health endpoint with Prometheus metrics for Cloud Run.

Configuration is read from the environment; see "hackbot init" for the
variables and a starter .env file.`,
		Example: `
  Run the bot with the settings from .env.
  /code $ hackbot serve`,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			return run(newServeOpts())
		}),
	}
	cmd.Annotations = map[string]string{
		"group": group.Develop,
	}
	return cmd
}
