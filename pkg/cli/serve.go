package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/issuedigest/pkg/cli/config"
	"github.com/m-mizutani/issuedigest/pkg/controller/cron"
	controller "github.com/m-mizutani/issuedigest/pkg/controller/http"
	"github.com/m-mizutani/issuedigest/pkg/usecase"
)

func cmdServe() *cli.Command {
	var (
		serverCfg   config.Server
		githubCfg   config.GitHub
		pipelineCfg config.Pipeline
		storageCfg  config.Storage
		slackCfg    config.Slack
	)

	var flags []cli.Flag
	flags = append(flags, serverCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, githubCfg.WebhookFlags()...)
	flags = append(flags, pipelineCfg.Flags()...)
	flags = append(flags, storageCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server and periodic digest runs",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := pipelineCfg.LoadFile(c.IsSet); err != nil {
				return err
			}
			loc, err := pipelineCfg.Location()
			if err != nil {
				return err
			}

			pipeline, err := newPipeline(&githubCfg, &pipelineCfg)
			if err != nil {
				return err
			}
			publisher, err := newPublisher(ctx, &storageCfg)
			if err != nil {
				return err
			}
			refresh := usecase.NewRefresh(pipeline, publisher,
				usecase.WithNotifier(slackCfg.NewNotifier()),
			)

			logger.Info("Starting issuedigest server",
				slog.String("addr", serverCfg.Addr),
				slog.String("repos_file", pipelineCfg.ReposFile),
				slog.String("schedule", pipelineCfg.Schedule),
				slog.String("timezone", loc.String()),
				slog.Bool("webhook", githubCfg.WebhookSecret != ""),
			)

			if err := publisher.Restore(ctx); err != nil {
				logger.Warn("Failed to restore published document", slog.Any("error", err))
			}

			// Initial run; the server still starts when it fails and serves
			// the restored document, if any.
			if err := refresh.RunOnce(ctx); err != nil {
				logger.Warn("Initial run failed", slog.Any("error", err))
			}

			scheduler, err := cron.NewScheduler(ctx, refresh, pipelineCfg.Schedule, loc)
			if err != nil {
				return err
			}
			logger.Info("Scheduler starting", slog.Time("next", scheduler.Next(time.Now())))
			scheduler.Start()

			// Create HTTP server with options
			server, err := controller.NewServer(
				ctx,
				publisher,
				refresh,
				controller.WithAddr(serverCfg.Addr),
				controller.WithWebhookSecret(githubCfg.WebhookSecret),
				controller.WithWebhookUseCase(usecase.NewWebhook(refresh, pipelineCfg.Label, pipelineCfg.BountyLabel)),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					serverErr <- err
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			var runErr error
			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-serverErr:
				runErr = goerr.Wrap(err, "HTTP server failed")
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			<-scheduler.Stop().Done()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return runErr
		},
	}
}
