package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/issuedigest/pkg/cli/config"
	"github.com/m-mizutani/issuedigest/pkg/domain/model"
)

func cmdRun() *cli.Command {
	var (
		githubCfg   config.GitHub
		pipelineCfg config.Pipeline
		storageCfg  config.Storage
		publish     bool
	)

	var flags []cli.Flag
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, pipelineCfg.Flags()...)
	flags = append(flags, storageCfg.Flags()...)
	flags = append(flags, &cli.BoolFlag{
		Name:        "publish",
		Usage:       "Render and store the digest in addition to printing it",
		Destination: &publish,
		Sources:     cli.EnvVars("ISSUEDIGEST_PUBLISH"),
	})

	return &cli.Command{
		Name:    "run",
		Aliases: []string{"r"},
		Usage:   "Build the digest once and print it as markdown",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := pipelineCfg.LoadFile(c.IsSet); err != nil {
				return err
			}

			pipeline, err := newPipeline(&githubCfg, &pipelineCfg)
			if err != nil {
				return err
			}

			digest, err := pipeline.Run(ctx)
			if err != nil {
				return err
			}

			if _, err := io.WriteString(os.Stdout, digest.Markdown()); err != nil {
				return goerr.Wrap(err, "failed to write digest")
			}
			printSummary(os.Stderr, digest)

			if !publish {
				return nil
			}

			publisher, err := newPublisher(ctx, &storageCfg)
			if err != nil {
				return err
			}
			if _, err := publisher.Publish(ctx, digest); err != nil {
				return err
			}
			return nil
		},
	}
}

func printSummary(w io.Writer, digest *model.Digest) {
	issues := 0
	for _, s := range digest.Sections() {
		issues += len(s.Issues)
	}

	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow)

	_, _ = green.Fprintf(w, "%d issues in %d repositories\n", issues, len(digest.Sections()))
	for _, n := range digest.Notices() {
		_, _ = yellow.Fprintf(w, "  %s\n", n.Message)
	}
	_, _ = fmt.Fprintf(w, "generated at %s\n", digest.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
}
