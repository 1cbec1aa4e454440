package config

import (
	"os"
	"time"
	_ "time/tzdata"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/issuedigest/pkg/domain/model"
	"github.com/m-mizutani/issuedigest/pkg/domain/types"
	"github.com/m-mizutani/issuedigest/pkg/usecase"
)

// Pipeline holds aggregation pipeline and schedule configuration
type Pipeline struct {
	ConfigFile  string
	ReposFile   string
	Title       string
	Label       string
	Window      time.Duration
	BountyRepo  string
	BountyLabel string
	BountyMode  string
	Concurrency int
	Schedule    string
	Timezone    string
}

// Flags returns CLI flags for pipeline configuration
func (c *Pipeline) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "TOML file whose [pipeline] table fills pipeline flags not set explicitly",
			Destination: &c.ConfigFile,
			Sources:     cli.EnvVars("ISSUEDIGEST_CONFIG"),
		},
		&cli.StringFlag{
			Name:        "repos-file",
			Usage:       "File listing org/repo or org/* specifiers, one per line",
			Value:       "repos.txt",
			Destination: &c.ReposFile,
			Sources:     cli.EnvVars("ISSUEDIGEST_REPOS_FILE"),
		},
		&cli.StringFlag{
			Name:        "title",
			Usage:       "Digest title",
			Value:       types.DefaultTitle,
			Destination: &c.Title,
			Sources:     cli.EnvVars("ISSUEDIGEST_TITLE"),
		},
		&cli.StringFlag{
			Name:        "label",
			Usage:       "Issue label to collect",
			Value:       types.DefaultLabel,
			Destination: &c.Label,
			Sources:     cli.EnvVars("ISSUEDIGEST_LABEL"),
		},
		&cli.DurationFlag{
			Name:        "window",
			Usage:       "Recency window of collected issues",
			Value:       types.DefaultWindow,
			Destination: &c.Window,
			Sources:     cli.EnvVars("ISSUEDIGEST_WINDOW"),
		},
		&cli.StringFlag{
			Name:        "bounty-repo",
			Usage:       "Specifier that also gets the bounty query; empty disables it",
			Value:       types.DefaultBountyRepo,
			Destination: &c.BountyRepo,
			Sources:     cli.EnvVars("ISSUEDIGEST_BOUNTY_REPO"),
		},
		&cli.StringFlag{
			Name:        "bounty-label",
			Usage:       "Label of the bounty query",
			Value:       types.DefaultBountyLabel,
			Destination: &c.BountyLabel,
			Sources:     cli.EnvVars("ISSUEDIGEST_BOUNTY_LABEL"),
		},
		&cli.StringFlag{
			Name:        "bounty-mode",
			Usage:       "additional (bounty and standard query) or instead (bounty query only)",
			Value:       string(model.BountyModeAdditional),
			Destination: &c.BountyMode,
			Sources:     cli.EnvVars("ISSUEDIGEST_BOUNTY_MODE"),
		},
		&cli.IntFlag{
			Name:        "concurrency",
			Usage:       "Number of concurrent issue fetches",
			Value:       1,
			Destination: &c.Concurrency,
			Sources:     cli.EnvVars("ISSUEDIGEST_CONCURRENCY"),
		},
		&cli.StringFlag{
			Name:        "schedule",
			Usage:       "Cron expression of periodic runs",
			Value:       types.DefaultSchedule,
			Destination: &c.Schedule,
			Sources:     cli.EnvVars("ISSUEDIGEST_SCHEDULE"),
		},
		&cli.StringFlag{
			Name:        "timezone",
			Usage:       "Time zone of the schedule and the generation timestamp",
			Value:       types.DefaultTimezone,
			Destination: &c.Timezone,
			Sources:     cli.EnvVars("ISSUEDIGEST_TIMEZONE"),
		},
	}
}

type pipelineFile struct {
	Pipeline struct {
		ReposFile   *string `toml:"repos_file"`
		Title       *string `toml:"title"`
		Label       *string `toml:"label"`
		Window      *string `toml:"window"`
		BountyRepo  *string `toml:"bounty_repo"`
		BountyLabel *string `toml:"bounty_label"`
		BountyMode  *string `toml:"bounty_mode"`
		Concurrency *int    `toml:"concurrency"`
		Schedule    *string `toml:"schedule"`
		Timezone    *string `toml:"timezone"`
	} `toml:"pipeline"`
}

// LoadFile reads ConfigFile, if any, and applies its values to the settings
// whose flag isSet reports as not set. Flags and environment variables
// take precedence over the file.
func (c *Pipeline) LoadFile(isSet func(name string) bool) error {
	if c.ConfigFile == "" {
		return nil
	}

	raw, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		return goerr.Wrap(err, "failed to read config file", goerr.V("path", c.ConfigFile))
	}

	var file pipelineFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return goerr.Wrap(err, "failed to parse config file", goerr.V("path", c.ConfigFile))
	}
	p := file.Pipeline

	setString := func(name string, dst *string, src *string) {
		if src != nil && !isSet(name) {
			*dst = *src
		}
	}
	setString("repos-file", &c.ReposFile, p.ReposFile)
	setString("title", &c.Title, p.Title)
	setString("label", &c.Label, p.Label)
	setString("bounty-repo", &c.BountyRepo, p.BountyRepo)
	setString("bounty-label", &c.BountyLabel, p.BountyLabel)
	setString("bounty-mode", &c.BountyMode, p.BountyMode)
	setString("schedule", &c.Schedule, p.Schedule)
	setString("timezone", &c.Timezone, p.Timezone)

	if p.Window != nil && !isSet("window") {
		window, err := time.ParseDuration(*p.Window)
		if err != nil {
			return goerr.Wrap(err, "invalid window in config file", goerr.V("window", *p.Window))
		}
		c.Window = window
	}
	if p.Concurrency != nil && !isSet("concurrency") {
		c.Concurrency = *p.Concurrency
	}

	return nil
}

// Location loads the configured time zone
func (c *Pipeline) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid time zone", goerr.V("timezone", c.Timezone))
	}
	return loc, nil
}

// Options validates the configuration and converts it into pipeline options
func (c *Pipeline) Options() ([]usecase.PipelineOption, error) {
	mode := model.BountyMode(c.BountyMode)
	if !mode.Valid() {
		return nil, goerr.New("invalid bounty mode", goerr.V("bounty_mode", c.BountyMode))
	}
	if c.Window <= 0 {
		return nil, goerr.New("window must be positive", goerr.V("window", c.Window))
	}
	if c.Concurrency < 1 {
		return nil, goerr.New("concurrency must be at least 1", goerr.V("concurrency", c.Concurrency))
	}

	loc, err := c.Location()
	if err != nil {
		return nil, err
	}

	return []usecase.PipelineOption{
		usecase.WithTitle(c.Title),
		usecase.WithLabel(c.Label),
		usecase.WithWindow(c.Window),
		usecase.WithBounty(c.BountyRepo, c.BountyLabel, mode),
		usecase.WithConcurrency(c.Concurrency),
		usecase.WithLocation(loc),
	}, nil
}
