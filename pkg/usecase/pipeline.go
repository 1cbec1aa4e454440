package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces"
	"github.com/m-mizutani/issuedigest/pkg/domain/model"
	"github.com/m-mizutani/issuedigest/pkg/domain/types"
	"golang.org/x/sync/errgroup"
)

type pipelineConfig struct {
	title        string
	label        string
	window       time.Duration
	bountySource string
	bountyLabel  string
	bountyMode   model.BountyMode
	concurrency  int
	location     *time.Location
	now          func() time.Time
}

// PipelineOption is a functional option for the aggregation pipeline
type PipelineOption func(*pipelineConfig)

// WithTitle sets the digest title
func WithTitle(title string) PipelineOption {
	return func(c *pipelineConfig) {
		c.title = title
	}
}

// WithLabel sets the label of the standard query
func WithLabel(label string) PipelineOption {
	return func(c *pipelineConfig) {
		c.label = label
	}
}

// WithWindow sets the recency window; issues are requested since now - window
func WithWindow(window time.Duration) PipelineOption {
	return func(c *pipelineConfig) {
		c.window = window
	}
}

// WithBounty configures the bounty source. source is matched against raw
// specifiers by exact equality. An empty source disables the bounty fetch.
func WithBounty(source, label string, mode model.BountyMode) PipelineOption {
	return func(c *pipelineConfig) {
		c.bountySource = source
		c.bountyLabel = label
		c.bountyMode = mode
	}
}

// WithConcurrency sets how many issue fetches may run at once. 1 keeps the
// run strictly sequential.
func WithConcurrency(n int) PipelineOption {
	return func(c *pipelineConfig) {
		c.concurrency = n
	}
}

// WithLocation sets the time zone of the digest generation timestamp
func WithLocation(loc *time.Location) PipelineOption {
	return func(c *pipelineConfig) {
		c.location = loc
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) PipelineOption {
	return func(c *pipelineConfig) {
		c.now = now
	}
}

type pipeline struct {
	source    interfaces.SpecifierSource
	resolver  *Resolver
	collector *Collector
	cfg       pipelineConfig
}

// NewPipeline creates the aggregation pipeline
func NewPipeline(source interfaces.SpecifierSource, githubClient interfaces.GitHubClient, opts ...PipelineOption) interfaces.PipelineUseCase {
	cfg := pipelineConfig{
		title:        types.DefaultTitle,
		label:        types.DefaultLabel,
		window:       types.DefaultWindow,
		bountySource: types.DefaultBountyRepo,
		bountyLabel:  types.DefaultBountyLabel,
		bountyMode:   model.BountyModeAdditional,
		concurrency:  1,
		location:     time.UTC,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &pipeline{
		source:    source,
		resolver:  NewResolver(githubClient),
		collector: NewCollector(githubClient),
		cfg:       cfg,
	}
}

// fetchJob is one digest entry scheduled in a run. Exactly one of
// invalid, orgFailure or (ref, query) is meaningful.
type fetchJob struct {
	invalid    string
	orgFailure string
	ref        model.RepoRef
	query      model.IssueQuery
	result     *model.CollectionResult
}

func (j *fetchJob) isFetch() bool {
	return j.invalid == "" && j.orgFailure == ""
}

// Run builds one digest. Only a failure to read the source list fails the
// run; every per-source failure ends up as a notice in the digest.
func (p *pipeline) Run(ctx context.Context) (*model.Digest, error) {
	logger := ctxlog.From(ctx)

	raws, err := p.source.Read(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read source list", goerr.T(types.ErrTagSourceListUnavailable))
	}

	now := p.cfg.now()
	since := now.Add(-p.cfg.window)
	specs := model.UniqueSpecifiers(raws)

	logger.Info("Aggregating issues",
		"specifiers", len(specs),
		"duplicates", len(raws)-len(specs),
		"label", p.cfg.label,
		"since", since,
	)

	jobs := p.schedule(ctx, specs, since)
	p.collect(ctx, jobs)

	if err := ctx.Err(); err != nil {
		return nil, goerr.Wrap(err, "pipeline run interrupted")
	}

	digest := model.NewDigest(p.cfg.title, now.In(p.cfg.location))
	for _, job := range jobs {
		switch {
		case job.invalid != "":
			digest.AppendNotice("Invalid source specifier: " + job.invalid)
		case job.orgFailure != "":
			digest.AppendOrgFailure(job.orgFailure)
		default:
			digest.Append(job.ref, job.result)
		}
	}

	logger.Info("Digest built",
		"fetches", countFetches(jobs),
		"sections", len(digest.Sections()),
		"notices", len(digest.Notices()),
	)

	return digest, nil
}

// schedule resolves specifiers in order and returns the entries of the
// digest in the order they must appear. A repository is scheduled for the
// standard query at most once per run.
func (p *pipeline) schedule(ctx context.Context, specs []string, since time.Time) []*fetchJob {
	logger := ctxlog.From(ctx)

	var jobs []*fetchJob
	seen := make(map[model.RepoRef]struct{})

	for _, raw := range specs {
		spec, err := model.ParseSpecifier(raw)
		if err != nil {
			logger.Warn("Skipping invalid source specifier", "specifier", raw, "error", err)
			jobs = append(jobs, &fetchJob{invalid: raw})
			continue
		}

		if p.cfg.bountySource != "" && raw == p.cfg.bountySource && !spec.IsWildcard() {
			ref := model.RepoRef{Org: spec.Org, Name: spec.Repo}
			jobs = append(jobs, &fetchJob{ref: ref, query: BountyQuery(p.cfg.bountyLabel, since)})
			if p.cfg.bountyMode == model.BountyModeInstead {
				seen[ref] = struct{}{}
				continue
			}
		}

		refs, err := p.resolver.Resolve(ctx, spec)
		if err != nil {
			logger.Warn("Organization listing failed", "org", spec.Org, "error", err)
			jobs = append(jobs, &fetchJob{orgFailure: spec.Org})
			continue
		}

		for _, ref := range refs {
			if _, ok := seen[ref]; ok {
				logger.Debug("Skipping repository already scheduled", "repo", ref.FullName(), "specifier", raw)
				continue
			}
			seen[ref] = struct{}{}
			jobs = append(jobs, &fetchJob{ref: ref, query: StandardQuery(p.cfg.label, since)})
		}
	}

	return jobs
}

// collect fills result of every fetch job. Results are stored per job, so the
// digest order is the schedule order regardless of completion order.
func (p *pipeline) collect(ctx context.Context, jobs []*fetchJob) {
	if p.cfg.concurrency <= 1 {
		for _, job := range jobs {
			if job.isFetch() {
				job.result = p.collector.Collect(ctx, job.ref, job.query)
			}
		}
		return
	}

	var eg errgroup.Group
	eg.SetLimit(p.cfg.concurrency)
	for _, job := range jobs {
		if !job.isFetch() {
			continue
		}
		eg.Go(func() error {
			job.result = p.collector.Collect(ctx, job.ref, job.query)
			return nil
		})
	}
	_ = eg.Wait()
}

func countFetches(jobs []*fetchJob) int {
	n := 0
	for _, job := range jobs {
		if job.isFetch() {
			n++
		}
	}
	return n
}
