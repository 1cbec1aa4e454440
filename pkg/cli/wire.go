package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/issuedigest/pkg/cli/config"
	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces"
	"github.com/m-mizutani/issuedigest/pkg/infra/markdown"
	"github.com/m-mizutani/issuedigest/pkg/infra/repolist"
	"github.com/m-mizutani/issuedigest/pkg/usecase"
)

func newPipeline(githubCfg *config.GitHub, pipelineCfg *config.Pipeline) (interfaces.PipelineUseCase, error) {
	githubClient, err := githubCfg.NewClient()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub client")
	}

	opts, err := pipelineCfg.Options()
	if err != nil {
		return nil, goerr.Wrap(err, "invalid pipeline configuration")
	}

	source := repolist.NewFile(pipelineCfg.ReposFile)
	return usecase.NewPipeline(source, githubClient, opts...), nil
}

func newPublisher(ctx context.Context, storageCfg *config.Storage) (*usecase.Publisher, error) {
	store, err := storageCfg.NewStore(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create document store")
	}
	return usecase.NewPublisher(markdown.NewRenderer(), store), nil
}
