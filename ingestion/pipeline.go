package ingestion

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/forkful/recipedex/ai"
	"github.com/forkful/recipedex/core"
	"github.com/forkful/recipedex/storage"
	"github.com/panjf2000/ants/v2"
)

// Pipeline orchestrates the ingestion and enrichment of recipes.
// Recipes are written to storage synchronously; embedding generation runs
// on a worker pool afterwards.
type Pipeline struct {
	recipeRepository storage.RecipeRepository
	embeddingPool    *ants.Pool
	embeddingProc    processor
	logger           *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.embeddingPool != nil {
			p.embeddingPool.Release()
		}

		embeddingPool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.embeddingPool = embeddingPool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(recipeRepository storage.RecipeRepository, embedder ai.Embedder, opts ...Option) (*Pipeline, error) {
	if recipeRepository == nil {
		return nil, ErrRecipeRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	embeddingPool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		recipeRepository: recipeRepository,
		embeddingPool:    embeddingPool,
		logger:           slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	// Create the processor after options are applied so it gets the final logger.
	embeddingProc, err := newEmbeddingProcessor(recipeRepository, embedder, p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}
	p.embeddingProc = embeddingProc

	return p, nil
}

// Ingest validates and stores recipes, then generates embeddings asynchronously.
// Recipes missing an ID get a content-derived one. Errors during async
// processing are logged but do not fail the ingestion.
func (p *Pipeline) Ingest(ctx context.Context, recipes ...*core.Recipe) ([]*core.Recipe, error) {
	for _, recipe := range recipes {
		if recipe != nil && recipe.Id == "" {
			recipe.Id = core.IDFromContent(recipe.SearchableText())
		}
		if err := core.ValidateRecipe(recipe); err != nil {
			return nil, err
		}
	}

	added, err := p.recipeRepository.AddRecipes(ctx, recipes...)
	if err != nil {
		return nil, err
	}

	if len(added) == 0 {
		return added, nil
	}

	ids := make([]string, len(added))
	for i, recipe := range added {
		ids[i] = recipe.Id
	}

	p.embeddingPool.Submit(func() {
		if err := p.embeddingProc.process(context.Background(), ids...); err != nil {
			p.logger.Error("error processing embeddings", "err", err)
		}
	})

	return added, nil
}

// Release releases resources including the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.embeddingPool != nil {
		p.embeddingPool.Release()
	}
}
