package ingestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/forkful/recipedex/ai"
	"github.com/forkful/recipedex/index"
	"github.com/forkful/recipedex/storage"
)

// embeddingProcessor generates embeddings for stored recipes.
type embeddingProcessor struct {
	recipeRepository storage.RecipeRepository
	embedder         ai.Embedder
	logger           *slog.Logger
}

var _ processor = (*embeddingProcessor)(nil)

// newEmbeddingProcessor creates a new embedding processor.
func newEmbeddingProcessor(recipeRepository storage.RecipeRepository, embedder ai.Embedder, logger *slog.Logger) (processor, error) {
	if recipeRepository == nil {
		return nil, ErrRecipeRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &embeddingProcessor{
		recipeRepository: recipeRepository,
		embedder:         embedder,
		logger:           logger.With("processor", "embeddings"),
	}, nil
}

// process generates embeddings for the specified recipes.
// Vectors are normalized before storage so the index can use inner products.
func (ep *embeddingProcessor) process(ctx context.Context, ids ...string) error {
	ep.logger.Info("processing recipes for embeddings", "recipes", len(ids))

	recipes, err := ep.recipeRepository.GetRecipes(ctx, ids...)
	if err != nil {
		ep.logger.Error("error retrieving recipes", "err", err)
		return err
	}
	if len(recipes) == 0 {
		return nil
	}

	texts := make([]string, len(recipes))
	for i, recipe := range recipes {
		texts[i] = recipe.SearchableText()
	}

	ep.logger.Debug("generating embeddings for recipes", "recipes", len(texts))
	embeddings, err := ep.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		ep.logger.Error("error generating embeddings", "err", err)
		return err
	}

	if len(embeddings) != len(recipes) {
		return fmt.Errorf("embedding result mismatch. expected %d, received %d", len(recipes), len(embeddings))
	}

	for i := range embeddings {
		recipes[i].Vector = index.NormalizeVector(embeddings[i])
	}

	_, err = ep.recipeRepository.UpdateRecipes(ctx, recipes...)
	return err
}
