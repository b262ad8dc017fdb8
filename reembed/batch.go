package reembed

import (
	"context"
	"fmt"
	"time"

	"github.com/forkful/recipedex/ai"
	"github.com/forkful/recipedex/core"
	"github.com/forkful/recipedex/index"
	"github.com/forkful/recipedex/storage"
)

// BatchProcessor handles embedding generation for batches of recipes.
type BatchProcessor struct {
	repo           storage.RecipeRepository
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts for embedding API calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.RecipeRepository, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process generates embeddings for a batch of recipes and updates them in the
// database. Vectors are normalized after embedding so inner products behave
// as cosine similarity.
func (bp *BatchProcessor) Process(ctx context.Context, recipes []*core.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	texts := make([]string, len(recipes))
	for i, recipe := range recipes {
		texts[i] = recipe.SearchableText()
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)

	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}

	if len(embeddings) != len(recipes) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(recipes), len(embeddings))
	}

	for i := range recipes {
		recipes[i].Vector = index.NormalizeVector(embeddings[i])
	}

	_, err = bp.repo.UpdateRecipes(ctx, recipes...)
	if err != nil {
		return fmt.Errorf("failed to update recipes: %w", err)
	}

	return nil
}
