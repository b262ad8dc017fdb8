// Copyright 2025 Forkful Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package reembed

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/forkful/recipedex/ai"
	"github.com/forkful/recipedex/core"
	"github.com/forkful/recipedex/storage"
)

// Config holds configuration for the reembedding operation.
type Config struct {
	// BatchSize is the number of recipes to process in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of recipes)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed operations
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Reembedder orchestrates the reembedding of the whole recipe corpus.
type Reembedder struct {
	repo      storage.RecipeRepository
	embedder  ai.Embedder
	config    *Config
	progress  io.Writer
	processor *BatchProcessor
	iterator  *RecipeIterator
}

// NewReembedder creates a new reembedder.
// progress: where to write progress output (typically os.Stderr)
func NewReembedder(repo storage.RecipeRepository, embedder ai.Embedder, config *Config, progress io.Writer) *Reembedder {
	if config == nil {
		config = DefaultConfig()
	}

	processor := NewBatchProcessor(repo, embedder, config.MaxRetries, config.RetryDelay)
	iterator := NewRecipeIterator(repo, config.BatchSize)

	return &Reembedder{
		repo:      repo,
		embedder:  embedder,
		config:    config,
		progress:  progress,
		processor: processor,
		iterator:  iterator,
	}
}

// Run executes the reembedding operation.
// All recipes in the database are reembedded with the configured embedder.
// Progress is reported to the configured writer.
func (r *Reembedder) Run(ctx context.Context) error {
	totalRecipes, err := r.repo.CountRecipes(ctx)
	if err != nil {
		return fmt.Errorf("failed to count recipes: %w", err)
	}

	if totalRecipes == 0 {
		fmt.Fprintf(r.progress, "No recipes found in database (0 recipes)\n")
		return nil
	}

	fmt.Fprintf(r.progress, "Starting reembedding of %d recipes (batch size: %d)\n",
		totalRecipes, r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, totalRecipes, r.config.ReportInterval)
	tracker.Start()

	processed := 0

	err = r.iterator.ForEach(ctx, func(recipes []*core.Recipe) error {
		if err := r.processor.Process(ctx, recipes); err != nil {
			return fmt.Errorf("failed to process batch: %w", err)
		}

		processed += len(recipes)
		tracker.Update(processed)

		return nil
	})

	if err != nil {
		return err
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reembedding complete. Processed %d recipes in %v (%.1f recipes/sec)\n",
		totalRecipes, elapsed.Round(time.Second), float64(totalRecipes)/elapsed.Seconds())

	return nil
}
