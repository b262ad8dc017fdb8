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

	"github.com/forkful/recipedex/core"
	"github.com/forkful/recipedex/storage"
)

const (
	// DefaultBatchSize is the default number of recipes to fetch in each batch
	DefaultBatchSize = 100
)

// RecipeIterator iterates over the whole recipe corpus in batches.
type RecipeIterator struct {
	repo      storage.RecipeRepository
	batchSize int
}

// NewRecipeIterator creates a new recipe iterator.
// batchSize: number of recipes to process in each batch (must be > 0)
func NewRecipeIterator(repo storage.RecipeRepository, batchSize int) *RecipeIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &RecipeIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach iterates over all recipes in corpus order, calling fn for each batch.
// Iteration stops on first error from fn or when all recipes are processed.
// Context cancellation is checked between batches.
func (it *RecipeIterator) ForEach(ctx context.Context, fn func([]*core.Recipe) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	recipes, err := it.repo.ListRecipes(ctx)
	if err != nil {
		return err
	}

	if len(recipes) == 0 {
		return nil
	}

	for i := 0; i < len(recipes); i += it.batchSize {
		end := i + it.batchSize
		if end > len(recipes) {
			end = len(recipes)
		}

		if err := fn(recipes[i:end]); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	return nil
}
