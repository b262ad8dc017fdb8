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


package recipedex

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/forkful/recipedex/ai"
	"github.com/forkful/recipedex/ai/openai"
	"github.com/forkful/recipedex/core"
	"github.com/forkful/recipedex/index"
	"github.com/forkful/recipedex/ingestion"
	"github.com/forkful/recipedex/search"
	"github.com/forkful/recipedex/storage"
	"github.com/forkful/recipedex/storage/badger"
)

// Database is the top-level handle over recipe storage, embedding, and search.
//
// The search index is an immutable snapshot held behind an atomic pointer.
// Reload builds a fresh snapshot from storage and swaps it in; in-flight
// searches keep reading the snapshot they started with.
type Database struct {
	backend    *badger.Backend
	recipeRepo storage.RecipeRepository
	embedder   ai.Embedder
	snapshot   atomic.Pointer[index.Snapshot]
	logger     *slog.Logger
}

var _ index.Source = (*Database)(nil)

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	embedder ai.Embedder
	inMemory bool
}

// WithAIConfig sets the embedding service configuration.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = config
	}
}

// WithEmbedder injects a pre-built embedder, bypassing the OpenAI client.
// Intended for tests.
func WithEmbedder(embedder ai.Embedder) DatabaseOption {
	return func(o *databaseOptions) {
		o.embedder = embedder
	}
}

// WithInMemory opens the storage backend in memory instead of on disk.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// NewDatabase opens a recipe database at filePath.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	recipeRepo, err := badger.NewRecipeRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	embedder := options.embedder
	if embedder == nil {
		embedder, err = openai.NewEmbedder(options.aiConfig)
		if err != nil {
			recipeRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Database{
		backend:    backend,
		recipeRepo: recipeRepo,
		embedder:   embedder,
		logger:     slog.Default(),
	}, nil
}

// Close releases the repositories and the storage backend.
func (db *Database) Close() error {
	if err := db.recipeRepo.Close(); err != nil {
		db.logger.Error("error closing recipe repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// RecipeRepository returns the underlying recipe repository.
func (db *Database) RecipeRepository() storage.RecipeRepository {
	return db.recipeRepo
}

// Embedder returns the configured embedder.
func (db *Database) Embedder() ai.Embedder {
	return db.embedder
}

// Snapshot returns the current search snapshot, or nil if Reload has not
// produced one yet. Implements index.Source.
func (db *Database) Snapshot() *index.Snapshot {
	return db.snapshot.Load()
}

// Reload builds a fresh search snapshot from storage and atomically swaps it
// in. Recipes without a vector are left out of the index; if no recipe is
// embedded yet the previous snapshot (possibly nil) stays in place.
func (db *Database) Reload(ctx context.Context) error {
	recipes, err := db.recipeRepo.ListRecipes(ctx)
	if err != nil {
		return err
	}

	snapshot, err := index.BuildSnapshot(recipes)
	if err != nil {
		if errors.Is(err, core.ErrInvalidArgument) {
			db.logger.Warn("no embedded recipes, search snapshot not replaced", "recipes", len(recipes))
			return nil
		}
		return err
	}

	db.snapshot.Store(snapshot)
	db.logger.Info("search snapshot reloaded", "indexed", snapshot.Len(), "total", len(recipes))
	return nil
}

// NewSearcher creates a searcher reading this database's snapshots.
func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(db, db.embedder, opts...)
}

// NewIngestionPipeline creates an ingestion pipeline over this database.
func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.recipeRepo, db.embedder, opts...)
}
