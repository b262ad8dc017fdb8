package storage

import (
	"context"

	"github.com/forkful/recipedex/core"
)

// RecipeRepository provides operations for managing recipes.
// Implementations must be thread-safe and support concurrent access.
type RecipeRepository interface {
	// AddRecipes adds one or more recipes to storage.
	// Recipes are appended to the corpus in call order; re-adding an existing
	// ID overwrites the stored recipe but keeps its original corpus position.
	// Sets InsertedAt timestamp if not already set.
	// Returns the recipes with timestamps populated.
	AddRecipes(ctx context.Context, recipes ...*core.Recipe) ([]*core.Recipe, error)

	// UpdateRecipes updates existing recipes.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any recipe doesn't exist.
	UpdateRecipes(ctx context.Context, recipes ...*core.Recipe) ([]*core.Recipe, error)

	// DeleteRecipes removes recipes by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any recipe doesn't exist.
	DeleteRecipes(ctx context.Context, ids ...string) error

	// GetRecipe retrieves a single recipe by ID.
	// Returns ErrNotFound if the recipe doesn't exist.
	GetRecipe(ctx context.Context, id string) (*core.Recipe, error)

	// GetRecipes retrieves multiple recipes by their IDs.
	// Returns only the recipes that exist (no error for missing recipes).
	GetRecipes(ctx context.Context, ids ...string) ([]*core.Recipe, error)

	// ListRecipes retrieves all recipes in corpus order (insertion order).
	ListRecipes(ctx context.Context) ([]*core.Recipe, error)

	// CountRecipes returns the number of stored recipes.
	CountRecipes(ctx context.Context) (int, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}
