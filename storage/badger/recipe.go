package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/forkful/recipedex/core"
	"github.com/forkful/recipedex/storage"
)

// RecipeRepository implements storage.RecipeRepository for BadgerDB.
//
// Besides the primary record, two index entries are maintained per recipe: a
// corpus-order entry (sequence -> id) that makes ListRecipes return recipes in
// insertion order, and a reverse entry (id -> sequence) so deletes and
// re-adds find the order entry without scanning.
type RecipeRepository struct {
	backend  *Backend
	orderSeq *badger.Sequence
}

var _ storage.RecipeRepository = (*RecipeRepository)(nil)

// NewRecipeRepository creates a new RecipeRepository.
func NewRecipeRepository(backend *Backend) (*RecipeRepository, error) {
	orderSeq, err := backend.GetSequence(recipeOrderSeq)
	if err != nil {
		return nil, err
	}

	return &RecipeRepository{
		backend:  backend,
		orderSeq: orderSeq,
	}, nil
}

// Close releases the order sequence.
func (r *RecipeRepository) Close() error {
	return r.orderSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *RecipeRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddRecipes adds one or more recipes to storage in call order.
// Re-adding an existing ID overwrites the stored recipe but keeps its
// original corpus position.
func (r *RecipeRepository) AddRecipes(ctx context.Context, recipes ...*core.Recipe) ([]*core.Recipe, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, recipe := range recipes {
			if err := core.ValidateRecipe(recipe); err != nil {
				return err
			}

			now := time.Now().UTC()
			if recipe.InsertedAt.IsZero() {
				recipe.InsertedAt = now
			}
			recipe.UpdatedAt = now

			// Only assign a corpus position on first insert.
			posKey := makePosKey(recipe.Id)
			_, err := tx.Get(posKey)
			if err == badger.ErrKeyNotFound {
				seq, seqErr := r.orderSeq.Next()
				if seqErr != nil {
					return seqErr
				}
				if err := tx.Set(makeOrderKey(seq), []byte(recipe.Id)); err != nil {
					return err
				}
				if err := tx.Set(posKey, encodeSeq(seq)); err != nil {
					return err
				}
			} else if err != nil {
				return err
			}

			key := makeRecipeKey(recipe.Id)
			value := storage.MarshalRecipe(recipe)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return recipes, err
}

// UpdateRecipes updates existing recipes.
func (r *RecipeRepository) UpdateRecipes(ctx context.Context, recipes ...*core.Recipe) ([]*core.Recipe, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, recipe := range recipes {
			key := makeRecipeKey(recipe.Id)

			old, err := r.readRecipe(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			recipe.InsertedAt = old.InsertedAt
			recipe.UpdatedAt = time.Now().UTC()

			value := storage.MarshalRecipe(recipe)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return recipes, err
}

// DeleteRecipes removes recipes by their IDs.
func (r *RecipeRepository) DeleteRecipes(ctx context.Context, ids ...string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeRecipeKey(id)

			recipe, err := r.readRecipe(tx, key)
			if err != nil {
				return err
			}
			if recipe == nil {
				return storage.ErrNotFound
			}

			// Remove the order index entry via the reverse lookup.
			posKey := makePosKey(id)
			item, err := tx.Get(posKey)
			if err != nil && err != badger.ErrKeyNotFound {
				return err
			}
			if err == nil {
				var seq uint64
				if err := item.Value(func(val []byte) error {
					seq = decodeSeq(val)
					return nil
				}); err != nil {
					return err
				}
				if err := tx.Delete(makeOrderKey(seq)); err != nil {
					return err
				}
				if err := tx.Delete(posKey); err != nil {
					return err
				}
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetRecipe retrieves a single recipe by ID.
func (r *RecipeRepository) GetRecipe(ctx context.Context, id string) (*core.Recipe, error) {
	var result *core.Recipe
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeRecipeKey(id)
		var err error
		result, err = r.readRecipe(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetRecipes retrieves multiple recipes by their IDs.
// Missing IDs are skipped without error.
func (r *RecipeRepository) GetRecipes(ctx context.Context, ids ...string) ([]*core.Recipe, error) {
	var result []*core.Recipe
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeRecipeKey(id)
			recipe, err := r.readRecipe(tx, key)
			if err != nil {
				return err
			}
			if recipe != nil {
				result = append(result, recipe)
			}
		}
		return nil
	}, false)
	return result, err
}

// ListRecipes retrieves all recipes in corpus order.
func (r *RecipeRepository) ListRecipes(ctx context.Context) ([]*core.Recipe, error) {
	var results []*core.Recipe
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(recipeOrderPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id string
			if err := iter.Item().Value(func(val []byte) error {
				id = string(val)
				return nil
			}); err != nil {
				return err
			}

			recipe, err := r.readRecipe(tx, makeRecipeKey(id))
			if err != nil {
				return err
			}
			if recipe != nil {
				results = append(results, recipe)
			}
		}
		return nil
	}, false)

	return results, err
}

// CountRecipes returns the number of stored recipes.
func (r *RecipeRepository) CountRecipes(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(recipeRecordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readRecipe reads a recipe from the transaction.
// Returns nil without error when the key is absent.
func (r *RecipeRepository) readRecipe(tx *badger.Txn, key []byte) (*core.Recipe, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var recipe *core.Recipe
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		recipe, unmarshalErr = storage.UnmarshalRecipe(val)
		return unmarshalErr
	})
	return recipe, err
}
