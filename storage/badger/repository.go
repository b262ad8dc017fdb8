package badger

import "github.com/forkful/recipedex/storage"

// NewRepository opens a BadgerDB-backed recipe repository at path.
// Returns the repository and its backend; caller must close both when done.
//
// Returns storage.RecipeRepository interface to enforce abstraction.
func NewRepository(path string) (storage.RecipeRepository, *Backend, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, nil, err
	}

	repo, err := NewRecipeRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}

	return repo, backend, nil
}
