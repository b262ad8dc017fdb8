package ingestion

import "errors"

var (
	// ErrRecipeRepositoryRequired is returned when a recipe repository is not provided.
	ErrRecipeRepositoryRequired = errors.New("recipe repository required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")
)
