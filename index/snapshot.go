package index

import (
	"fmt"

	"github.com/forkful/recipedex/core"
)

// Snapshot is an immutable view of the searchable corpus: the recipe map, the
// ordered identifier list, and the vector index whose row order matches that
// list. A Snapshot is built once and never mutated; corpus rebuilds produce a
// new Snapshot.
type Snapshot struct {
	recipes map[string]*core.Recipe
	ids     []string
	vidx    VectorIndex
}

// Source yields the current snapshot. A server holds a Source whose snapshot
// is swapped atomically on reload; searchers read through it on every call.
// Source may return nil when no snapshot has been loaded yet.
type Source interface {
	Snapshot() *Snapshot
}

// Snapshot implements Source by returning itself, so a plain Snapshot can be
// handed to a Searcher directly.
func (s *Snapshot) Snapshot() *Snapshot {
	return s
}

// NewSnapshot bundles recipes with an already-built vector index.
//
// The identifier list is derived from recipe input order (last write wins on
// duplicate identifiers, keeping the first position), which is the same
// derivation the index build pass must have used. The constructor fails with
// core.ErrIndexMismatch when the list and the index row count disagree, so a
// diverged pair can never serve a search.
func NewSnapshot(recipes []*core.Recipe, vidx VectorIndex) (*Snapshot, error) {
	if len(recipes) == 0 {
		return nil, fmt.Errorf("%w: no recipes", core.ErrInvalidArgument)
	}
	if vidx == nil {
		return nil, fmt.Errorf("%w: vector index is nil", core.ErrInvalidArgument)
	}

	byID := make(map[string]*core.Recipe, len(recipes))
	ids := make([]string, 0, len(recipes))
	for _, recipe := range recipes {
		if _, exists := byID[recipe.Id]; !exists {
			ids = append(ids, recipe.Id)
		}
		byID[recipe.Id] = recipe
	}

	if len(ids) != vidx.Rows() {
		return nil, fmt.Errorf("%w: %d identifiers, %d index rows", core.ErrIndexMismatch, len(ids), vidx.Rows())
	}

	return &Snapshot{recipes: byID, ids: ids, vidx: vidx}, nil
}

// BuildSnapshot constructs a flat index and the identifier list in a single
// pass over the recipes, appending each embedded recipe's vector and
// identifier together so the two cannot diverge. Recipes without vectors are
// skipped (not yet embedded); duplicate identifiers update the map in place
// and keep their original position.
func BuildSnapshot(recipes []*core.Recipe) (*Snapshot, error) {
	if len(recipes) == 0 {
		return nil, fmt.Errorf("%w: no recipes", core.ErrInvalidArgument)
	}

	var flat *Flat
	byID := make(map[string]*core.Recipe, len(recipes))
	ids := make([]string, 0, len(recipes))

	for _, recipe := range recipes {
		if !recipe.HasVector() {
			continue
		}
		if _, exists := byID[recipe.Id]; exists {
			byID[recipe.Id] = recipe
			continue
		}

		if flat == nil {
			f, err := NewFlat(len(recipe.Vector))
			if err != nil {
				return nil, err
			}
			flat = f
		}
		if err := flat.Add(recipe.Vector); err != nil {
			return nil, err
		}
		ids = append(ids, recipe.Id)
		byID[recipe.Id] = recipe
	}

	if flat == nil {
		return nil, fmt.Errorf("%w: no recipes with embeddings", core.ErrInvalidArgument)
	}

	return &Snapshot{recipes: byID, ids: ids, vidx: flat}, nil
}

// Recipe returns the recipe for an identifier, or nil if unknown.
func (s *Snapshot) Recipe(id string) *core.Recipe {
	return s.recipes[id]
}

// RecipeAt resolves a vector-index position to its recipe.
// Returns nil for sentinel or out-of-range positions.
func (s *Snapshot) RecipeAt(position int) *core.Recipe {
	if position < 0 || position >= len(s.ids) {
		return nil
	}
	return s.recipes[s.ids[position]]
}

// IDs returns the ordered identifier list. Callers must not modify it.
func (s *Snapshot) IDs() []string {
	return s.ids
}

// Len returns the number of recipes in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.ids)
}

// Search runs a nearest-neighbor query against the underlying vector index.
func (s *Snapshot) Search(vector []float32, k int) ([]Hit, error) {
	return s.vidx.Search(vector, k)
}

// Rows returns the vector index row count (equal to Len by construction).
func (s *Snapshot) Rows() int {
	return s.vidx.Rows()
}
