package index

import (
	"fmt"
	"sort"

	"github.com/forkful/recipedex/core"
)

// NoPosition is the sentinel position for an empty result slot. The flat
// index never emits it, but callers consuming the VectorIndex interface must
// skip it since padded results are legal for other implementations.
const NoPosition = -1

// Hit is a single nearest-neighbor result: a row position in the index and
// its similarity score.
type Hit struct {
	Position int
	Score    float32
}

// VectorIndex is a nearest-neighbor index over fixed-dimension vectors.
// Implementations must return hits sorted descending by score; callers do not
// re-sort.
type VectorIndex interface {
	// Search returns up to k hits for the query vector, best first.
	Search(vector []float32, k int) ([]Hit, error)

	// Rows returns the number of vectors in the index.
	Rows() int
}

// Flat is an exact inner-product index: a brute-force scan over all stored
// vectors. With unit-normalized vectors the score is cosine similarity.
// Row positions are assignment order and never change once added.
type Flat struct {
	dim     int
	vectors [][]float32
}

var _ VectorIndex = (*Flat)(nil)

// NewFlat creates an empty flat index for vectors of the given dimension.
func NewFlat(dim int) (*Flat, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: dimension must be positive, got %d", core.ErrInvalidArgument, dim)
	}
	return &Flat{dim: dim}, nil
}

// Add appends vectors to the index in order.
func (f *Flat) Add(vectors ...[]float32) error {
	for _, v := range vectors {
		if len(v) != f.dim {
			return fmt.Errorf("%w: vector dimension %d, index dimension %d", core.ErrInvalidArgument, len(v), f.dim)
		}
	}
	f.vectors = append(f.vectors, vectors...)
	return nil
}

// Rows returns the number of stored vectors.
func (f *Flat) Rows() int {
	return len(f.vectors)
}

// Dimension returns the vector dimension the index was created with.
func (f *Flat) Dimension() int {
	return f.dim
}

// Search scans all stored vectors and returns the top k by inner product,
// descending. Ties keep row order. Returns fewer than k hits when the index
// holds fewer rows.
func (f *Flat) Search(vector []float32, k int) ([]Hit, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", core.ErrInvalidArgument, k)
	}
	if len(vector) != f.dim {
		return nil, fmt.Errorf("%w: query dimension %d, index dimension %d", core.ErrInvalidArgument, len(vector), f.dim)
	}

	hits := make([]Hit, len(f.vectors))
	for i, v := range f.vectors {
		hits[i] = Hit{Position: i, Score: dotProduct(vector, v)}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}
