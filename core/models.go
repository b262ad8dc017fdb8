package core

//go:generate go run ../cmd/musgen

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// IDFromContent generates a deterministic recipe identifier from text content
// using BLAKE2b hashing. Used when an upstream row carries no identifier of
// its own; identical content produces the identical identifier.
func IDFromContent(text string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	return "rex" + hex.EncodeToString(h.Sum(nil))
}

// Recipe is a single recipe record in the corpus.
// The retrieval engine treats recipes as read-only; the Vector field is
// populated by the embedding pipeline and must be unit-normalized.
type Recipe struct {
	Id           string // Opaque identifier, stable across syncs
	Title        string
	Description  string
	Category     string
	Cuisine      string
	Summary      string
	Notes        string
	Ingredients  []string
	Instructions []string
	Tags         []string
	ImageURL     string
	SourceURL    string
	Servings     string
	PrepTime     string
	CookTime     string
	InsertedAt   time.Time // When the record was inserted into the database
	UpdatedAt    time.Time // When the record was last updated
	Vector       []float32 // Embedding vector for semantic search
}

// SearchableText concatenates the recipe's text-bearing fields into a single
// string used for keyword matching. Field order is fixed so the output is
// deterministic for a given recipe.
func (r *Recipe) SearchableText() string {
	parts := make([]string, 0, 9)
	for _, s := range []string{r.Title, r.Description, r.Category, r.Cuisine, r.Notes, r.Summary} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	for _, list := range [][]string{r.Ingredients, r.Instructions, r.Tags} {
		if len(list) > 0 {
			parts = append(parts, strings.Join(list, " "))
		}
	}
	return strings.Join(parts, " ")
}

// HasVector reports whether the recipe has been embedded.
func (r *Recipe) HasVector() bool {
	return len(r.Vector) > 0
}

// SearchResult pairs a recipe with its relevance score for a query.
type SearchResult struct {
	Recipe *Recipe
	Score  float32
}
