// Package index provides the vector index and the snapshot that binds it to
// the recipe corpus.
//
// A Snapshot bundles the ordered identifier list, the identifier-to-recipe
// map, and the vector index into one immutable value. The constructor
// validates that the identifier list and the index agree in size, so a
// mismatched pair can never reach the ranker. Rebuilding the corpus means
// building a new Snapshot and swapping a reference; live snapshots are never
// mutated.
package index
