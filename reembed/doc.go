// Package reembed provides functionality for reembedding the stored recipe
// corpus with a new or updated embedding model.
//
// This package supports batch processing of recipes, progress tracking,
// retry logic with exponential backoff, and vector normalization so the
// resulting vectors work with inner-product similarity search.
package reembed
