// Package ingestion provides pipeline orchestration for adding recipes.
//
// The Pipeline type manages the ingestion workflow for recipes, including:
//   - Validating and adding recipes to storage
//   - Generating embeddings asynchronously
//
// Embedding is performed concurrently using a worker pool to maximize
// throughput. Errors during async processing are logged but do not fail the
// ingestion operation; recipes left without a vector are picked up by the
// next reembed run.
package ingestion
