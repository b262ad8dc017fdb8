package search

import (
	"context"
	"errors"
	"log/slog"

	"github.com/forkful/recipedex/core"
)

// KeywordFallback composes a Searcher with an explicit degrade path: when the
// embedding service is unavailable, the query is answered by keyword-only
// ranking instead of failing. The decision lives here, at the caller layer,
// so the ranking engine itself stays failure-explicit.
type KeywordFallback struct {
	searcher *Searcher
	logger   *slog.Logger
}

// NewKeywordFallback wraps a searcher with keyword-only degradation.
func NewKeywordFallback(searcher *Searcher, opts ...FallbackOption) (*KeywordFallback, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}

	f := &KeywordFallback{
		searcher: searcher,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// FallbackOption configures a KeywordFallback.
type FallbackOption func(*KeywordFallback)

// WithFallbackLogger sets a custom logger.
// Default is slog.Default().
func WithFallbackLogger(logger *slog.Logger) FallbackOption {
	return func(f *KeywordFallback) {
		if logger == nil {
			logger = slog.Default()
		}
		f.logger = logger
	}
}

// Search ranks recipes for the query, degrading to keyword-only ranking when
// the embedding call fails. All other errors pass through unchanged.
func (f *KeywordFallback) Search(ctx context.Context, query string, k int) ([]*core.Recipe, error) {
	return f.SearchFiltered(ctx, query, k, nil)
}

// SearchFiltered is Search with an optional category/tag filter.
func (f *KeywordFallback) SearchFiltered(ctx context.Context, query string, k int, filter *Filter) ([]*core.Recipe, error) {
	results, err := f.searcher.SearchFiltered(ctx, query, k, filter)
	if err == nil {
		return results, nil
	}
	if !errors.Is(err, core.ErrEmbeddingUnavailable) {
		return nil, err
	}

	f.logger.Warn("embedding unavailable, degrading to keyword search", "query", query, "err", err)
	return f.searcher.KeywordSearch(ctx, query, k, filter)
}
