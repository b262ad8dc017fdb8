package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/forkful/recipedex/ai/mock"
	"github.com/forkful/recipedex/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeywordFallback(t *testing.T) {
	t.Run("requires searcher", func(t *testing.T) {
		_, err := NewKeywordFallback(nil)
		assert.ErrorIs(t, err, ErrSearcherRequired)
	})

	t.Run("wraps searcher", func(t *testing.T) {
		s, err := NewSearcher(testCorpus(t), mock.NewMockEmbedder())
		require.NoError(t, err)

		f, err := NewKeywordFallback(s)
		require.NoError(t, err)
		assert.NotNil(t, f)
	})
}

func TestKeywordFallback_SemanticPath(t *testing.T) {
	s, err := NewSearcher(testCorpus(t), queryEmbedder([]float32{1, 0}))
	require.NoError(t, err)

	f, err := NewKeywordFallback(s)
	require.NoError(t, err)

	results, err := f.Search(context.Background(), "vegan chili", 3)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "rex-chi", results[0].Id)
}

func TestKeywordFallback_DegradesOnEmbeddingFailure(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(_ context.Context, _ string) ([]float32, error) {
		return nil, fmt.Errorf("%w: connection refused", core.ErrEmbeddingUnavailable)
	}

	s, err := NewSearcher(testCorpus(t), embedder)
	require.NoError(t, err)

	f, err := NewKeywordFallback(s)
	require.NoError(t, err)

	results, err := f.Search(context.Background(), "chili beans", 5)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "rex-chi", results[0].Id)
}

func TestKeywordFallback_OtherErrorsPassThrough(t *testing.T) {
	indexDown := errors.New("index rebuild in progress")
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(_ context.Context, _ string) ([]float32, error) {
		return nil, indexDown
	}

	s, err := NewSearcher(testCorpus(t), embedder)
	require.NoError(t, err)

	f, err := NewKeywordFallback(s)
	require.NoError(t, err)

	_, err = f.Search(context.Background(), "chili", 5)
	assert.ErrorIs(t, err, indexDown)
}

func TestKeywordFallback_InvalidArgumentNotDegraded(t *testing.T) {
	s, err := NewSearcher(testCorpus(t), queryEmbedder([]float32{1, 0}))
	require.NoError(t, err)

	f, err := NewKeywordFallback(s)
	require.NoError(t, err)

	_, err = f.Search(context.Background(), "chili", 0)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestKeywordFallback_FilterCarriesOver(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(_ context.Context, _ string) ([]float32, error) {
		return nil, fmt.Errorf("%w: timeout", core.ErrEmbeddingUnavailable)
	}

	s, err := NewSearcher(testCorpus(t), embedder)
	require.NoError(t, err)

	f, err := NewKeywordFallback(s)
	require.NoError(t, err)

	results, err := f.SearchFiltered(context.Background(), "chili", 5, &Filter{Category: "soup"})
	require.NoError(t, err)
	assert.Empty(t, results)
}
