package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/forkful/recipedex/ai/mock"
	"github.com/forkful/recipedex/core"
	"github.com/forkful/recipedex/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nilSource simulates a database that has not loaded a snapshot yet.
type nilSource struct{}

func (nilSource) Snapshot() *index.Snapshot { return nil }

// recordingMonitor captures every hook invocation for assertions.
type recordingMonitor struct {
	query   string
	terms   []string
	hits    []index.Hit
	strict  []string
	partial []string
	results []*core.Recipe
}

func (m *recordingMonitor) Start(query string) { m.query = query }
func (m *recordingMonitor) AfterRequiredTerms(terms []string) { m.terms = terms }
func (m *recordingMonitor) AfterVectorSearch(hits []index.Hit) { m.hits = hits }
func (m *recordingMonitor) StrictHit(r *core.Recipe) { m.strict = append(m.strict, r.Id) }
func (m *recordingMonitor) PartialHit(r *core.Recipe) { m.partial = append(m.partial, r.Id) }
func (m *recordingMonitor) Finish(results []*core.Recipe) { m.results = results }

// testCorpus builds a three-recipe snapshot with hand-picked vectors. Against
// the query vector {1, 0} the gazpacho is the closest neighbor and the vegan
// chili the farthest, so keyword gating has to do real work to reorder them.
func testCorpus(t *testing.T) *index.Snapshot {
	t.Helper()

	snapshot, err := index.BuildSnapshot([]*core.Recipe{
		{
			Id:       "rex-gaz",
			Title:    "Spicy Tomato Gazpacho",
			Category: "Soup",
			Tags:     []string{"cold", "summer"},
			Vector:   []float32{1, 0},
		},
		{
			Id:       "rex-stew",
			Title:    "Beef Chili Stew",
			Category: "Dinner",
			Tags:     []string{"hearty"},
			Vector:   []float32{0.8, 0.6},
		},
		{
			Id:          "rex-chi",
			Title:       "Hearty Vegan Chili",
			Description: "Plant-based chili with beans",
			Category:    "Dinner",
			Tags:        []string{"vegetarian", "hearty"},
			Vector:      []float32{0.6, 0.8},
		},
	})
	require.NoError(t, err)
	return snapshot
}

func queryEmbedder(vector []float32) *mock.MockEmbedder {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(_ context.Context, _ string) ([]float32, error) {
		return vector, nil
	}
	return embedder
}

func TestNewSearcher(t *testing.T) {
	t.Run("requires source", func(t *testing.T) {
		_, err := NewSearcher(nil, mock.NewMockEmbedder())
		assert.ErrorIs(t, err, ErrSourceRequired)
	})

	t.Run("requires embedder", func(t *testing.T) {
		_, err := NewSearcher(testCorpus(t), nil)
		assert.ErrorIs(t, err, ErrEmbedderRequired)
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		_, err := NewSearcher(testCorpus(t), mock.NewMockEmbedder(), WithConfig(Config{}))
		assert.ErrorIs(t, err, core.ErrInvalidArgument)
	})
}

func TestSearch_KeywordMatchOutranksSimilarity(t *testing.T) {
	s, err := NewSearcher(testCorpus(t), queryEmbedder([]float32{1, 0}))
	require.NoError(t, err)

	results, err := s.Search(context.Background(), "vegan chili", 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Full keyword match first, half match second, the top-similarity
	// zero-match gazpacho last.
	assert.Equal(t, "rex-chi", results[0].Id)
	assert.Equal(t, "rex-stew", results[1].Id)
	assert.Equal(t, "rex-gaz", results[2].Id)
}

func TestSearch_EmptyTermsDegradeToSimilarity(t *testing.T) {
	s, err := NewSearcher(testCorpus(t), queryEmbedder([]float32{1, 0}))
	require.NoError(t, err)

	// Nothing but stopwords, so no keyword gate.
	results, err := s.Search(context.Background(), "best ever", 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "rex-gaz", results[0].Id)
	assert.Equal(t, "rex-stew", results[1].Id)
	assert.Equal(t, "rex-chi", results[2].Id)
}

func TestSearch_TruncatesToK(t *testing.T) {
	s, err := NewSearcher(testCorpus(t), queryEmbedder([]float32{1, 0}))
	require.NoError(t, err)

	results, err := s.Search(context.Background(), "vegan chili", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "rex-chi", results[0].Id)
}

func TestSearch_Errors(t *testing.T) {
	t.Run("invalid k", func(t *testing.T) {
		s, err := NewSearcher(testCorpus(t), queryEmbedder([]float32{1, 0}))
		require.NoError(t, err)

		_, err = s.Search(context.Background(), "vegan chili", 0)
		assert.ErrorIs(t, err, core.ErrInvalidArgument)
	})

	t.Run("no snapshot", func(t *testing.T) {
		s, err := NewSearcher(nilSource{}, queryEmbedder([]float32{1, 0}))
		require.NoError(t, err)

		_, err = s.Search(context.Background(), "vegan chili", 3)
		assert.ErrorIs(t, err, core.ErrSearchUnavailable)
	})

	t.Run("embedding failure propagates", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextFunc = func(_ context.Context, _ string) ([]float32, error) {
			return nil, fmt.Errorf("%w: connection refused", core.ErrEmbeddingUnavailable)
		}

		s, err := NewSearcher(testCorpus(t), embedder)
		require.NoError(t, err)

		_, err = s.Search(context.Background(), "vegan chili", 3)
		assert.ErrorIs(t, err, core.ErrEmbeddingUnavailable)
	})
}

func TestSearchFiltered(t *testing.T) {
	s, err := NewSearcher(testCorpus(t), queryEmbedder([]float32{1, 0}))
	require.NoError(t, err)

	t.Run("category is case-insensitive", func(t *testing.T) {
		results, err := s.SearchFiltered(context.Background(), "chili", 3, &Filter{Category: "dinner"})
		require.NoError(t, err)
		require.Len(t, results, 2)
		for _, r := range results {
			assert.Equal(t, "Dinner", r.Category)
		}
	})

	t.Run("any tag overlap passes", func(t *testing.T) {
		results, err := s.SearchFiltered(context.Background(), "chili", 3, &Filter{Tags: []string{"Hearty", "missing"}})
		require.NoError(t, err)
		require.Len(t, results, 2)
	})

	t.Run("no overlap excludes", func(t *testing.T) {
		results, err := s.SearchFiltered(context.Background(), "chili", 3, &Filter{Tags: []string{"dessert"}})
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("nil filter matches everything", func(t *testing.T) {
		results, err := s.SearchFiltered(context.Background(), "chili", 3, nil)
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})
}

func TestSearchWithMonitor(t *testing.T) {
	s, err := NewSearcher(testCorpus(t), queryEmbedder([]float32{1, 0}))
	require.NoError(t, err)

	monitor := &recordingMonitor{}
	results, err := s.SearchWithMonitor(context.Background(), "vegan chili", 3, nil, monitor)
	require.NoError(t, err)

	assert.Equal(t, "vegan chili", monitor.query)
	assert.Equal(t, []string{"vegan", "chili"}, monitor.terms)
	assert.Len(t, monitor.hits, 3)
	assert.Equal(t, []string{"rex-chi"}, monitor.strict)
	assert.Equal(t, []string{"rex-stew", "rex-gaz"}, monitor.partial)
	assert.Equal(t, results, monitor.results)
}

func TestSearch_Overfetch(t *testing.T) {
	recipes := make([]*core.Recipe, 12)
	for i := range recipes {
		recipes[i] = &core.Recipe{
			Id:     fmt.Sprintf("rex%02d", i),
			Title:  fmt.Sprintf("Recipe %d", i),
			Vector: []float32{0.6, 0.8},
		}
	}
	snapshot, err := index.BuildSnapshot(recipes)
	require.NoError(t, err)

	s, err := NewSearcher(snapshot, queryEmbedder([]float32{1, 0}))
	require.NoError(t, err)

	// k*6 is below the floor, so 10 candidates are fetched for k=1.
	monitor := &recordingMonitor{}
	results, err := s.SearchWithMonitor(context.Background(), "chili", 1, nil, monitor)
	require.NoError(t, err)

	assert.Len(t, monitor.hits, 10)
	assert.Len(t, results, 1)
}

func TestKeywordSearch(t *testing.T) {
	s, err := NewSearcher(testCorpus(t), queryEmbedder([]float32{1, 0}))
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("ranks by token occurrences", func(t *testing.T) {
		// "chili" appears twice in the vegan chili, once in the stew,
		// never in the gazpacho.
		results, err := s.KeywordSearch(ctx, "chili beans", 5, nil)
		require.NoError(t, err)
		require.Len(t, results, 2)

		assert.Equal(t, "rex-chi", results[0].Id)
		assert.Equal(t, "rex-stew", results[1].Id)
	})

	t.Run("excludes zero-score recipes", func(t *testing.T) {
		results, err := s.KeywordSearch(ctx, "gazpacho", 5, nil)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "rex-gaz", results[0].Id)
	})

	t.Run("ties keep corpus order", func(t *testing.T) {
		results, err := s.KeywordSearch(ctx, "dinner", 5, nil)
		require.NoError(t, err)
		require.Len(t, results, 2)

		// Both score one occurrence; the stew sits earlier in the corpus.
		assert.Equal(t, "rex-stew", results[0].Id)
		assert.Equal(t, "rex-chi", results[1].Id)
	})

	t.Run("truncates to k", func(t *testing.T) {
		results, err := s.KeywordSearch(ctx, "chili", 1, nil)
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("applies filter", func(t *testing.T) {
		results, err := s.KeywordSearch(ctx, "chili", 5, &Filter{Category: "dinner"})
		require.NoError(t, err)
		require.Len(t, results, 2)
	})

	t.Run("empty query returns nothing", func(t *testing.T) {
		results, err := s.KeywordSearch(ctx, "the best", 5, nil)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("invalid k", func(t *testing.T) {
		_, err := s.KeywordSearch(ctx, "chili", 0, nil)
		assert.ErrorIs(t, err, core.ErrInvalidArgument)
	})

	t.Run("no snapshot", func(t *testing.T) {
		unloaded, err := NewSearcher(nilSource{}, queryEmbedder([]float32{1, 0}))
		require.NoError(t, err)

		_, err = unloaded.KeywordSearch(ctx, "chili", 5, nil)
		assert.ErrorIs(t, err, core.ErrSearchUnavailable)
	})
}

func TestFilterMatches(t *testing.T) {
	recipe := &core.Recipe{Category: "Dessert", Tags: []string{"chocolate", "baked"}}

	tests := []struct {
		name    string
		filter  *Filter
		matches bool
	}{
		{name: "nil filter", filter: nil, matches: true},
		{name: "empty filter", filter: &Filter{}, matches: true},
		{name: "category match", filter: &Filter{Category: "dessert"}, matches: true},
		{name: "category mismatch", filter: &Filter{Category: "dinner"}, matches: false},
		{name: "tag overlap", filter: &Filter{Tags: []string{"Chocolate"}}, matches: true},
		{name: "no tag overlap", filter: &Filter{Tags: []string{"savory"}}, matches: false},
		{name: "category and tags", filter: &Filter{Category: "dessert", Tags: []string{"baked"}}, matches: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, tt.filter.matches(recipe))
		})
	}
}

func TestSearch_ErrorIsUnwrappable(t *testing.T) {
	s, err := NewSearcher(testCorpus(t), queryEmbedder([]float32{1, 0}))
	require.NoError(t, err)

	_, err = s.Search(context.Background(), "chili", -1)
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))
}
