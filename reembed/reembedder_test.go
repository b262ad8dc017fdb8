package reembed

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/forkful/recipedex/core"
	"github.com/forkful/recipedex/storage"
	"github.com/forkful/recipedex/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEmbedder implements ai.Embedder for testing
type testEmbedder struct {
	failures int // number of calls to fail before succeeding
	calls    int
}

func (m *testEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vectors, err := m.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (m *testEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	m.calls++
	if m.calls <= m.failures {
		return nil, errors.New("embedder error")
	}
	result := make([][]float32, len(texts))
	for i := range texts {
		result[i] = []float32{0.6, 0.8}
	}
	return result, nil
}

func setupTestRepository(t *testing.T) storage.RecipeRepository {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)

	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	return repo
}

func seedRecipes(t *testing.T, repo storage.RecipeRepository, n int) {
	ctx := context.Background()
	for i := 0; i < n; i++ {
		_, err := repo.AddRecipes(ctx, &core.Recipe{
			Id:    core.IDFromContent(string(rune('a' + i))),
			Title: "Recipe " + string(rune('A'+i)),
		})
		require.NoError(t, err)
	}
}

func TestReembedderRun(t *testing.T) {
	repo := setupTestRepository(t)
	seedRecipes(t, repo, 5)

	var out bytes.Buffer
	config := &Config{
		BatchSize:      2,
		ReportInterval: 1,
		MaxRetries:     1,
		RetryDelay:     time.Millisecond,
	}

	r := NewReembedder(repo, &testEmbedder{}, config, &out)
	err := r.Run(context.Background())
	require.NoError(t, err)

	// Every recipe now carries a normalized vector.
	recipes, err := repo.ListRecipes(context.Background())
	require.NoError(t, err)
	require.Len(t, recipes, 5)
	for _, recipe := range recipes {
		require.True(t, recipe.HasVector())
		assert.InDelta(t, 0.6, recipe.Vector[0], 0.001)
		assert.InDelta(t, 0.8, recipe.Vector[1], 0.001)
	}

	assert.Contains(t, out.String(), "Reembedding complete")
}

func TestReembedderRun_EmptyDatabase(t *testing.T) {
	repo := setupTestRepository(t)

	var out bytes.Buffer
	r := NewReembedder(repo, &testEmbedder{}, nil, &out)

	err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "No recipes found")
}

func TestReembedderRun_RetriesTransientFailures(t *testing.T) {
	repo := setupTestRepository(t)
	seedRecipes(t, repo, 2)

	var out bytes.Buffer
	config := &Config{
		BatchSize:      10,
		ReportInterval: 10,
		MaxRetries:     3,
		RetryDelay:     time.Millisecond,
	}

	embedder := &testEmbedder{failures: 2}
	r := NewReembedder(repo, embedder, config, &out)

	err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, embedder.calls)
}

func TestReembedderRun_FailsAfterMaxRetries(t *testing.T) {
	repo := setupTestRepository(t)
	seedRecipes(t, repo, 2)

	var out bytes.Buffer
	config := &Config{
		BatchSize:      10,
		ReportInterval: 10,
		MaxRetries:     2,
		RetryDelay:     time.Millisecond,
	}

	r := NewReembedder(repo, &testEmbedder{failures: 10}, config, &out)

	err := r.Run(context.Background())
	assert.Error(t, err)
}
