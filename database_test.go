package recipedex

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/forkful/recipedex/ai/mock"
	"github.com/forkful/recipedex/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase(t *testing.T) {
	t.Run("create new database", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		db, err := NewDatabase(tmpDir, WithEmbedder(mock.NewMockEmbedder()))
		require.NoError(t, err)
		require.NotNil(t, db)
		defer db.Close()

		// Verify components are initialized
		assert.NotNil(t, db.RecipeRepository())
		assert.NotNil(t, db.Embedder())
		assert.NotNil(t, db.backend)
		assert.NotNil(t, db.logger)

		// No snapshot until Reload runs.
		assert.Nil(t, db.Snapshot())
	})

	t.Run("error with invalid path", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		db, err := NewDatabase(tmpFile, WithEmbedder(mock.NewMockEmbedder()))
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func TestDatabase_Close(t *testing.T) {
	db, err := NewDatabase("", WithInMemory(), WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)
	require.NotNil(t, db)

	err = db.Close()
	assert.NoError(t, err)
}

func TestDatabase_FactoryMethods(t *testing.T) {
	db, err := NewDatabase("", WithInMemory(), WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)
	require.NotNil(t, db)
	defer db.Close()

	t.Run("can create ingestion pipeline", func(t *testing.T) {
		pipeline, err := db.NewIngestionPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("can create searcher", func(t *testing.T) {
		searcher, err := db.NewSearcher()
		require.NoError(t, err)
		require.NotNil(t, searcher)
	})
}

func TestDatabase_Reload(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(_ context.Context, _ string) ([]float32, error) {
		return []float32{0.6, 0.8}, nil
	}

	db, err := NewDatabase("", WithInMemory(), WithEmbedder(embedder))
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()

	t.Run("no embedded recipes keeps nil snapshot", func(t *testing.T) {
		_, err := db.RecipeRepository().AddRecipes(ctx, &core.Recipe{Id: "rex01", Title: "Plain"})
		require.NoError(t, err)

		err = db.Reload(ctx)
		require.NoError(t, err)
		assert.Nil(t, db.Snapshot())
	})

	t.Run("embedded recipes produce a snapshot", func(t *testing.T) {
		_, err := db.RecipeRepository().AddRecipes(ctx, &core.Recipe{
			Id:     "rex02",
			Title:  "Embedded",
			Vector: []float32{0.6, 0.8},
		})
		require.NoError(t, err)

		err = db.Reload(ctx)
		require.NoError(t, err)

		snapshot := db.Snapshot()
		require.NotNil(t, snapshot)
		// Only the embedded recipe is indexed.
		assert.Equal(t, 1, snapshot.Len())
		assert.NotNil(t, snapshot.Recipe("rex02"))
	})

	t.Run("searcher sees the swapped snapshot", func(t *testing.T) {
		searcher, err := db.NewSearcher()
		require.NoError(t, err)

		results, err := searcher.Search(ctx, "embedded", 5)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "rex02", results[0].Id)
	})
}
