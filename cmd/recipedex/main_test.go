package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func testContext(t *testing.T, flags map[string]string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for name, value := range flags {
		set.String(name, value, "")
	}
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestSetupLogger(t *testing.T) {
	t.Run("accepts valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "INFO"} {
			c := testContext(t, map[string]string{"log-level": level})
			assert.NoError(t, setupLogger(c), "level %q", level)
		}
	})

	t.Run("rejects invalid level", func(t *testing.T) {
		c := testContext(t, map[string]string{"log-level": "verbose"})
		assert.Error(t, setupLogger(c))
	})
}

func TestLoadFileConfig(t *testing.T) {
	t.Run("parses config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		data := []byte("db: /var/lib/recipedex\nembedding:\n  host: http://embed:8080\n  model: embeddinggemma\n")
		require.NoError(t, os.WriteFile(path, data, 0644))

		cfg, err := loadFileConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "/var/lib/recipedex", cfg.DB)
		assert.Equal(t, "http://embed:8080", cfg.Embedding.Host)
		assert.Equal(t, "embeddinggemma", cfg.Embedding.Model)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadFileConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(":\tnot yaml"), 0644))

		_, err := loadFileConfig(path)
		assert.Error(t, err)
	})
}

func TestRecipeDocToRecipe(t *testing.T) {
	doc := &recipeDoc{
		ID:          "rex01",
		Title:       "Shakshuka",
		Category:    "Breakfast",
		Ingredients: []string{"eggs", "tomatoes"},
		Tags:        []string{"vegetarian"},
		PrepTime:    "10 min",
	}

	recipe := doc.toRecipe()

	assert.Equal(t, "rex01", recipe.Id)
	assert.Equal(t, "Shakshuka", recipe.Title)
	assert.Equal(t, "Breakfast", recipe.Category)
	assert.Equal(t, []string{"eggs", "tomatoes"}, recipe.Ingredients)
	assert.Equal(t, []string{"vegetarian"}, recipe.Tags)
	assert.Equal(t, "10 min", recipe.PrepTime)
	assert.False(t, recipe.HasVector())
}
