// Copyright 2025 Forkful Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/forkful/recipedex"
	"github.com/forkful/recipedex/ai"
	"github.com/forkful/recipedex/ai/openai"
	"github.com/forkful/recipedex/core"
	"github.com/forkful/recipedex/reembed"
	"github.com/forkful/recipedex/search"
	"github.com/forkful/recipedex/storage/badger"
	"github.com/urfave/cli/v2"
)

// fileConfig holds values loaded by the --config flag; flags override it.
var fileConfig = &FileConfig{}

func main() {
	app := &cli.App{
		Name:  "recipedex",
		Usage: "Semantic recipe search engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML config file",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "Load recipes from a JSON file into the database",
				Action: seedCommand,
				Flags: append(dbFlags(),
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to JSON file with an array of recipes",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of recipes to ingest in each batch",
						Value: 25,
					},
				),
			},
			{
				Name:   "embed",
				Usage:  "Reembed all recipes with the configured embedding model",
				Action: embedCommand,
				Flags: append(append(dbFlags(), embeddingFlags()...),
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of recipes to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N recipes",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				),
			},
			{
				Name:      "search",
				Usage:     "Search the recipe corpus",
				ArgsUsage: "QUERY...",
				Action:    searchCommand,
				Flags: append(append(dbFlags(), embeddingFlags()...),
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"k"},
						Usage:   "Maximum number of results",
						Value:   5,
					},
					&cli.StringFlag{
						Name:  "category",
						Usage: "Restrict results to a category",
					},
					&cli.StringSliceFlag{
						Name:  "tag",
						Usage: "Restrict results to recipes sharing at least one tag (repeatable)",
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to BadgerDB database directory",
		},
	}
}

func embeddingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
		},
	}
}

// dbPath resolves the database path from the flag, then the config file.
func dbPath(c *cli.Context) (string, error) {
	if path := c.String("db"); path != "" {
		return path, nil
	}
	if fileConfig.DB != "" {
		return fileConfig.DB, nil
	}
	return "", fmt.Errorf("database path is required (--db flag or db config key)")
}

// aiConfig resolves the embedding configuration from flags, then the config
// file, then package defaults.
func aiConfig(c *cli.Context) *ai.Config {
	var opts []ai.ConfigOption
	if host := c.String("embedding-host"); host != "" {
		opts = append(opts, ai.WithHost(host))
	} else if fileConfig.Embedding.Host != "" {
		opts = append(opts, ai.WithHost(fileConfig.Embedding.Host))
	}
	if model := c.String("embedding-model"); model != "" {
		opts = append(opts, ai.WithEmbeddingModel(model))
	} else if fileConfig.Embedding.Model != "" {
		opts = append(opts, ai.WithEmbeddingModel(fileConfig.Embedding.Model))
	}
	return ai.NewConfig(opts...)
}

// recipeDoc is the JSON shape of one recipe in a seed file.
type recipeDoc struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Cuisine      string   `json:"cuisine"`
	Summary      string   `json:"summary"`
	Notes        string   `json:"notes"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Tags         []string `json:"tags"`
	ImageURL     string   `json:"image_url"`
	SourceURL    string   `json:"source_url"`
	Servings     string   `json:"servings"`
	PrepTime     string   `json:"prep_time"`
	CookTime     string   `json:"cook_time"`
}

func (d *recipeDoc) toRecipe() *core.Recipe {
	return &core.Recipe{
		Id:           d.ID,
		Title:        d.Title,
		Description:  d.Description,
		Category:     d.Category,
		Cuisine:      d.Cuisine,
		Summary:      d.Summary,
		Notes:        d.Notes,
		Ingredients:  d.Ingredients,
		Instructions: d.Instructions,
		Tags:         d.Tags,
		ImageURL:     d.ImageURL,
		SourceURL:    d.SourceURL,
		Servings:     d.Servings,
		PrepTime:     d.PrepTime,
		CookTime:     d.CookTime,
	}
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	path, err := dbPath(c)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var docs []recipeDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}
	if len(docs) == 0 {
		fmt.Fprintln(os.Stderr, "Seed file contains no recipes")
		return nil
	}

	db, err := recipedex.NewDatabase(path, recipedex.WithAIConfig(aiConfig(c)))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline()
	if err != nil {
		return err
	}
	defer pipeline.Release()

	batchSize := c.Int("batch-size")
	if batchSize <= 0 {
		batchSize = 25
	}

	total := 0
	for i := 0; i < len(docs); i += batchSize {
		end := i + batchSize
		if end > len(docs) {
			end = len(docs)
		}

		recipes := make([]*core.Recipe, 0, end-i)
		for j := i; j < end; j++ {
			recipes = append(recipes, docs[j].toRecipe())
		}

		added, err := pipeline.Ingest(ctx, recipes...)
		if err != nil {
			return fmt.Errorf("failed to ingest batch: %w", err)
		}
		total += len(added)
	}

	fmt.Fprintf(os.Stderr, "Seeded %d recipes into %s\n", total, path)
	return nil
}

func embedCommand(c *cli.Context) error {
	ctx := context.Background()

	path, err := dbPath(c)
	if err != nil {
		return err
	}

	backend, err := badger.OpenBackend(path, false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewRecipeRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	cfg := aiConfig(c)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(cfg)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	reembedConfig := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	if reembedConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reembedConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if reembedConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reembedder := reembed.NewReembedder(repo, embedder, reembedConfig, os.Stderr)

	fmt.Fprintf(os.Stderr, "Database: %s\n", path)
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", cfg.EmbeddingHost)
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", cfg.EmbeddingModel)
	fmt.Fprintln(os.Stderr)

	if err := reembedder.Run(ctx); err != nil {
		return fmt.Errorf("reembedding failed: %w", err)
	}

	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	path, err := dbPath(c)
	if err != nil {
		return err
	}

	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return fmt.Errorf("query is required")
	}

	db, err := recipedex.NewDatabase(path, recipedex.WithAIConfig(aiConfig(c)))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Reload(ctx); err != nil {
		return fmt.Errorf("failed to build search index: %w", err)
	}

	searcher, err := db.NewSearcher()
	if err != nil {
		return err
	}

	fallback, err := search.NewKeywordFallback(searcher)
	if err != nil {
		return err
	}

	var filter *search.Filter
	if c.String("category") != "" || len(c.StringSlice("tag")) > 0 {
		filter = &search.Filter{
			Category: c.String("category"),
			Tags:     c.StringSlice("tag"),
		}
	}

	results, err := fallback.SearchFiltered(ctx, query, c.Int("limit"), filter)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d recipes\n", len(results))
	for i, recipe := range results {
		line := recipe.Title
		if recipe.Category != "" {
			line += " [" + recipe.Category + "]"
		}
		fmt.Printf("%d: %s (%s)\n", i+1, line, recipe.Id)
	}

	return nil
}

func setup(c *cli.Context) error {
	if err := setupLogger(c); err != nil {
		return err
	}

	if path := c.String("config"); path != "" {
		cfg, err := loadFileConfig(path)
		if err != nil {
			return err
		}
		fileConfig = cfg
	}

	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
