package search

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/forkful/recipedex/ai"
	"github.com/forkful/recipedex/core"
	"github.com/forkful/recipedex/index"
)

// Config holds the ranking tunables. The defaults come from the production
// deployment and are empirically chosen; treat them as starting points, not
// optima.
type Config struct {
	// OverfetchMultiplier scales k into the number of nearest-neighbor
	// candidates requested from the vector index. Many top-similarity hits
	// fail the keyword gate, so the ranker needs room to discard without a
	// second round-trip. Default 6.
	OverfetchMultiplier int

	// OverfetchFloor is the minimum candidate count requested regardless of
	// k. Default 10.
	OverfetchFloor int

	// StrictThreshold is the match ratio at or above which a candidate
	// counts as a strict match. Slightly below 1.0 to tolerate
	// floating-point division. Default 0.999.
	StrictThreshold float64

	// PartialFloor is the minimum match ratio a partial match needs to fill
	// remaining result slots before any-ratio backfill. Keeps a request for
	// "15 keto desserts" from being padded with zero-match items. Default 0.5.
	PartialFloor float64
}

// DefaultConfig returns the production ranking configuration.
func DefaultConfig() Config {
	return Config{
		OverfetchMultiplier: 6,
		OverfetchFloor:      10,
		StrictThreshold:     0.999,
		PartialFloor:        0.5,
	}
}

// Filter restricts search results to recipes matching a category and/or
// sharing at least one tag. Comparisons are case-insensitive. A nil Filter
// or zero field applies no restriction.
type Filter struct {
	Category string
	Tags     []string
}

func (f *Filter) matches(recipe *core.Recipe) bool {
	if f == nil {
		return true
	}
	if f.Category != "" && !strings.EqualFold(f.Category, recipe.Category) {
		return false
	}
	if len(f.Tags) > 0 {
		found := false
		for _, want := range f.Tags {
			for _, have := range recipe.Tags {
				if strings.EqualFold(want, have) {
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Searcher ranks recipes for a query by combining embedding similarity with
// keyword-overlap gating. Each call is stateless: it reads the current
// snapshot through the source and touches no mutable state, so concurrent
// searches are safe.
type Searcher struct {
	source   index.Source
	embedder ai.Embedder
	config   Config
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithConfig overrides the ranking tunables.
func WithConfig(config Config) Option {
	return func(s *Searcher) error {
		if config.OverfetchMultiplier < 1 {
			return fmt.Errorf("%w: overfetch multiplier must be >= 1", core.ErrInvalidArgument)
		}
		if config.OverfetchFloor < 1 {
			return fmt.Errorf("%w: overfetch floor must be >= 1", core.ErrInvalidArgument)
		}
		s.config = config
		return nil
	}
}

// NewSearcher creates a new searcher reading snapshots from source and
// embedding queries with embedder.
func NewSearcher(source index.Source, embedder ai.Embedder, opts ...Option) (*Searcher, error) {
	if source == nil {
		return nil, ErrSourceRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Searcher{
		source:   source,
		embedder: embedder,
		config:   DefaultConfig(),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// candidate is the per-call scoring record for one recipe.
type candidate struct {
	recipe     *core.Recipe
	similarity float32
	matchCount int
	matchRatio float64
}

// Search returns up to k recipes ranked best-first for the query.
func (s *Searcher) Search(ctx context.Context, query string, k int) ([]*core.Recipe, error) {
	return s.SearchWithMonitor(ctx, query, k, nil, nil)
}

// SearchFiltered is Search with an optional category/tag filter applied
// before scoring.
func (s *Searcher) SearchFiltered(ctx context.Context, query string, k int, filter *Filter) ([]*core.Recipe, error) {
	return s.SearchWithMonitor(ctx, query, k, filter, nil)
}

// SearchWithMonitor searches with observation hooks at each ranking stage.
//
// Ranking proceeds in tiers: candidates satisfying every required term come
// first (ordered among themselves by match count then similarity), then
// partial matches at or above the partial floor, then any remainder, until k
// results are collected or candidates run out. An empty required-term set
// disables keyword gating entirely and the order degrades to pure similarity.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, k int, filter *Filter, monitor SearchMonitor) ([]*core.Recipe, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", core.ErrInvalidArgument, k)
	}

	snapshot := s.source.Snapshot()
	if snapshot == nil {
		return nil, core.ErrSearchUnavailable
	}

	monitor.Start(query)

	terms := ExtractRequiredTerms(query)
	monitor.AfterRequiredTerms(terms)

	embedding, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}
	vector := index.NormalizeVector(embedding)

	// Over-fetch: the keyword gate rejects many top-similarity hits.
	searchK := k * s.config.OverfetchMultiplier
	if searchK < s.config.OverfetchFloor {
		searchK = s.config.OverfetchFloor
	}

	hits, err := snapshot.Search(vector, searchK)
	if err != nil {
		s.logger.Error("error querying vector index", "err", err)
		return nil, err
	}
	monitor.AfterVectorSearch(hits)

	candidates := s.scoreCandidates(snapshot, hits, terms, filter)
	results := s.fill(candidates, terms, k, monitor)

	monitor.Finish(results)
	return results, nil
}

// scoreCandidates resolves hits to recipes, applies the filter, and computes
// keyword-match statistics for each surviving candidate. Candidates keep the
// index's descending-similarity order.
func (s *Searcher) scoreCandidates(snapshot *index.Snapshot, hits []index.Hit, terms []string, filter *Filter) []candidate {
	candidates := make([]candidate, 0, len(hits))
	seen := make(map[string]bool, len(hits))

	for _, hit := range hits {
		// Sentinel and out-of-range positions resolve to nil.
		recipe := snapshot.RecipeAt(hit.Position)
		if recipe == nil {
			continue
		}
		if seen[recipe.Id] {
			continue
		}
		seen[recipe.Id] = true

		if !filter.matches(recipe) {
			continue
		}

		normalized := normalizeText(recipe.SearchableText())
		count := countMatches(terms, normalized, tokenSet(normalized))

		ratio := 1.0
		if len(terms) > 0 {
			ratio = float64(count) / float64(len(terms))
		}

		candidates = append(candidates, candidate{
			recipe:     recipe,
			similarity: hit.Score,
			matchCount: count,
			matchRatio: ratio,
		})
	}

	// Match ratio is the primary key: a 100% keyword match always outranks
	// an 80% match regardless of raw similarity. Stable sort keeps index
	// order on full ties, which makes repeated calls deterministic.
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.matchRatio != b.matchRatio {
			return a.matchRatio > b.matchRatio
		}
		if a.matchCount != b.matchCount {
			return a.matchCount > b.matchCount
		}
		return a.similarity > b.similarity
	})

	return candidates
}

// fill collects up to k results from the sorted candidates in three tiers:
// strict matches, partial matches at or above the partial floor, then
// anything left. The ratio gate is skipped when terms is empty, since every
// candidate carries ratio 1.0 already.
func (s *Searcher) fill(candidates []candidate, terms []string, k int, monitor SearchMonitor) []*core.Recipe {
	results := make([]*core.Recipe, 0, min(k, len(candidates)))
	taken := make(map[string]bool, k)

	take := func(c candidate, strict bool) {
		results = append(results, c.recipe)
		taken[c.recipe.Id] = true
		if strict {
			monitor.StrictHit(c.recipe)
		} else {
			monitor.PartialHit(c.recipe)
		}
	}

	for _, c := range candidates {
		if len(results) >= k {
			return results
		}
		if c.matchRatio >= s.config.StrictThreshold {
			take(c, true)
		}
	}

	if len(terms) > 0 {
		for _, c := range candidates {
			if len(results) >= k {
				return results
			}
			if !taken[c.recipe.Id] && c.matchRatio >= s.config.PartialFloor {
				take(c, false)
			}
		}
	}

	for _, c := range candidates {
		if len(results) >= k {
			return results
		}
		if !taken[c.recipe.Id] {
			take(c, false)
		}
	}

	return results
}

// KeywordSearch ranks recipes by query-token occurrence counts alone, with no
// embedding involved. It is the degrade path used when the embedding service
// is down; see KeywordFallback. Zero-score recipes are excluded, ties keep
// corpus order.
func (s *Searcher) KeywordSearch(ctx context.Context, query string, k int, filter *Filter) ([]*core.Recipe, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", core.ErrInvalidArgument, k)
	}

	snapshot := s.source.Snapshot()
	if snapshot == nil {
		return nil, core.ErrSearchUnavailable
	}

	queryTokens := tokenSet(normalizeText(query))
	if len(queryTokens) == 0 {
		return []*core.Recipe{}, nil
	}

	scored := make([]core.SearchResult, 0, snapshot.Len())
	for _, id := range snapshot.IDs() {
		recipe := snapshot.Recipe(id)
		if !filter.matches(recipe) {
			continue
		}

		var score float32
		for _, word := range strings.Fields(normalizeText(recipe.SearchableText())) {
			if queryTokens[word] {
				score++
			}
		}
		if score > 0 {
			scored = append(scored, core.SearchResult{Recipe: recipe, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	results := make([]*core.Recipe, len(scored))
	for i, r := range scored {
		results[i] = r.Recipe
	}
	return results, nil
}
