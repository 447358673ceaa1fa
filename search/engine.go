package search

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/halcyonforge/eu5ref/core"
	"github.com/halcyonforge/eu5ref/corpus"
)

// DefaultLimit is the result cap applied when a caller passes a
// non-positive limit.
const DefaultLimit = 10

// Engine answers queries against the snapshot provided by its Source.
// The engine holds no per-request state; all methods are safe for
// concurrent use.
type Engine struct {
	source    corpus.Source
	scorer    Scorer
	threshold float64
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithScorer sets the similarity scorer used by FuzzySearch.
// Default is JaroWinkler.
func WithScorer(scorer Scorer) Option {
	return func(e *Engine) error {
		if scorer == nil {
			return ErrScorerRequired
		}
		e.scorer = scorer
		return nil
	}
}

// WithThreshold sets the minimum score for non-substring fuzzy candidates.
// Default is DefaultThreshold.
func WithThreshold(threshold float64) Option {
	return func(e *Engine) error {
		if threshold < 0 || threshold > 1 {
			return fmt.Errorf("%w: %v", ErrInvalidThreshold, threshold)
		}
		e.threshold = threshold
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates a query engine reading from source.
func NewEngine(source corpus.Source, opts ...Option) (*Engine, error) {
	if source == nil {
		return nil, ErrSourceRequired
	}

	e := &Engine{
		source:    source,
		scorer:    JaroWinkler{},
		threshold: DefaultThreshold,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Match pairs an entry with its similarity score for a fuzzy query.
type Match struct {
	Entry *core.Entry `json:"entry"`
	Score float64     `json:"score"`
}

// ExactLookup returns every entry whose name equals name
// case-insensitively, across all categories. An unknown name yields an
// empty result, never an error.
func (e *Engine) ExactLookup(name string) []*core.Entry {
	entries := e.source.Snapshot().Lookup(name)
	if entries == nil {
		return []*core.Entry{}
	}
	return entries
}

// FuzzySearch returns up to limit entries ranked by name similarity to
// query, highest score first. Candidates are entries whose name contains
// the query as a substring, plus entries scoring at or above the engine
// threshold; on equal scores substring matches rank first, and remaining
// ties keep corpus load order. A non-positive limit means DefaultLimit.
func (e *Engine) FuzzySearch(query string, limit int) []Match {
	return e.FuzzySearchWithMonitor(query, limit, nil)
}

// FuzzySearchWithMonitor runs FuzzySearch with monitoring. The monitor
// receives every candidate considered and the final ranking.
func (e *Engine) FuzzySearchWithMonitor(query string, limit int, monitor SearchMonitor) []Match {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	monitor.Start(query)

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		matches := []Match{}
		monitor.Finish(matches)
		return matches
	}

	type candidate struct {
		Match
		substring bool
	}

	snapshot := e.source.Snapshot()
	candidates := make([]candidate, 0)
	for _, entry := range snapshot.All() {
		name := strings.ToLower(entry.Name)
		score := e.scorer.Score(q, name)
		substring := strings.Contains(name, q)
		if !substring && score < e.threshold {
			continue
		}
		monitor.Candidate(entry, score, substring)
		candidates = append(candidates, candidate{
			Match:     Match{Entry: entry, Score: score},
			substring: substring,
		})
	}

	// Highest score first; substring containment breaks score ties; the
	// stable sort keeps load order for full ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].substring && !candidates[j].substring
	})

	considered := len(candidates)
	if considered > limit {
		candidates = candidates[:limit]
	}

	matches := make([]Match, len(candidates))
	for i, c := range candidates {
		matches[i] = c.Match
	}
	monitor.Finish(matches)
	e.logger.Debug("fuzzy search",
		"query", q,
		"candidates", considered,
		"matches", len(matches),
	)
	return matches
}

// SearchByCategory returns up to limit entries from one category sequence
// in load order. A non-empty query keeps only entries whose name or
// description contains it case-insensitively. group names a data-type
// sub-catalog and is required exactly when category is data_type; any
// other combination fails with an error wrapping core.ErrInvalidCategory.
// A non-positive limit means DefaultLimit.
func (e *Engine) SearchByCategory(category, group, query string, limit int) ([]*core.Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	cat, err := core.ParseCategory(category)
	if err != nil {
		e.logger.Debug("rejected category search", "category", category, "err", err)
		return nil, err
	}

	snapshot := e.source.Snapshot()

	var entries []*core.Entry
	if cat == core.CategoryDataType {
		if group == "" {
			e.logger.Debug("rejected category search", "category", category, "err", core.ErrGroupRequired)
			return nil, fmt.Errorf("%w: %w", core.ErrInvalidCategory, core.ErrGroupRequired)
		}
		g, err := core.ParseDataTypeGroup(group)
		if err != nil {
			e.logger.Debug("rejected category search", "category", category, "group", group, "err", err)
			return nil, fmt.Errorf("%w: %w", core.ErrInvalidCategory, err)
		}
		entries = snapshot.DataTypes(g)
	} else {
		if group != "" {
			e.logger.Debug("rejected category search", "category", category, "group", group, "err", core.ErrUnexpectedGroup)
			return nil, fmt.Errorf("%w: %w", core.ErrInvalidCategory, core.ErrUnexpectedGroup)
		}
		entries = snapshot.Category(cat)
	}

	return clip(filterByQuery(entries, query), limit), nil
}

// filterByQuery keeps entries whose name or description contains query as
// a case-insensitive substring. An empty query keeps everything.
func filterByQuery(entries []*core.Entry, query string) []*core.Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries
	}
	matched := make([]*core.Entry, 0)
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Name), q) ||
			strings.Contains(strings.ToLower(entry.Description()), q) {
			matched = append(matched, entry)
		}
	}
	return matched
}

// SearchByScope returns up to limit entries declaring the given scope tag,
// matched case-insensitively, in load order. An unknown scope yields an
// empty result. A non-positive limit means DefaultLimit.
func (e *Engine) SearchByScope(scope string, limit int) []*core.Entry {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return clip(e.source.Snapshot().Scope(scope), limit)
}

// Stats summarizes the loaded corpus. All figures come from counts
// computed at load time; nothing is recomputed from the raw files.
type Stats struct {
	Categories     map[core.Category]int      `json:"categories"`
	DataTypeGroups map[core.DataTypeGroup]int `json:"data_type_groups"`
	TotalEntries   int                        `json:"total_entries"`
	TotalScopes    int                        `json:"total_scopes"`
}

// Statistics reports per-category and per-group entry counts plus corpus
// totals for the current snapshot.
func (e *Engine) Statistics() *Stats {
	snapshot := e.source.Snapshot()

	stats := &Stats{
		Categories:     make(map[core.Category]int, len(core.Categories())),
		DataTypeGroups: make(map[core.DataTypeGroup]int, len(core.DataTypeGroups())),
		TotalEntries:   snapshot.TotalEntries(),
		TotalScopes:    snapshot.TotalScopes(),
	}
	for _, cat := range core.Categories() {
		stats.Categories[cat] = snapshot.Count(cat)
	}
	for _, group := range core.DataTypeGroups() {
		stats.DataTypeGroups[group] = snapshot.GroupCount(group)
	}
	return stats
}

func clip(entries []*core.Entry, limit int) []*core.Entry {
	if entries == nil {
		return []*core.Entry{}
	}
	if len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
