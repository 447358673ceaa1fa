// Copyright 2025 Halcyon Forge
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

// Package eu5ref provides lookup and fuzzy search over Europa Universalis V
// modding reference data. Open loads a corpus directory into an immutable
// in-memory snapshot and returns a Reference wired with a query engine.
package eu5ref

import (
	"context"
	"log/slog"

	"github.com/halcyonforge/eu5ref/corpus"
	"github.com/halcyonforge/eu5ref/search"
)

// Reference is a loaded corpus paired with a query engine. It is safe for
// concurrent use; the snapshot never changes after Open returns.
type Reference struct {
	source *corpus.Static
	engine *search.Engine
}

type openConfig struct {
	logger    *slog.Logger
	scorer    search.Scorer
	threshold float64
}

// Option configures Open.
type Option func(*openConfig)

// WithLogger sets a custom logger for loading and searching.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *openConfig) {
		c.logger = logger
	}
}

// WithScorer sets the similarity scorer used by fuzzy search.
func WithScorer(scorer search.Scorer) Option {
	return func(c *openConfig) {
		c.scorer = scorer
	}
}

// WithThreshold sets the minimum similarity score for fuzzy matches.
func WithThreshold(threshold float64) Option {
	return func(c *openConfig) {
		c.threshold = threshold
	}
}

// Open loads the reference corpus from dataDir and returns a ready Reference.
func Open(ctx context.Context, dataDir string, opts ...Option) (*Reference, error) {
	cfg := openConfig{
		logger:    slog.Default(),
		scorer:    search.JaroWinkler{},
		threshold: search.DefaultThreshold,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	loader, err := corpus.NewLoader(corpus.WithLogger(cfg.logger))
	if err != nil {
		return nil, err
	}
	defer loader.Close()

	snapshot, err := loader.Load(ctx, dataDir)
	if err != nil {
		return nil, err
	}

	source := corpus.NewStatic(snapshot)
	engine, err := search.NewEngine(source,
		search.WithScorer(cfg.scorer),
		search.WithThreshold(cfg.threshold),
		search.WithLogger(cfg.logger),
	)
	if err != nil {
		return nil, err
	}

	return &Reference{source: source, engine: engine}, nil
}

// Engine returns the query engine over the loaded corpus.
func (r *Reference) Engine() *search.Engine {
	return r.engine
}

// Snapshot returns the loaded corpus snapshot.
func (r *Reference) Snapshot() *corpus.Snapshot {
	return r.source.Snapshot()
}
