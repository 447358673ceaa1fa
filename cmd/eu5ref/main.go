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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/halcyonforge/eu5ref"
	"github.com/halcyonforge/eu5ref/corpus"
	"github.com/halcyonforge/eu5ref/mcp"
	"github.com/halcyonforge/eu5ref/search"
)

func main() {
	app := &cli.App{
		Name:  "eu5ref",
		Usage: "Europa Universalis V modding reference server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the reference corpus over MCP on stdin/stdout",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "Path to the corpus data directory",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "watch",
						Usage: "Reload the corpus when collection files change",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Run a one-shot fuzzy search against the corpus",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "Path to the corpus data directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results",
						Value: search.DefaultLimit,
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Print corpus statistics as JSON",
				Action: statsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "Path to the corpus data directory",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand(c *cli.Context) error {
	ctx := context.Background()
	logger := slog.Default()

	loader, err := corpus.NewLoader(corpus.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create loader: %w", err)
	}
	defer loader.Close()

	var source corpus.Source
	if c.Bool("watch") {
		watcher, err := corpus.NewWatcher(ctx, loader, c.String("data"),
			corpus.WithWatcherLogger(logger))
		if err != nil {
			return fmt.Errorf("failed to watch corpus: %w", err)
		}
		defer watcher.Close()
		source = watcher
	} else {
		snapshot, err := loader.Load(ctx, c.String("data"))
		if err != nil {
			return fmt.Errorf("failed to load corpus: %w", err)
		}
		source = corpus.NewStatic(snapshot)
	}

	engine, err := search.NewEngine(source, search.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	server, err := mcp.NewServer(source, engine, mcp.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return server.ServeStdio()
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return fmt.Errorf("search query is required")
	}

	ref, err := eu5ref.Open(context.Background(), c.String("data"))
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	matches := ref.Engine().FuzzySearch(query, c.Int("limit"))
	fmt.Printf("Found %d hits\n", len(matches))
	for i, match := range matches {
		fmt.Printf("%d: '%s' (%s)[%0.3f]\n", i, match.Entry.Name, match.Entry.Category, match.Score)
	}

	return nil
}

func statsCommand(c *cli.Context) error {
	ref, err := eu5ref.Open(context.Background(), c.String("data"))
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	data, err := json.MarshalIndent(ref.Engine().Statistics(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal statistics: %w", err)
	}
	fmt.Println(string(data))

	return nil
}

func setupLogger(c *cli.Context) error {
	// Normalize and map to slog.Level. Logs go to stderr: stdout carries
	// the MCP transport in serve mode.
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
