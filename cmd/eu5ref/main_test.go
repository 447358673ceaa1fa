package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newSearchApp() *cli.App {
	return &cli.App{
		Name: "eu5ref",
		Commands: []*cli.Command{
			{
				Name:   "search",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Value: 10,
					},
				},
			},
		},
	}
}

func TestSearchCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "modifiers.json"),
		[]byte(`[{"name": "tax_modifier"}, {"name": "trade_tax"}]`), 0o644))

	t.Run("missing data flag fails", func(t *testing.T) {
		err := newSearchApp().Run([]string{"eu5ref", "search", "tax"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "data")
	})

	t.Run("missing query fails", func(t *testing.T) {
		err := newSearchApp().Run([]string{"eu5ref", "search", "--data", dir})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query")
	})

	t.Run("missing corpus directory fails", func(t *testing.T) {
		err := newSearchApp().Run([]string{"eu5ref", "search", "--data", filepath.Join(dir, "nope"), "tax"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load corpus")
	})

	t.Run("search succeeds against a valid corpus", func(t *testing.T) {
		err := newSearchApp().Run([]string{"eu5ref", "search", "--data", dir, "tax"})
		require.NoError(t, err)
	})
}

func TestStatsCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "effects.json"),
		[]byte(`[{"name": "add_gold"}]`), 0o644))

	app := &cli.App{
		Name: "eu5ref",
		Commands: []*cli.Command{
			{
				Name:   "stats",
				Action: statsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Required: true,
					},
				},
			},
		},
	}

	err := app.Run([]string{"eu5ref", "stats", "--data", dir})
	require.NoError(t, err)
}

func TestSetupLogger(t *testing.T) {
	newApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			t.Run(level, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		for _, level := range []string{"DEBUG", "Info", "WaRn", "ERROR"} {
			t.Run(level, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp().Run([]string{"test", "--log-level", "verbose"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}
