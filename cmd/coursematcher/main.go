// Copyright 2025 StudyPort Systems
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
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	coursematcher "github.com/studyport/coursematcher"
	"github.com/studyport/coursematcher/ai"
	"github.com/studyport/coursematcher/config"
	"github.com/studyport/coursematcher/search"
	"github.com/studyport/coursematcher/seeding"
	"github.com/studyport/coursematcher/server"
	"github.com/urfave/cli/v2"
)

func main() {
	// A missing .env is fine; the environment may already be set up
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "coursematcher",
		Usage: "Semantic course search over a pre-embedded catalog",
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
				Value:   "config.yaml",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP search API",
				Action: serveCommand,
			},
			{
				Name:      "seed",
				Usage:     "Embed a catalog source file and replace the stored catalog",
				ArgsUsage: "<catalog.json>",
				Action:    seedCommand,
			},
			{
				Name:      "search",
				Usage:     "Match free text against the catalog",
				ArgsUsage: "<text>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "k",
						Aliases: []string{"n"},
						Usage:   "Matches to return per parsed entry",
						Value:   search.DefaultMaxHits,
					},
				},
			},
			{
				Name:   "courses",
				Usage:  "List the seeded catalog",
				Action: coursesCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// openCatalog builds the catalog handle from the loaded configuration.
func openCatalog(c *cli.Context) (*coursematcher.Catalog, *config.AppConfig, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, err
	}

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(cfg.AI.EmbeddingHost),
		ai.WithSegmenterHost(cfg.AI.SegmenterHost),
		ai.WithEmbeddingModel(cfg.AI.EmbeddingModel),
		ai.WithSegmenterModel(cfg.AI.SegmenterModel),
		ai.WithToken(cfg.AI.APIKey()),
		ai.WithSegmentTimeout(cfg.AI.SegmentTimeout()),
	)

	opts := []coursematcher.CatalogOption{coursematcher.WithAIConfig(aiConfig)}
	if cfg.Storage.InMemory {
		opts = append(opts, coursematcher.WithInMemoryStore())
	}

	catalog, err := coursematcher.OpenCatalog(cfg.Storage.Path, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	return catalog, cfg, nil
}

func serveCommand(c *cli.Context) error {
	catalog, cfg, err := openCatalog(c)
	if err != nil {
		return err
	}
	defer catalog.Close()

	searchOpts := []search.Option{search.WithDefaultMaxHits(cfg.Search.DefaultMaxHits)}
	if cfg.Search.PoolSize > 0 {
		searchOpts = append(searchOpts, search.WithPoolSize(cfg.Search.PoolSize))
	}
	searcher, err := catalog.NewSearcher(searchOpts...)
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}
	defer searcher.Release()

	srv := server.New(server.Config{
		Addr:            cfg.HTTP.Addr,
		ReadTimeout:     time.Duration(cfg.HTTP.ReadTimeoutSecs) * time.Second,
		WriteTimeout:    time.Duration(cfg.HTTP.WriteTimeoutSecs) * time.Second,
		IdleTimeout:     time.Duration(cfg.HTTP.IdleTimeoutSecs) * time.Second,
		ShutdownTimeout: time.Duration(cfg.HTTP.ShutdownTimeoutSecs) * time.Second,
	}, catalog.CourseRepository(), searcher, slog.Default())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}

func seedCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one argument: path to catalog source file")
	}
	sourcePath := c.Args().First()

	catalog, cfg, err := openCatalog(c)
	if err != nil {
		return err
	}
	defer catalog.Close()

	var opts []seeding.Option
	if cfg.Seeding.BatchSize > 0 {
		opts = append(opts, seeding.WithBatchSize(cfg.Seeding.BatchSize))
	}
	if cfg.Seeding.PoolSize > 0 {
		opts = append(opts, seeding.WithPoolSize(cfg.Seeding.PoolSize))
	}

	seeder, err := catalog.NewSeeder(opts...)
	if err != nil {
		return fmt.Errorf("failed to create seeder: %w", err)
	}
	defer seeder.Release()

	count, err := seeder.SeedFile(context.Background(), sourcePath)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Seeded %d courses from %s\n", count, sourcePath)
	return nil
}

func searchCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("expected search text as argument")
	}
	text := strings.Join(c.Args().Slice(), " ")

	catalog, _, err := openCatalog(c)
	if err != nil {
		return err
	}
	defer catalog.Close()

	searcher, err := catalog.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}
	defer searcher.Release()

	result, err := searcher.Search(context.Background(), text, c.Int("k"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if result.Note != "" {
		fmt.Printf("Note: %s\n", result.Note)
	}
	fmt.Printf("%s\n", result.GeneralTitle)
	fmt.Printf("Matches for: %s\n", result.MatchesFor)
	fmt.Printf("Top matches: %s\n\n", result.TopMatches)

	for i, entry := range result.Entries {
		fmt.Printf("[%d] %s\n", i+1, entry.Entry.Title)
		if entry.Err != nil {
			fmt.Printf("    error: %v\n", entry.Err)
			continue
		}
		for _, match := range entry.Matches {
			fmt.Printf("    %.4f  %s (%s, year %d, %s)\n",
				match.Score, match.Record.Title, match.Record.Code,
				match.Record.Year, match.Record.Program)
		}
	}
	return nil
}

func coursesCommand(c *cli.Context) error {
	catalog, _, err := openCatalog(c)
	if err != nil {
		return err
	}
	defer catalog.Close()

	records, err := catalog.CourseRepository().ListCourses(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list courses: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "Catalog is empty. Seed it first with: coursematcher seed <catalog.json>")
		return nil
	}

	for _, record := range records {
		fmt.Printf("year %d  %-20s %s (%d credits, %d hours, %s)\n",
			record.Year, record.Code, record.Title,
			record.Credits, record.TotalHours, record.Program)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
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

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
