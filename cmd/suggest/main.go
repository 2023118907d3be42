// Copyright 2025 Poiesic Systems
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

	"github.com/poiesic/suggest"
	"github.com/poiesic/suggest/ai"
	"github.com/poiesic/suggest/core"
	"github.com/poiesic/suggest/ingest"
	"github.com/poiesic/suggest/learning"
	"github.com/poiesic/suggest/rank"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "suggest",
		Usage: "Suggestion ranking engine for directory sites",
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
				Name:   "rank",
				Usage:  "Rank suggestions for a query",
				Action: rankCommand,
				Flags: append(storeFlags(),
					&cli.StringFlag{
						Name:     "query",
						Aliases:  []string{"q"},
						Usage:    "Search query text",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "user",
						Aliases: []string{"u"},
						Usage:   "User identifier for personalization",
					},
					&cli.Float64Flag{
						Name:  "lat",
						Usage: "User latitude",
					},
					&cli.Float64Flag{
						Name:  "lon",
						Usage: "User longitude",
					},
					&cli.StringFlag{
						Name:  "location",
						Usage: "User location text (city name)",
					},
					&cli.StringSliceFlag{
						Name:  "history",
						Usage: "Recent queries, oldest first (repeatable)",
					},
					&cli.StringFlag{
						Name:  "variant",
						Usage: "Experiment variant label",
					},
					&cli.BoolFlag{
						Name:  "debug",
						Usage: "Include per-candidate scoring diagnostics",
					},
					&cli.IntFlag{
						Name:    "topk",
						Aliases: []string{"k"},
						Usage:   "Number of suggestions to return",
					},
					&cli.Float64Flag{
						Name:  "radius",
						Usage: "Hard geo filter radius in km (0 disables)",
					},
					&cli.DurationFlag{
						Name:  "cache-ttl",
						Usage: "Result cache lifetime",
						Value: 5 * time.Minute,
					},
				),
			},
			{
				Name:   "feedback",
				Usage:  "Record feedback on a served suggestion",
				Action: feedbackCommand,
				Flags: append(storeFlags(),
					&cli.StringFlag{
						Name:     "user",
						Aliases:  []string{"u"},
						Usage:    "User identifier",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "query",
						Aliases:  []string{"q"},
						Usage:    "Query the suggestion was served for",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "suggestion",
						Aliases:  []string{"s"},
						Usage:    "The selected suggestion text",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "rating",
						Aliases:  []string{"r"},
						Usage:    "Success rating 1-5",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "location",
						Usage: "User location text",
					},
					&cli.StringFlag{
						Name:  "variant",
						Usage: "Experiment variant label",
					},
				),
			},
			{
				Name:   "import",
				Usage:  "Import site data entities from a JSON file",
				Action: importCommand,
				Flags: append(storeFlags(),
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to a JSON array of entities",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for the vector backfill",
					},
				),
			},
			{
				Name:  "data",
				Usage: "Inspect and edit stored site data",
				Subcommands: []*cli.Command{
					{
						Name:   "add",
						Usage:  "Add a single entity",
						Action: dataAddCommand,
						Flags: append(storeFlags(),
							&cli.StringFlag{
								Name:     "kind",
								Usage:    "Entity kind (member, category, profession, location, synonym, blocklist, allowlist)",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "text",
								Usage:    "Entity text",
								Required: true,
							},
							&cli.StringFlag{
								Name:  "tags",
								Usage: "Comma-separated tags (members)",
							},
							&cli.StringFlag{
								Name:  "location",
								Usage: "Location text",
							},
							&cli.StringSliceFlag{
								Name:  "term",
								Usage: "Expansion term (synonyms, repeatable)",
							},
						),
					},
					{
						Name:   "list",
						Usage:  "List entities of one kind",
						Action: dataListCommand,
						Flags: append(storeFlags(),
							&cli.StringFlag{
								Name:     "kind",
								Usage:    "Entity kind to list",
								Required: true,
							},
						),
					},
					{
						Name:   "delete",
						Usage:  "Delete entities by ID",
						Action: dataDeleteCommand,
						Flags: append(storeFlags(),
							&cli.Uint64SliceFlag{
								Name:     "id",
								Usage:    "Entity ID (repeatable)",
								Required: true,
							},
						),
					},
				},
			},
			{
				Name:   "analytics",
				Usage:  "Show top queries and suggestions",
				Action: analyticsCommand,
				Flags: append(storeFlags(),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Number of entries per report",
						Value: 10,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func storeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "all-minilm",
		},
	}
}

func openEngine(c *cli.Context, extra ...suggest.EngineOption) (*suggest.Engine, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("embedding-host")),
		ai.WithModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	opts := append([]suggest.EngineOption{suggest.WithAIConfig(aiConfig)}, extra...)
	engine, err := suggest.NewEngine(c.String("db"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open engine: %w", err)
	}
	return engine, nil
}

func rankCommand(c *cli.Context) error {
	engineOpts := []suggest.EngineOption{suggest.WithCacheTTL(c.Duration("cache-ttl"))}
	if c.IsSet("topk") || c.IsSet("radius") {
		rankConfig := rank.DefaultConfig()
		if c.IsSet("topk") {
			rankConfig.TopK = c.Int("topk")
		}
		if c.IsSet("radius") {
			rankConfig.RadiusKm = c.Float64("radius")
		}
		engineOpts = append(engineOpts, suggest.WithRankConfig(rankConfig))
	}

	engine, err := openEngine(c, engineOpts...)
	if err != nil {
		return err
	}
	defer engine.Close()

	qc := &core.QueryContext{
		Query:    c.String("query"),
		UserID:   c.String("user"),
		History:  c.StringSlice("history"),
		Location: c.String("location"),
		Variant:  c.String("variant"),
		Debug:    c.Bool("debug"),
	}
	if c.IsSet("lat") {
		lat := c.Float64("lat")
		qc.Latitude = &lat
	}
	if c.IsSet("lon") {
		lon := c.Float64("lon")
		qc.Longitude = &lon
	}

	result, err := engine.Rank(context.Background(), qc)
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}
	return printJSON(rankedResultJSON(result))
}

func feedbackCommand(c *cli.Context) error {
	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	fb := learning.Feedback{
		UserID:     c.String("user"),
		Query:      c.String("query"),
		Suggestion: c.String("suggestion"),
		Rating:     c.Int("rating"),
		Location:   c.String("location"),
		Variant:    c.String("variant"),
	}
	if err := engine.RecordFeedback(context.Background(), fb); err != nil {
		return fmt.Errorf("feedback failed: %w", err)
	}
	return printJSON(map[string]string{"status": "recorded"})
}

func importCommand(c *cli.Context) error {
	data, err := os.ReadFile(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	var raw []entityJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid import file: %w", err)
	}

	entities := make([]*core.Entity, len(raw))
	for i := range raw {
		entity, err := raw[i].toEntity()
		if err != nil {
			return fmt.Errorf("entity %d: %w", i, err)
		}
		entities[i] = entity
	}

	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	var pipelineOpts []ingest.Option
	if c.IsSet("pool-size") {
		pipelineOpts = append(pipelineOpts, ingest.WithPoolSize(c.Int("pool-size")))
	}
	pipeline, err := engine.NewImportPipeline(pipelineOpts...)
	if err != nil {
		return fmt.Errorf("failed to create import pipeline: %w", err)
	}
	defer pipeline.Release()

	added, err := pipeline.Import(context.Background(), entities...)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Imported %d entities, waiting for vector backfill\n", len(added))
	pipeline.Wait()

	return printJSON(map[string]int{"imported": len(added)})
}

func dataAddCommand(c *cli.Context) error {
	kind := core.KindFromString(c.String("kind"))
	if kind == 0 {
		return fmt.Errorf("unknown entity kind %q", c.String("kind"))
	}

	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	added, err := engine.Entities().AddEntities(context.Background(), &core.Entity{
		Kind:     kind,
		Text:     c.String("text"),
		Tags:     c.String("tags"),
		Location: c.String("location"),
		Terms:    c.StringSlice("term"),
	})
	if err != nil {
		return fmt.Errorf("add failed: %w", err)
	}
	return printJSON(map[string]uint64{"id": uint64(added[0].Id)})
}

func dataListCommand(c *cli.Context) error {
	kind := core.KindFromString(c.String("kind"))
	if kind == 0 {
		return fmt.Errorf("unknown entity kind %q", c.String("kind"))
	}

	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	entities, err := engine.Entities().ListEntities(context.Background(), kind)
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	out := make([]entityJSON, len(entities))
	for i, entity := range entities {
		out[i] = fromEntity(entity)
	}
	return printJSON(out)
}

func dataDeleteCommand(c *cli.Context) error {
	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	raw := c.Uint64Slice("id")
	ids := make([]core.ID, len(raw))
	for i, id := range raw {
		ids[i] = core.ID(id)
	}

	if err := engine.Entities().DeleteEntities(context.Background(), ids...); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	return printJSON(map[string]int{"deleted": len(ids)})
}

func analyticsCommand(c *cli.Context) error {
	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	ctx := context.Background()
	limit := c.Int("limit")

	queries, err := engine.Analytics().TopQueries(ctx, limit)
	if err != nil {
		return fmt.Errorf("top queries failed: %w", err)
	}
	suggestions, err := engine.Analytics().TopSuggestions(ctx, limit)
	if err != nil {
		return fmt.Errorf("top suggestions failed: %w", err)
	}

	return printJSON(map[string][]countedJSON{
		"top_queries":     countedList(queries),
		"top_suggestions": countedList(suggestions),
	})
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
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
