package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/pantrygraph/internal/builder"
	"github.com/specialistvlad/pantrygraph/internal/config"
	"github.com/specialistvlad/pantrygraph/internal/ctxlog"
	"github.com/specialistvlad/pantrygraph/internal/graph"
	"github.com/specialistvlad/pantrygraph/internal/lexicon"
	"github.com/specialistvlad/pantrygraph/internal/tables"
	"golang.org/x/sync/errgroup"
)

// maxParallelTableLoads bounds concurrent table file reads.
const maxParallelTableLoads = 4

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	sources Sources
}

// Result is the outcome of a successful build.
type Result struct {
	Graph    *graph.Graph
	Warnings []builder.Warning
}

// NewApp is the constructor for the main application. The returned App owns
// an isolated logger writing to outW.
func NewApp(outW io.Writer, cfg *Config, sources Sources) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")
	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		sources: sources,
	}
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Build loads the configuration, expands the lexicon, merges every curated
// table and returns the finished graph. Any error discards the partial graph.
func (a *App) Build(ctx context.Context) (*Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Build method started.", "config_path", a.config.ConfigPath)

	model, err := a.sources.Config.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := model.Validate(); err != nil {
		return nil, err
	}
	a.logger.Debug("Configuration loaded and translated into unified model.")

	entries, err := a.sources.Lexicon(ctx, model.Lexicon.Paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}
	source, err := lexicon.NewStatic(entries...)
	if err != nil {
		return nil, fmt.Errorf("invalid lexicon: %w", err)
	}
	a.logger.Debug("Lexicon loaded.", "concepts", len(entries))

	b, err := builder.New(source, builder.WithRootName(model.Graph.Root))
	if err != nil {
		return nil, err
	}
	seeds := make([]lexicon.ConceptID, len(model.Graph.Seeds))
	for i, s := range model.Graph.Seeds {
		seeds[i] = lexicon.ConceptID(s)
	}
	if err := b.Expand(ctx, seeds, model.Graph.MaxDepth); err != nil {
		return nil, err
	}

	loaded, err := a.loadTables(ctx, model.Tables)
	if err != nil {
		return nil, err
	}
	for _, k := range tables.Kinds {
		for i, ref := range model.Tables {
			if ref.Kind != k {
				continue
			}
			if err := b.Merge(ctx, k, loaded[i]); err != nil {
				return nil, fmt.Errorf("failed to merge table %s: %w", ref.Path, err)
			}
		}
	}

	g := b.Graph()
	if err := g.Index().DetectCycles(); err != nil {
		a.logger.Warn("Graph contains a cycle; traversals stay bounded.", "error", err)
	}

	warnings := b.Warnings()
	a.logger.Info("Graph built.", "graph_id", g.ID(), "nodes", g.Len(), "tables", len(model.Tables), "warnings", len(warnings))
	return &Result{Graph: g, Warnings: warnings}, nil
}

// loadTables reads every referenced table concurrently. The result is indexed
// like refs so merge order does not depend on load timing.
func (a *App) loadTables(ctx context.Context, refs []config.TableRef) ([]*tables.Table, error) {
	loaded := make([]*tables.Table, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelTableLoads)
	for i, ref := range refs {
		g.Go(func() error {
			t, err := a.sources.Tables.Load(gctx, ref.Path)
			if err != nil {
				return fmt.Errorf("failed to load %s table: %w", ref.Kind, err)
			}
			loaded[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return loaded, nil
}
