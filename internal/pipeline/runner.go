// Package pipeline orchestrates a consolidation run: load every raw source,
// merge the aligned frames into the monthly panel, derive stress scenarios
// and export the run outputs.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"macropanel/internal/config"
	"macropanel/internal/consolidate"
	"macropanel/internal/exporter"
	"macropanel/internal/loaders"
	"macropanel/internal/scenarios"
	"macropanel/internal/timeseries"
)

// Result captures the outcome of one consolidation run.
type Result struct {
	RunID     string
	Panel     *timeseries.Frame
	Scenarios *scenarios.Set
	Outputs   []string
	Duration  time.Duration
}

// Runner executes consolidation runs against a fixed configuration.
type Runner struct {
	cfg     *config.Config
	logger  *slog.Logger
	loaders []loaders.Loader
}

// NewRunner creates a runner over the standard source loaders.
func NewRunner(cfg *config.Config, logger *slog.Logger) *Runner {
	return &Runner{cfg: cfg, logger: logger, loaders: loaders.All()}
}

// Run executes one full consolidation: sources are loaded concurrently,
// consolidated into the panel, scenario values derived, and all four outputs
// written to the configured output directory.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	runID := uuid.New().String()
	log := r.logger.With(slog.String("run_id", runID))
	start := time.Now()

	log.InfoContext(ctx, "starting consolidation run",
		slog.String("data_dir", r.cfg.Paths.DataDir),
		slog.String("window_start", r.cfg.Window.Start),
		slog.String("window_end", r.cfg.Window.End))

	frames, err := r.loadSources(ctx, log)
	if err != nil {
		return nil, err
	}

	panel, err := consolidate.Consolidate(ctx, frames)
	if err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "panel consolidated",
		slog.Int("records", panel.Len()),
		slog.Int("variables", len(panel.Columns())))

	set, err := scenarios.Build(ctx, panel)
	if err != nil {
		return nil, err
	}

	outputs, err := r.export(ctx, panel, set)
	if err != nil {
		return nil, err
	}

	duration := time.Since(start)
	log.InfoContext(ctx, "consolidation run complete",
		slog.Duration("duration", duration),
		slog.Int("outputs", len(outputs)))

	return &Result{
		RunID:     runID,
		Panel:     panel,
		Scenarios: set,
		Outputs:   outputs,
		Duration:  duration,
	}, nil
}

// loadSources runs every loader concurrently. The returned frames keep the
// loader order so panel columns come out in a stable order.
func (r *Runner) loadSources(ctx context.Context, log *slog.Logger) ([]*timeseries.Frame, error) {
	frames := make([]*timeseries.Frame, len(r.loaders))

	g, ctx := errgroup.WithContext(ctx)
	for i, loader := range r.loaders {
		g.Go(func() error {
			frame, err := loader.Load(ctx, r.cfg)
			if err != nil {
				log.ErrorContext(ctx, "source load failed",
					slog.String("source", loader.Name),
					slog.String("error", err.Error()))
				return err
			}
			log.DebugContext(ctx, "source loaded",
				slog.String("source", loader.Name),
				slog.Int("columns", len(frame.Columns())))
			frames[i] = frame
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}

func (r *Runner) export(ctx context.Context, panel *timeseries.Frame, set *scenarios.Set) ([]string, error) {
	w := exporter.NewWriter(r.cfg.Paths.OutputDir)

	var outputs []string
	for _, write := range []func() (string, error){
		func() (string, error) { return w.WritePanel(ctx, panel) },
		func() (string, error) { return w.WriteScenarios(ctx, set) },
		func() (string, error) { return w.WriteDataDictionary(ctx, panel) },
		func() (string, error) { return w.WriteQualityReport(ctx, panel) },
	} {
		path, err := write()
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, path)
	}
	return outputs, nil
}
