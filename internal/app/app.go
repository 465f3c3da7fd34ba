// Package app implements the application layer for trim.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/trim/internal/core/domain"
	"go.trai.ch/trim/internal/core/ports"
	"go.trai.ch/trim/internal/engine/analyzer"
	"go.trai.ch/trim/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DefaultExtension is the unit descriptor suffix discovered when the caller
// does not override it.
const DefaultExtension = ".unit.yaml"

// App represents the main application logic.
type App struct {
	finder       ports.UnitFinder
	units        ports.UnitLoader
	manifests    ports.ManifestLoader
	inspector    ports.Inspector
	orchestrator ports.Orchestrator
	logger       ports.Logger
	telemetry    ports.Telemetry
	out          io.Writer
}

// New creates a new App instance.
func New(
	finder ports.UnitFinder,
	units ports.UnitLoader,
	manifests ports.ManifestLoader,
	inspector ports.Inspector,
	orchestrator ports.Orchestrator,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		finder:       finder,
		units:        units,
		manifests:    manifests,
		inspector:    inspector,
		orchestrator: orchestrator,
		logger:       log,
		telemetry:    telemetry,
		out:          os.Stdout,
	}
}

// WithOutput redirects diagnostic output. Used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Build enables the restore/compile sequence for units whose artifact
	// or manifest is missing.
	Build bool
	// Jobs bounds concurrent unit resolution. Restore and compile steps of
	// unrelated units may not tolerate running side by side, so the
	// default is 1; the resolver's memoization stays correct at any value.
	Jobs int
	// Extension overrides the unit descriptor suffix.
	Extension string
}

// Run analyzes every unit below root and writes one line per unused
// declared dependency. It returns domain.ErrUnusedFound when at least one
// diagnostic was produced, so callers can map findings to a distinct exit
// code.
func (a *App) Run(ctx context.Context, root string, opts RunOptions) error {
	ext := opts.Extension
	if ext == "" {
		ext = DefaultExtension
	}

	paths, err := a.finder.FindUnits(root, ext)
	if err != nil {
		return zerr.Wrap(err, "failed to enumerate unit files")
	}
	if len(paths) == 0 {
		a.logger.Warn(fmt.Sprintf("no %q files found under %s", ext, root))
		return nil
	}

	res := resolver.New(resolver.Config{
		Units:        a.units,
		Manifests:    a.manifests,
		Inspector:    a.inspector,
		Orchestrator: a.orchestrator,
		Logger:       a.logger,
		Telemetry:    a.telemetry,
		BuildMissing: opts.Build,
	})
	defer func() { _ = a.telemetry.Close() }()

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}

	units := make([]*domain.Unit, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			// Failures are logged by the resolver and leave a nil slot.
			unit, _ := res.Resolve(gctx, path)
			units[i] = unit
			return nil
		})
	}
	_ = g.Wait()

	var diags []domain.Diagnostic
	analyzed, skipped := 0, 0
	for _, unit := range units {
		if unit == nil {
			skipped++
			continue
		}
		analyzed++
		diags = append(diags, analyzer.Analyze(unit)...)
	}

	if err := renderDiagnostics(a.out, root, diags); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("%d units analyzed, %d skipped, %d unused references", analyzed, skipped, len(diags)))

	if len(diags) > 0 {
		return domain.ErrUnusedFound
	}
	return nil
}
