// Package shell provides the restore/compile orchestrator adapter.
package shell

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/trim/internal/core/domain"
	"go.trai.ch/trim/internal/core/ports"
	"go.trai.ch/zerr"
)

// Orchestrator implements ports.Orchestrator by running the commands a
// unit declares for each step, in the unit's directory.
type Orchestrator struct {
	logger ports.Logger
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(logger ports.Logger) *Orchestrator {
	return &Orchestrator{logger: logger}
}

// Restore runs the unit's restore command.
func (o *Orchestrator) Restore(ctx context.Context, unit *domain.UnitFile) error {
	if err := o.run(ctx, unit, unit.Restore, "restore"); err != nil {
		return zerr.With(domain.ErrRestoreFailed, "cause", err.Error())
	}
	return nil
}

// Compile runs the unit's build command.
func (o *Orchestrator) Compile(ctx context.Context, unit *domain.UnitFile) error {
	if err := o.run(ctx, unit, unit.Compile, "build"); err != nil {
		return zerr.With(domain.ErrCompileFailed, "cause", err.Error())
	}
	return nil
}

func (o *Orchestrator) run(ctx context.Context, unit *domain.UnitFile, command []string, step string) error {
	if len(command) == 0 {
		return zerr.With(zerr.With(domain.ErrNoCommand, "step", step), "unit", unit.Path)
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...) //nolint:gosec // command comes from the unit descriptor
	cmd.Dir = unit.Dir()
	cmd.Env = os.Environ()

	// Command output goes to the unit's telemetry vertex when one is
	// recording, otherwise to the logger.
	if vtx := ports.VertexFromContext(ctx); vtx != nil {
		cmd.Stdout = vtx.Stdout()
		cmd.Stderr = vtx.Stderr()
	} else {
		cmd.Stdout = &logWriter{logger: o.logger, level: "info"}
		cmd.Stderr = &logWriter{logger: o.logger, level: "error"}
	}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode), "step", step)
	}

	return nil
}

type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (int, error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
