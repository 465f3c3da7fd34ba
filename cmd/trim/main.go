// Package main is the entry point for the trim dependency analyzer.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/trim/cmd/trim/commands"
	"go.trai.ch/trim/internal/app"
	"go.trai.ch/trim/internal/core/domain"
	_ "go.trai.ch/trim/internal/wiring"
)

// componentProvider builds the application components. Indirection exists
// so tests can substitute mocks for the graft-wired production graph.
type componentProvider func(ctx context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, graftProvider))
}

func graftProvider(ctx context.Context) (*app.Components, error) {
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	return components, err
}

func run(ctx context.Context, args []string, stderr io.Writer, provide componentProvider) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := provide(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrUnusedFound) {
			// Findings are already rendered; only the exit code changes.
			return 2
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
