// Package cli wires the engine, curriculum, and presentation together for
// the chainz binary.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	chainz "github.com/kje7713-dev/Grappling-Chainz"
	"github.com/kje7713-dev/Grappling-Chainz/internal/curriculum"
	"github.com/kje7713-dev/Grappling-Chainz/internal/presentation/tui"
	loader "github.com/kje7713-dev/Grappling-Chainz/pkg/adapters/curriculum"
	"github.com/kje7713-dev/Grappling-Chainz/pkg/graph"
)

// RunOptions carries the flags shared by the interactive commands.
type RunOptions struct {
	Start          string
	CurriculumPath string
	Headless       bool
	Debug          bool
}

// buildGraph loads the user-supplied curriculum file, or falls back to the
// bundled one.
func buildGraph(path string) (*graph.Graph, error) {
	if path == "" {
		return curriculum.Default()
	}
	doc, err := loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return loader.BuildGraph(doc), nil
}

// NewEngine builds an engine for the given options.
func NewEngine(opts RunOptions) (*chainz.Engine, error) {
	logger := createLogger(opts.Debug)
	g, err := buildGraph(opts.CurriculumPath)
	if err != nil {
		return nil, fmt.Errorf("load curriculum: %w", err)
	}
	logger.Debug("graph loaded", "positions", g.Len(), "transitions", len(g.Transitions()))
	return chainz.NewEngine(g, chainz.WithLogger(logger)), nil
}

// RunSession executes one interactive drill-through session.
func RunSession(opts RunOptions) error {
	engine, err := NewEngine(opts)
	if err != nil {
		return err
	}

	if !opts.Headless {
		tui.PrintBanner(chainz.Version)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := chainz.NewRunner(NewInterruptibleReader(os.Stdin, ctx.Done()), os.Stdout)
	r.Headless = opts.Headless
	if !opts.Headless && term.IsTerminal(int(os.Stdout.Fd())) {
		r.Renderer = tui.NewRenderer()
	}

	return r.Run(engine, opts.Start)
}

// ShowCatalog prints the position catalog of the selected curriculum.
func ShowCatalog(opts RunOptions) error {
	engine, err := NewEngine(opts)
	if err != nil {
		return err
	}

	content := tui.FormatCatalog(engine.Graph().Positions())
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if rendered, err := tui.NewRenderer()(content); err == nil {
			content = rendered
		}
	}
	fmt.Println(content)
	return nil
}
