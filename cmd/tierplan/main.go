// SPDX-License-Identifier: MIT

// Command tierplan loads an HCL task plan, validates it and prints the
// tiers of tasks that may run in parallel.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/tierplan/hclplan"
	"github.com/katalvlaran/tierplan/internal/cli"
	"github.com/katalvlaran/tierplan/plan"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

// run holds the command logic so tests can drive it without exiting.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cli.NewLogger(stderr, cfg)
	ctx = cli.WithLogger(ctx, logger)

	g, err := buildPlan(ctx, cfg.PlanPath, stderr)
	if err != nil {
		return &cli.ExitError{Code: cli.ExitFailure, Message: err.Error()}
	}

	if cfg.Format == "json" {
		return writeJSON(stdout, g)
	}
	return writeText(stdout, g)
}

func buildPlan(ctx context.Context, path string, stderr io.Writer) (*plan.Graph[hclplan.Task], error) {
	log := cli.FromContext(ctx)
	log.Info("loading plan", "path", path)

	doc, err := hclplan.Load(path)
	if err != nil {
		var perr *hclplan.ParseError
		if errors.As(err, &perr) {
			_ = perr.WriteText(stderr)
			return nil, fmt.Errorf("load %s: %d problem(s) found", path, len(perr.Diags.Errs()))
		}
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	b, err := doc.Builder(plan.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	g, err := b.Build()
	if err != nil {
		return nil, err
	}
	log.Info("plan built", "tasks", g.NodeCount(), "tiers", g.TierCount(), "width", g.Width())

	return g, nil
}

func taskNames(tasks []hclplan.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Name
	}
	return out
}

func writeText(w io.Writer, g *plan.Graph[hclplan.Task]) error {
	for i, tier := range g.Tiers() {
		if _, err := fmt.Fprintf(w, "tier %d: %s\n", i, strings.Join(taskNames(tier), ", ")); err != nil {
			return err
		}
	}
	return nil
}

type report struct {
	Nodes int                                   `json:"nodes"`
	Tiers [][]string                            `json:"tiers"`
	Order []string                              `json:"order"`
	Attrs map[string]map[string]json.RawMessage `json:"attrs,omitempty"`
}

func writeJSON(w io.Writer, g *plan.Graph[hclplan.Task]) error {
	rep := report{Nodes: g.NodeCount(), Order: taskNames(g.Order())}
	for _, tier := range g.Tiers() {
		rep.Tiers = append(rep.Tiers, taskNames(tier))
	}
	for _, t := range g.Order() {
		if len(t.Attrs) == 0 {
			continue
		}
		attrs, err := t.AttrsJSON()
		if err != nil {
			return err
		}
		if rep.Attrs == nil {
			rep.Attrs = map[string]map[string]json.RawMessage{}
		}
		rep.Attrs[t.Name] = attrs
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
