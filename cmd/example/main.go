// Package main demonstrates the sld resolution core against a handful of
// small hand-built rule databases. Parsing a surface syntax into Rules is
// explicitly out of scope for the core (spec §1), so every demo program
// here is assembled directly through the driver's expression pool, the
// same way a real embedder would before a parser exists.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/gitrdm/sldresolve/internal/dfsstrategy"
	"github.com/gitrdm/sldresolve/pkg/sld"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var demo string
	var trace bool

	root := &cobra.Command{
		Use:   "example",
		Short: "Run demo rule databases against the sld resolution core.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), demo, trace)
		},
	}
	root.Flags().StringVar(&demo, "demo", "chained", "which demo program to run (identity|variable|chained|backtrack|deep-pair)")
	root.Flags().BoolVar(&trace, "trace", false, "log every resolution attempt at trace level")

	return root
}

func runDemo(ctx context.Context, name string, trace bool) error {
	level := hclog.Warn
	if trace {
		level = hclog.Trace
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "sld-example",
		Level: level,
	})

	sessionID := uuid.New()
	logger = logger.With("session_id", sessionID.String())
	logger.Info("starting query session", "demo", name)

	program, ok := programs[name]
	if !ok {
		return fmt.Errorf("unknown demo %q", name)
	}

	trail := sld.NewTrail()
	pool := sld.NewPool(trail)
	driver := sld.NewWithPool(trail, pool, program.build(pool), sld.WithLogger(logger))
	root := program.goal(driver.Pool())
	driver.Initialize(root)

	solved, err := driver.Solve(ctx, dfsstrategy.New())
	if err != nil {
		return fmt.Errorf("session %s: %w", sessionID, err)
	}
	if !solved {
		fmt.Printf("session %s: no proof found for %s\n", sessionID, name)
		return nil
	}

	answer := driver.SnapshotAnswer()
	fmt.Printf("session %s: %s => %s\n", sessionID, name, answer)
	return nil
}

// demoProgram bundles a rule database builder with a root-goal builder.
// Both receive the same *sld.Pool — the one NewWithPool hands to the
// driver — so rule heads/bodies and the root goal are built from a single
// shared pool instead of a throwaway one discarded after Database
// construction.
type demoProgram struct {
	build func(p *sld.Pool) sld.Database
	goal  func(p *sld.Pool) *sld.Expr
}

var programs = map[string]demoProgram{
	// S1: foo :- . | goal foo
	"identity": {
		build: func(p *sld.Pool) sld.Database {
			return sld.Database{{Head: p.Atom("foo")}}
		},
		goal: func(p *sld.Pool) *sld.Expr { return p.Atom("foo") },
	},
	// S2: p(a):-. p(b):-. | goal p(?X)
	"variable": {
		build: func(p *sld.Pool) sld.Database {
			return sld.Database{
				{Head: p.Pair(p.Atom("p"), p.Atom("a"))},
				{Head: p.Pair(p.Atom("p"), p.Atom("b"))},
			}
		},
		goal: func(p *sld.Pool) *sld.Expr { return p.Pair(p.Atom("p"), p.Var(0)) },
	},
	// S3: q(?Y):-r(?Y). r(c):-. | goal q(?Z)
	"chained": {
		build: func(p *sld.Pool) sld.Database {
			return sld.Database{
				{
					Head: p.Pair(p.Atom("q"), p.Var(0)),
					Body: []*sld.Expr{p.Pair(p.Atom("r"), p.Var(0))},
				},
				{Head: p.Pair(p.Atom("r"), p.Atom("c"))},
			}
		},
		goal: func(p *sld.Pool) *sld.Expr { return p.Pair(p.Atom("q"), p.Var(100)) },
	},
	// S4: s(a):-. s(b):-t. t:-. | goal s(b)
	"backtrack": {
		build: func(p *sld.Pool) sld.Database {
			return sld.Database{
				{Head: p.Pair(p.Atom("s"), p.Atom("a"))},
				{
					Head: p.Pair(p.Atom("s"), p.Atom("b")),
					Body: []*sld.Expr{p.Atom("t")},
				},
				{Head: p.Atom("t")},
			}
		},
		goal: func(p *sld.Pool) *sld.Expr { return p.Pair(p.Atom("s"), p.Atom("b")) },
	},
	// S6: pair(?X,?X):-. | goal pair(cons(a,b), cons(a,b))
	"deep-pair": {
		build: func(p *sld.Pool) sld.Database {
			return sld.Database{
				{Head: p.Pair(p.Pair(p.Atom("pair"), p.Var(0)), p.Var(0))},
			}
		},
		goal: func(p *sld.Pool) *sld.Expr {
			cons := p.Pair(p.Atom("a"), p.Atom("b"))
			return p.Pair(p.Pair(p.Atom("pair"), cons), cons)
		},
	},
}
