package sld

import (
	"context"
)

// Driver wires together every operator and store described in spec §3-4
// into the programmatic boundary of spec §6: expression constructors, a
// read-only rule database, the goal/candidate/resolution stores, and the
// lineage lifecycle. It owns every pool it builds — per spec §5 these are
// single-owner, single-threaded structures; a Driver made with
// NewWithPool shares its trail and expression pool with the caller that
// built them.
//
// Driver itself never decides which goal to expand or which candidate to
// try; Solve delegates those choices to a Strategy (spec §4.12).
type Driver struct {
	opts options

	trail      *Trail
	pool       *Pool
	seq        *Sequencer
	bind       *BindMap
	normalizer *Normalizer
	copier     *Copier
	lineage    *LineagePool

	goals       *GoalStore
	candidates  *CandidateStore
	resolutions *ResolutionStore

	adder     *GoalAdder
	detector  *EliminationDetector
	resolver  *Resolver

	db   Database
	root *Expr
}

// New constructs a Driver over the given rule database, with a fresh trail
// and pool of its own.
func New(db Database, opts ...Option) *Driver {
	trail := NewTrail()
	pool := NewPool(trail)
	return NewWithPool(trail, pool, db, opts...)
}

// NewWithPool constructs a Driver over the given rule database, reusing an
// already-built trail and pool rather than minting fresh ones. This lets a
// caller build a Database's rule literals through the same Pool the Driver
// will use for its root goal and every subsequent resolution, instead of a
// throwaway pool whose expressions only compare equal to the driver's own
// by value rather than by pointer identity.
func NewWithPool(trail *Trail, pool *Pool, db Database, opts ...Option) *Driver {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	seq := NewSequencer(trail)
	bind := NewBindMap(trail, pool, o.occursCheck)
	normalizer := NewNormalizer(pool, bind)
	copier := NewCopier(seq, pool)
	lineage := NewLineagePool()

	goals := NewGoalStore(trail)
	candidates := NewCandidateStore(trail)
	resolutions := NewResolutionStore(trail)

	adder := NewGoalAdder(goals, candidates, db)
	detector := NewEliminationDetector(trail, bind, goals, db)
	resolver := NewResolver(resolutions, goals, candidates, db, copier, bind, lineage, adder)

	return &Driver{
		opts:        o,
		trail:       trail,
		pool:        pool,
		seq:         seq,
		bind:        bind,
		normalizer:  normalizer,
		copier:      copier,
		lineage:     lineage,
		goals:       goals,
		candidates:  candidates,
		resolutions: resolutions,
		adder:       adder,
		detector:    detector,
		resolver:    resolver,
		db:          db,
	}
}

// Pool returns the driver's expression pool, used to build the root goal
// expression passed to Initialize.
func (d *Driver) Pool() *Pool { return d.pool }

// Trail returns the driver's trail, so a caller driving its own search
// loop (rather than using Solve) can Push/Pop frames directly, per the
// Driver API of spec §6.
func (d *Driver) Trail() *Trail { return d.trail }

// Initialize installs root as the top-level goal and returns its lineage.
// The root goal's lineage has a nil resolution parent, matching spec §3's
// "root -> GL -> RL -> GL -> ..." chain.
func (d *Driver) Initialize(root *Expr) *GoalLineage {
	d.root = root
	gl := d.lineage.Goal(nil, 0)
	d.adder.Add(gl, root)
	return gl
}

// OpenGoals returns a snapshot of every currently-open goal lineage.
func (d *Driver) OpenGoals() []*GoalLineage {
	return d.goals.Lineages()
}

// Candidates returns a snapshot of the remaining candidate rule ids for
// gl.
func (d *Driver) Candidates(gl *GoalLineage) []int {
	return d.candidates.For(gl)
}

// IsEliminated reports whether rule i can be immediately ruled out for
// gl, without the cost of a fresh copy (spec §4.10).
func (d *Driver) IsEliminated(gl *GoalLineage, i int) bool {
	return d.detector.IsEliminated(gl, i)
}

// Resolve attempts one resolution step of gl against rule i (spec §4.11).
// The caller must have opened a trail frame before calling Resolve and is
// responsible for popping it if Resolve returns false.
func (d *Driver) Resolve(gl *GoalLineage, i int) bool {
	d.opts.logger.Trace("resolve", "goal", gl, "rule", i)
	ok := d.resolver.Resolve(gl, i)
	if !ok {
		d.opts.logger.Trace("resolve failed", "goal", gl, "rule", i)
	}
	return ok
}

// PinGoal marks gl and its ancestors pinned, protecting them from Trim.
func (d *Driver) PinGoal(gl *GoalLineage) { d.lineage.PinGoal(gl) }

// PinResolution marks rl and its ancestors pinned, protecting them from
// Trim.
func (d *Driver) PinResolution(rl *ResolutionLineage) { d.lineage.PinResolution(rl) }

// Trim discards every unpinned lineage entry.
func (d *Driver) Trim() { d.lineage.Trim() }

// SnapshotAnswer returns normalize(root) under the current bindings.
func (d *Driver) SnapshotAnswer() *Expr {
	return d.normalizer.Normalize(d.root)
}

// Normalizer exposes the driver's normalizer for callers that want to
// render an expression other than the root under current bindings (for
// example, a child goal's expression for tracing).
func (d *Driver) Normalizer() *Normalizer { return d.normalizer }

// Solve runs a default search loop: repeatedly ask strategy which open
// goal to expand and which candidate rule to try, opening a trail frame
// around each attempt and popping it on failure, until every goal store
// entry is resolved (success) or the strategy has nothing left to try
// anywhere on the path (failure).
//
// ctx is checked between resolution attempts only — per spec §5, Resolve
// itself is the atomic unit and is never interrupted mid-call.
func (d *Driver) Solve(ctx context.Context, strategy Strategy) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	open := d.OpenGoals()
	if len(open) == 0 {
		return true, nil
	}

	gl, ok := strategy.SelectGoal(d, open)
	if !ok {
		return false, nil
	}

	remaining := d.Candidates(gl)
	for {
		ruleID, ok := strategy.SelectCandidate(d, gl, remaining)
		if !ok {
			return false, nil
		}
		remaining = removeInt(remaining, ruleID)

		if d.IsEliminated(gl, ruleID) {
			continue
		}

		if err := ctx.Err(); err != nil {
			return false, err
		}

		d.trail.Push()
		if d.Resolve(gl, ruleID) {
			solved, err := d.Solve(ctx, strategy)
			if err != nil {
				d.trail.Pop()
				return false, err
			}
			if solved {
				return true, nil
			}
		}
		d.trail.Pop()
	}
}

func removeInt(xs []int, v int) []int {
	out := xs[:0]
	for _, x := range xs {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
