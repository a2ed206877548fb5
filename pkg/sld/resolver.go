package sld

import "github.com/pkg/errors"

// Resolver performs one resolution step of an open goal against a rule
// chosen by its caller: copying the rule's variables fresh, unifying its
// head with the goal, and spawning child goals from its body (spec §4.11).
type Resolver struct {
	resolutions *ResolutionStore
	goals       *GoalStore
	candidates  *CandidateStore
	db          Database
	copier      *Copier
	bind        *BindMap
	lineage     *LineagePool
	adder       *GoalAdder
}

// NewResolver wires together the stores and operators a Resolver needs.
func NewResolver(
	resolutions *ResolutionStore,
	goals *GoalStore,
	candidates *CandidateStore,
	db Database,
	copier *Copier,
	bind *BindMap,
	lineage *LineagePool,
	adder *GoalAdder,
) *Resolver {
	return &Resolver{
		resolutions: resolutions,
		goals:       goals,
		candidates:  candidates,
		db:          db,
		copier:      copier,
		bind:        bind,
		lineage:     lineage,
		adder:       adder,
	}
}

// Resolve attempts to resolve open goal gl against rule i. It erases gl
// from the goal and candidate stores, mints and records the resolution
// lineage, copies the rule's head and body through a fresh per-call
// renaming, unifies the copied head with the goal expression, and — on
// success — adds one child goal per body expression.
//
// Resolve returns false if unification fails. Per spec §4.11/§4.6, it
// does NOT roll back the bindings, goal-store erasure, or resolution
// record it already made on a failed attempt: the caller must have opened
// a trail frame before calling Resolve and is responsible for popping it
// to undo everything this call did.
func (r *Resolver) Resolve(gl *GoalLineage, i int) bool {
	goalExpr, ok := r.goals.Get(gl)
	if !ok {
		panic(errors.Wrapf(ErrUnknownGoal, "Resolve: lineage %+v", gl))
	}
	if i < 0 || i >= len(r.db) {
		panic(errors.Wrapf(ErrUnknownRule, "Resolve: rule index %d", i))
	}

	r.goals.Erase(gl)
	r.candidates.Erase(gl)

	rl := r.lineage.Resolution(gl, i)
	r.resolutions.Insert(rl)

	rule := r.db[i]
	renaming := make(Renaming)

	copiedHead := r.copier.Copy(rule.Head, renaming)
	copiedBody := make([]*Expr, len(rule.Body))
	for j, b := range rule.Body {
		copiedBody[j] = r.copier.Copy(b, renaming)
	}

	if !r.bind.Unify(copiedHead, goalExpr) {
		return false
	}

	for j, b := range copiedBody {
		childGL := r.lineage.Goal(rl, j)
		r.adder.Add(childGL, b)
	}

	return true
}
