package sld

import "github.com/pkg/errors"

// EliminationDetector implements the cheap prefilter of spec §4.10: a
// rule whose head cannot possibly unify with a goal, even without copying
// the rule (which only makes unification strictly easier, since fresh
// variables impose fewer constraints than variables shared with the
// goal), can be dropped before paying for a copy.
type EliminationDetector struct {
	trail *Trail
	bind  *BindMap
	goals *GoalStore
	db    Database
}

// NewEliminationDetector creates a detector over the given trail, bind
// map, goal store, and database.
func NewEliminationDetector(trail *Trail, bind *BindMap, goals *GoalStore, db Database) *EliminationDetector {
	return &EliminationDetector{trail: trail, bind: bind, goals: goals, db: db}
}

// IsEliminated reports whether rule i can be immediately ruled out for
// goal gl. It opens a trail frame, attempts to unify the goal's
// expression directly against db[i].Head without copying it, and always
// pops the frame afterward, discarding any tentative bindings. It returns
// true iff that attempt failed.
//
// False negatives are expected and harmless: the real test still runs
// inside the resolver under a freshly copied head (spec §4.10). This
// method must never be used as a substitute for that real test.
func (d *EliminationDetector) IsEliminated(gl *GoalLineage, i int) bool {
	goal, ok := d.goals.Get(gl)
	if !ok {
		panic(errors.Wrapf(ErrUnknownGoal, "IsEliminated: lineage %+v", gl))
	}
	if i < 0 || i >= len(d.db) {
		panic(errors.Wrapf(ErrUnknownRule, "IsEliminated: rule index %d", i))
	}

	d.trail.Push()
	unified := d.bind.Unify(goal, d.db[i].Head)
	d.trail.Pop()

	return !unified
}
