package sld

// GoalAdder implements the operator of spec §4.9: inserting a new open
// goal and enumerating every rule in the database as a candidate for it.
// Filtering happens later, via the head-elimination detector — this
// operator's only job is maximal candidate enumeration.
type GoalAdder struct {
	goals      *GoalStore
	candidates *CandidateStore
	db         Database
}

// NewGoalAdder creates a goal adder that writes into goals/candidates and
// enumerates candidates from db.
func NewGoalAdder(goals *GoalStore, candidates *CandidateStore, db Database) *GoalAdder {
	return &GoalAdder{goals: goals, candidates: candidates, db: db}
}

// Add inserts (gl, e) into the goal store and, for every rule index in the
// database, inserts (gl, i) into the candidate store. Both writes are
// journaled.
func (a *GoalAdder) Add(gl *GoalLineage, e *Expr) {
	a.goals.Insert(gl, e)
	for i := range a.db {
		a.candidates.Insert(gl, i)
	}
}
