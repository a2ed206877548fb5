package sld

// Strategy is the search-loop collaborator contract of spec §4.12. The
// core deliberately does not prescribe which open goal to expand next or
// which candidate rule to try — those are choices for an outer search
// strategy (iterative deepening, best-first, interactive), which spec §1
// names as an external collaborator, not part of the core.
//
// A Strategy is consulted by Driver.Solve between resolution attempts. It
// never mutates Driver state directly; it only reads (via the Driver's
// OpenGoals/Candidates/IsEliminated accessors) and returns a choice.
type Strategy interface {
	// SelectGoal picks which open goal to expand next from the given
	// snapshot of currently-open goal lineages. It returns ok == false
	// when the strategy has nothing left to try (distinct from the goal
	// list being empty, which Driver.Solve already treats as success).
	SelectGoal(d *Driver, open []*GoalLineage) (gl *GoalLineage, ok bool)

	// SelectCandidate picks which remaining candidate rule to try next
	// for gl, from the given snapshot of its candidate rule ids. It
	// returns ok == false when none of the candidates should be tried
	// (for example, because the strategy has already exhausted them).
	SelectCandidate(d *Driver, gl *GoalLineage, candidates []int) (ruleID int, ok bool)
}
