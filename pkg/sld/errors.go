package sld

import "github.com/pkg/errors"

// Invariant-violation errors (spec §7): requesting a nonexistent goal
// lineage or rule id. These are programmer errors, not logical failures,
// and are raised by panicking with one of these wrapped errors rather
// than returned, matching the "fatal, recovery not supported" posture
// spec §7 asks for. A caller embedding this package may recover and
// report the error — panic is Go's rendition of "abort with a
// diagnostic", not a request that the process actually die. The demo in
// cmd/example does not recover, so such a panic ends that process.
var (
	// ErrUnknownGoal reports that an operation was asked to act on a
	// GoalLineage not present in the goal store.
	ErrUnknownGoal = errors.New("sld: unknown goal lineage")

	// ErrUnknownRule reports that an operation was asked to act on a
	// rule index outside the database's bounds.
	ErrUnknownRule = errors.New("sld: unknown rule index")

	// ErrUnbalancedPop reports a Trail.Pop call with no matching Push.
	ErrUnbalancedPop = errors.New("sld: unbalanced trail pop")
)
