// Package dfsstrategy provides a minimal depth-first reference
// implementation of sld.Strategy: always expand the oldest remaining
// open goal, trying its candidate rules in ascending rule-id order. It
// exists to exercise and demonstrate the Driver without requiring every
// caller to write their own search loop — the same supporting role the
// teacher's internal/parallel package played for its examples, not a
// prescription for how every embedder of sld.Driver should search.
package dfsstrategy

import (
	"sort"

	"github.com/gitrdm/sldresolve/pkg/sld"
)

// Strategy is a depth-first, lowest-rule-id-first sld.Strategy.
type Strategy struct{}

// New creates a depth-first strategy.
func New() *Strategy {
	return &Strategy{}
}

// SelectGoal deterministically picks the open goal lineage that sorts
// first by (parent resolution depth, index), so that repeated runs over
// the same database and goal visit goals in a reproducible order — the
// ordering spec §5 requires of lineage/expression creation given a fixed
// sequence of driver decisions extends naturally to goal selection here.
func (s *Strategy) SelectGoal(d *sld.Driver, open []*sld.GoalLineage) (*sld.GoalLineage, bool) {
	if len(open) == 0 {
		return nil, false
	}
	best := open[0]
	for _, gl := range open[1:] {
		if lineageLess(gl, best) {
			best = gl
		}
	}
	return best, true
}

// SelectCandidate picks the smallest remaining rule id.
func (s *Strategy) SelectCandidate(d *sld.Driver, gl *sld.GoalLineage, candidates []int) (int, bool) {
	if len(candidates) == 0 {
		return 0, false
	}
	sorted := append([]int(nil), candidates...)
	sort.Ints(sorted)
	return sorted[0], true
}

// lineageLess orders two goal lineages by walking their resolution-parent
// chains to the root and comparing depth first, then index at each
// matching depth — giving a stable, reproducible total order without
// relying on pointer values.
func lineageLess(a, b *sld.GoalLineage) bool {
	aPath := goalPath(a)
	bPath := goalPath(b)
	if len(aPath) != len(bPath) {
		return len(aPath) < len(bPath)
	}
	for i := range aPath {
		if aPath[i] != bPath[i] {
			return aPath[i] < bPath[i]
		}
	}
	return false
}

// goalPath returns the sequence of indices from the root down to gl,
// interleaving resolution and goal indices.
func goalPath(gl *sld.GoalLineage) []int {
	var path []int
	for gl != nil {
		path = append([]int{gl.Index}, path...)
		rl := gl.Parent
		if rl == nil {
			break
		}
		path = append([]int{rl.Index}, path...)
		gl = rl.Parent
	}
	return path
}
