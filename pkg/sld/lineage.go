package sld

// GoalLineage uniquely identifies an open subgoal as "the index-th body
// expression of its parent resolution" (spec §3). The root goal has a nil
// Parent.
type GoalLineage struct {
	Parent *ResolutionLineage
	Index  int
}

// ResolutionLineage identifies "the choice of using rule Index to resolve
// goal Parent" (spec §3).
type ResolutionLineage struct {
	Parent *GoalLineage
	Index  int
}

// LineagePool interns GoalLineage and ResolutionLineage values so that
// pointer identity can be used as a map key, and tracks a pin flag per
// entry for the mark/trim memory-reclamation policy of spec §4.7.
//
// Interning here is not journaled on the Trail: lineage identity, unlike
// expression identity, is meant to survive a failed branch's rollback —
// a resolver that creates a ResolutionLineage, fails to unify, and
// backtracks should not be able to mint the "same" lineage again with a
// different identity on retry of the same (goal, rule) pair within one
// search. Reclamation instead goes through the explicit Pin/Trim
// lifecycle, matching spec §4.7's "ownership graphs" note: the pool
// follows parent pointers and can be marked in a single pass.
type LineagePool struct {
	goals       map[GoalLineage]*goalNode
	resolutions map[ResolutionLineage]*resolutionNode
}

type goalNode struct {
	key    GoalLineage
	pinned bool
}

type resolutionNode struct {
	key    ResolutionLineage
	pinned bool
}

// NewLineagePool creates an empty lineage pool.
func NewLineagePool() *LineagePool {
	return &LineagePool{
		goals:       make(map[GoalLineage]*goalNode),
		resolutions: make(map[ResolutionLineage]*resolutionNode),
	}
}

// Goal returns the interned GoalLineage for (parent, idx), creating it on
// first use.
func (p *LineagePool) Goal(parent *ResolutionLineage, idx int) *GoalLineage {
	key := GoalLineage{Parent: parent, Index: idx}
	if n, ok := p.goals[key]; ok {
		return &n.key
	}
	n := &goalNode{key: key}
	p.goals[key] = n
	return &n.key
}

// Resolution returns the interned ResolutionLineage for (parent, idx),
// creating it on first use.
func (p *LineagePool) Resolution(parent *GoalLineage, idx int) *ResolutionLineage {
	key := ResolutionLineage{Parent: parent, Index: idx}
	if n, ok := p.resolutions[key]; ok {
		return &n.key
	}
	n := &resolutionNode{key: key}
	p.resolutions[key] = n
	return &n.key
}

// PinGoal marks gl, and every ResolutionLineage/GoalLineage ancestor up to
// the root, as pinned. It short-circuits as soon as it reaches an
// already-pinned node.
func (p *LineagePool) PinGoal(gl *GoalLineage) {
	if gl == nil {
		return
	}
	n, ok := p.goals[*gl]
	if !ok || n.pinned {
		return
	}
	n.pinned = true
	p.PinResolution(gl.Parent)
}

// PinResolution marks rl, and every ancestor up to the root, as pinned.
func (p *LineagePool) PinResolution(rl *ResolutionLineage) {
	if rl == nil {
		return
	}
	n, ok := p.resolutions[*rl]
	if !ok || n.pinned {
		return
	}
	n.pinned = true
	p.PinGoal(rl.Parent)
}

// Trim removes every lineage entry whose pin flag is still false, then
// clears every remaining entry's pin flag so a subsequent query can reuse
// the pin/trim cycle. Callers must pin everything they intend to keep
// live (typically the current open-goal and committed-resolution
// frontier) before calling Trim, or those lineages are discarded.
func (p *LineagePool) Trim() {
	for k, n := range p.goals {
		if !n.pinned {
			delete(p.goals, k)
		}
	}
	for k, n := range p.resolutions {
		if !n.pinned {
			delete(p.resolutions, k)
		}
	}
	for _, n := range p.goals {
		n.pinned = false
	}
	for _, n := range p.resolutions {
		n.pinned = false
	}
}

// Len returns the number of interned goal and resolution lineages
// currently resident in the pool.
func (p *LineagePool) Len() int {
	return len(p.goals) + len(p.resolutions)
}
