package sld

// GoalStore maps each currently-open goal lineage to the expression it
// must prove. A GoalLineage is present here iff it has not yet been
// resolved on the current search path (spec §3).
type GoalStore struct {
	trail *Trail
	m     map[*GoalLineage]*Expr
}

// NewGoalStore creates an empty goal store journaled on trail.
func NewGoalStore(trail *Trail) *GoalStore {
	return &GoalStore{trail: trail, m: make(map[*GoalLineage]*Expr)}
}

// Get returns the expression associated with gl and whether it is present.
func (s *GoalStore) Get(gl *GoalLineage) (*Expr, bool) {
	e, ok := s.m[gl]
	return e, ok
}

// Insert journals and records gl -> e.
func (s *GoalStore) Insert(gl *GoalLineage, e *Expr) {
	s.m[gl] = e
	s.trail.Log(func() {
		delete(s.m, gl)
	})
}

// Erase journals and removes gl, if present.
func (s *GoalStore) Erase(gl *GoalLineage) {
	prev, had := s.m[gl]
	if !had {
		return
	}
	delete(s.m, gl)
	s.trail.Log(func() {
		s.m[gl] = prev
	})
}

// Len returns the number of open goals.
func (s *GoalStore) Len() int { return len(s.m) }

// Lineages returns a snapshot slice of every currently open goal lineage.
// The order is unspecified — goal selection policy belongs to the
// driver's Strategy, not to this store (spec §4.12).
func (s *GoalStore) Lineages() []*GoalLineage {
	out := make([]*GoalLineage, 0, len(s.m))
	for gl := range s.m {
		out = append(out, gl)
	}
	return out
}

// CandidateStore is the GL -> {rule_id} multimap of spec §3/§4.8: the
// candidate rules enumerated for each open goal. Single candidates are
// never removed, even once eliminated or tried; Erase drops a goal's
// whole entry.
type CandidateStore struct {
	trail *Trail
	m     map[*GoalLineage][]int
}

// NewCandidateStore creates an empty candidate store journaled on trail.
func NewCandidateStore(trail *Trail) *CandidateStore {
	return &CandidateStore{trail: trail, m: make(map[*GoalLineage][]int)}
}

// Insert journals and appends ruleID to gl's candidate list.
func (s *CandidateStore) Insert(gl *GoalLineage, ruleID int) {
	s.m[gl] = append(s.m[gl], ruleID)
	trailIndex := len(s.m[gl]) - 1
	s.trail.Log(func() {
		cur := s.m[gl]
		s.m[gl] = cur[:trailIndex]
	})
}

// Erase journals and removes every candidate entry for gl.
func (s *CandidateStore) Erase(gl *GoalLineage) {
	prev, had := s.m[gl]
	if !had {
		return
	}
	delete(s.m, gl)
	s.trail.Log(func() {
		s.m[gl] = prev
	})
}

// For returns a snapshot of the remaining candidate rule ids for gl.
func (s *CandidateStore) For(gl *GoalLineage) []int {
	cur := s.m[gl]
	out := make([]int, len(cur))
	copy(out, cur)
	return out
}

// ResolutionStore is the set of committed resolutions along the current
// path (spec §3).
type ResolutionStore struct {
	trail *Trail
	m     map[*ResolutionLineage]struct{}
}

// NewResolutionStore creates an empty resolution store journaled on trail.
func NewResolutionStore(trail *Trail) *ResolutionStore {
	return &ResolutionStore{trail: trail, m: make(map[*ResolutionLineage]struct{})}
}

// Insert journals and adds rl to the set.
func (s *ResolutionStore) Insert(rl *ResolutionLineage) {
	s.m[rl] = struct{}{}
	s.trail.Log(func() {
		delete(s.m, rl)
	})
}

// Contains reports whether rl is a committed resolution on the current
// path.
func (s *ResolutionStore) Contains(rl *ResolutionLineage) bool {
	_, ok := s.m[rl]
	return ok
}

// Len returns the number of committed resolutions.
func (s *ResolutionStore) Len() int { return len(s.m) }
