package sld

// BindMap is the variable binding table of spec §4.6: a map from variable
// index to expression, performing weak-head normalization with path
// compression and journaled unification.
//
// Invariant: whenever a binding v -> e is installed, e is either a
// non-variable or a variable whose index is not itself bound at the
// moment of installation.
type BindMap struct {
	trail       *Trail
	pool        *Pool
	bindings    map[uint32]*Expr
	occursCheck bool
}

// NewBindMap creates an empty bind map. Writes (both fresh bindings and
// path-compression rewrites) are journaled on trail. pool is stored but
// not used by any BindMap method: Unify only ever compares existing
// interned subexpressions and never allocates. occursCheck gates the
// optional cycle guard of spec §9; pass false to preserve the source's
// original behavior.
func NewBindMap(trail *Trail, pool *Pool, occursCheck bool) *BindMap {
	return &BindMap{
		trail:       trail,
		pool:        pool,
		bindings:    make(map[uint32]*Expr),
		occursCheck: occursCheck,
	}
}

// WHNF reduces e to weak-head normal form: if e is not a variable it is
// returned unchanged; if it is an unbound variable it is returned as
// itself; if it is a bound variable its binding is recursively reduced,
// installed back as the variable's binding (path compression — itself a
// journaled write, per spec §9), and returned.
func (b *BindMap) WHNF(e *Expr) *Expr {
	if e.kind != KindVar {
		return e
	}
	bound, ok := b.bindings[e.v]
	if !ok {
		return e
	}
	reduced := b.WHNF(bound)
	if reduced != bound {
		b.setBinding(e.v, reduced)
	}
	return reduced
}

// setBinding installs v -> e and journals the prior state so rollback
// restores it exactly (unbinding the variable if it was previously
// unbound).
func (b *BindMap) setBinding(v uint32, e *Expr) {
	prev, had := b.bindings[v]
	b.bindings[v] = e
	b.trail.Log(func() {
		if had {
			b.bindings[v] = prev
		} else {
			delete(b.bindings, v)
		}
	})
}

// Unify attempts to unify a and b, installing bindings as it goes. It
// returns true on success and false on failure. On failure, any bindings
// installed during the attempt are NOT rolled back by Unify itself — per
// spec §4.6 that responsibility belongs to the caller, which must have
// opened a trail frame and will pop it to undo the partial attempt. This
// split is a load-bearing invariant, not an oversight: Unify never calls
// Trail.Push/Pop.
func (b *BindMap) Unify(a, bEx *Expr) bool {
	a = b.WHNF(a)
	bEx = b.WHNF(bEx)

	if a == bEx {
		return true
	}

	if a.kind == KindVar {
		if b.occursCheck && b.occursIn(a.v, bEx) {
			return false
		}
		b.setBinding(a.v, b.WHNF(bEx))
		return true
	}
	if bEx.kind == KindVar {
		if b.occursCheck && b.occursIn(bEx.v, a) {
			return false
		}
		b.setBinding(bEx.v, b.WHNF(a))
		return true
	}

	if a.kind != bEx.kind {
		return false
	}

	switch a.kind {
	case KindAtom:
		return a.atom == bEx.atom
	case KindPair:
		return b.Unify(a.left, bEx.left) && b.Unify(a.right, bEx.right)
	default:
		return false
	}
}

// occursIn reports whether variable v appears anywhere inside e under the
// current bindings: each subexpression is reduced with WHNF first, so a
// cycle that would run through an already-bound variable is also found.
func (b *BindMap) occursIn(v uint32, e *Expr) bool {
	e = b.WHNF(e)
	switch e.kind {
	case KindVar:
		return e.v == v
	case KindPair:
		return b.occursIn(v, e.left) || b.occursIn(v, e.right)
	default:
		return false
	}
}
