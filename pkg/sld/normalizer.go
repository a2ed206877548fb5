package sld

// Normalizer produces a fully dereferenced rendering of an expression for
// presenting answers (spec §4.5). It is not used inside unification —
// Unify and WHNF only ever need the weak-head form of their operands.
type Normalizer struct {
	pool *Pool
	bind *BindMap
}

// NewNormalizer creates a normalizer that dereferences through bind and
// rebuilds structure through pool.
func NewNormalizer(pool *Pool, bind *BindMap) *Normalizer {
	return &Normalizer{pool: pool, bind: bind}
}

// Normalize applies WHNF at every level of e: it reduces e itself, then,
// if the result is a pair, recursively normalizes both children. A
// variable that remains unbound after WHNF appears in the result as
// itself.
func (n *Normalizer) Normalize(e *Expr) *Expr {
	e = n.bind.WHNF(e)
	switch e.kind {
	case KindAtom, KindVar:
		return e
	case KindPair:
		left := n.Normalize(e.left)
		right := n.Normalize(e.right)
		return n.pool.Pair(left, right)
	default:
		panic("sld: Normalize encountered an expression of unknown kind")
	}
}
