package sld

// Renaming maps the variable indices of a source expression to the fresh
// indices a single Copier invocation mints for them. It is created empty
// by the caller and threaded through every Copy call that should share
// the same fresh variables — typically all of one rule's head and body,
// so that the rule's clause-local variables stay consistent across the
// copy while staying disjoint from every other copy of the same rule.
type Renaming map[uint32]uint32

// Copier produces structural copies of expressions with their variables
// renamed to fresh indices (spec §4.4). It is the operator that
// instantiates a rule's head and body before unification, giving every
// resolution attempt its own private variables.
type Copier struct {
	seq  *Sequencer
	pool *Pool
}

// NewCopier creates a copier that mints fresh variables from seq and
// rebuilds structure through pool.
func NewCopier(seq *Sequencer, pool *Pool) *Copier {
	return &Copier{seq: seq, pool: pool}
}

// Copy walks e and returns a structurally identical expression with every
// variable remapped through renaming, minting a fresh variable the first
// time a given source index is encountered and reusing it thereafter.
// Atoms are returned unchanged (they cost nothing to share). Pairs are
// rebuilt through the pool so sharing is preserved.
func (c *Copier) Copy(e *Expr, renaming Renaming) *Expr {
	switch e.kind {
	case KindAtom:
		return e
	case KindVar:
		fresh, ok := renaming[e.v]
		if !ok {
			fresh = c.seq.Next()
			renaming[e.v] = fresh
		}
		return c.pool.Var(fresh)
	case KindPair:
		left := c.Copy(e.left, renaming)
		right := c.Copy(e.right, renaming)
		return c.pool.Pair(left, right)
	default:
		panic("sld: Copy encountered an expression of unknown kind")
	}
}
