// Package sld implements the resolution core of a Horn-clause logic engine:
// an interning expression pool, a reversible trail, a union-find-style
// variable binding map, and the goal/resolution machinery that drives
// SLD-style proof search. Choice of which goal to expand and which rule to
// try next is left to a pluggable Strategy; this package owns only the
// mechanism, not the search policy.
package sld

import "fmt"

// Kind distinguishes the three variants an Expr can hold. Expr is a closed
// sum type over {Atom, Var, Pair}: every case analysis over it must be
// exhaustive, so Kind is not meant to be extended.
type Kind uint8

const (
	// KindAtom marks an Expr holding a symbolic constant.
	KindAtom Kind = iota
	// KindVar marks an Expr holding a logic variable index.
	KindVar
	// KindPair marks an Expr holding a left/right child pair.
	KindPair
)

func (k Kind) String() string {
	switch k {
	case KindAtom:
		return "atom"
	case KindVar:
		return "var"
	case KindPair:
		return "pair"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Expr is an immutable, interned value: an atom, a logic variable, or a
// pair of two expressions. Two Exprs with the same Kind and the same
// structural content are always the same *Expr pointer once they have
// passed through a Pool — pointer equality implies structural equality.
//
// Expr is never constructed directly outside this package; callers obtain
// instances exclusively from a Pool's Atom/Var/Pair methods so that the
// hash-consing invariant holds.
type Expr struct {
	kind Kind

	atom string // valid when kind == KindAtom
	v    uint32 // valid when kind == KindVar

	left, right *Expr // valid when kind == KindPair
}

// Kind reports which variant e holds.
func (e *Expr) Kind() Kind { return e.kind }

// Atom returns the atom's string value. Panics if e is not a KindAtom.
func (e *Expr) Atom() string {
	if e.kind != KindAtom {
		panic(fmt.Sprintf("sld: Atom() called on %s expression", e.kind))
	}
	return e.atom
}

// VarIndex returns the variable's index. Panics if e is not a KindVar.
func (e *Expr) VarIndex() uint32 {
	if e.kind != KindVar {
		panic(fmt.Sprintf("sld: VarIndex() called on %s expression", e.kind))
	}
	return e.v
}

// Left returns the left child of a pair. Panics if e is not a KindPair.
func (e *Expr) Left() *Expr {
	if e.kind != KindPair {
		panic(fmt.Sprintf("sld: Left() called on %s expression", e.kind))
	}
	return e.left
}

// Right returns the right child of a pair. Panics if e is not a KindPair.
func (e *Expr) Right() *Expr {
	if e.kind != KindPair {
		panic(fmt.Sprintf("sld: Right() called on %s expression", e.kind))
	}
	return e.right
}

// String renders e for diagnostics. It does not dereference bindings —
// use Normalizer.Normalize for a bindings-aware rendering.
func (e *Expr) String() string {
	switch e.kind {
	case KindAtom:
		return e.atom
	case KindVar:
		return fmt.Sprintf("?%d", e.v)
	case KindPair:
		return fmt.Sprintf("(%s . %s)", e.left.String(), e.right.String())
	default:
		return "<invalid expr>"
	}
}

// exprKey is the structural identity used by the interning table. It is a
// plain comparable value so it can key a Go map directly, unlike Expr
// itself (which holds pointer fields that must already be interned for
// the key to be meaningful).
type exprKey struct {
	kind  Kind
	atom  string
	v     uint32
	left  *Expr
	right *Expr
}

// Pool is the expression pool described in spec §4.1: it hash-conses
// Atom/Var/Pair values so that structural equality reduces to pointer
// equality. Insertions are journaled on the Trail supplied at
// construction — rolling back past an insertion removes it from the pool,
// exactly undoing the interning.
type Pool struct {
	trail *Trail
	table map[exprKey]*Expr
}

// NewPool creates an expression pool whose insertions are journaled on t.
func NewPool(t *Trail) *Pool {
	return &Pool{
		trail: t,
		table: make(map[exprKey]*Expr),
	}
}

// Len returns the number of distinct interned expressions currently live
// in the pool (an introspection aid for tests and diagnostics; mirrors the
// teacher's PoolStats.CurrentSize).
func (p *Pool) Len() int { return len(p.table) }

func (p *Pool) intern(key exprKey, build func() *Expr) *Expr {
	if existing, ok := p.table[key]; ok {
		return existing
	}
	e := build()
	p.table[key] = e
	p.trail.Log(func() {
		delete(p.table, key)
	})
	return e
}

// Atom returns the interned expression for the atom value s, creating it
// on first use.
func (p *Pool) Atom(s string) *Expr {
	key := exprKey{kind: KindAtom, atom: s}
	return p.intern(key, func() *Expr {
		return &Expr{kind: KindAtom, atom: s}
	})
}

// Var returns the interned expression for variable index i, creating it on
// first use.
func (p *Pool) Var(i uint32) *Expr {
	key := exprKey{kind: KindVar, v: i}
	return p.intern(key, func() *Expr {
		return &Expr{kind: KindVar, v: i}
	})
}

// Pair returns the interned pair expression (l . r), creating it on first
// use. l and r must themselves already be interned (obtained from this or
// another Pool sharing the same Trail); Pair does not recursively intern
// its arguments.
func (p *Pool) Pair(l, r *Expr) *Expr {
	key := exprKey{kind: KindPair, left: l, right: r}
	return p.intern(key, func() *Expr {
		return &Expr{kind: KindPair, left: l, right: r}
	})
}
