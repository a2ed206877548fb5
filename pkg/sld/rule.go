package sld

// Rule is a single Horn-style clause: an interned head expression and an
// ordered body of interned subgoal expressions (spec §3). Rules are
// stable for the lifetime of a Database and are addressed by a zero-based
// index.
type Rule struct {
	Head *Expr
	Body []*Expr
}

// Database is the read-only, linearly-enumerated rule store the core
// reads against (spec §4.9, §6). Per spec §1, indexing beyond linear
// enumeration is explicitly out of scope.
type Database []Rule

// Len returns the number of rules in the database.
func (d Database) Len() int { return len(d) }
