package sld

import "github.com/pkg/errors"

// Undo is a nullary action that reverses one journaled mutation. Undos
// within a frame must be safe to run in strict LIFO order: each one sees
// the state produced by every later undo in the same frame having already
// run.
type Undo func()

// Trail is the reversible journal described in spec §4.2. It partitions a
// stack of Undo actions into nested frames; Pop closes the innermost frame
// by running its undos in LIFO order. Every mutation this package makes to
// the expression pool, the bind map, the variable sequencer, or the
// goal/candidate/resolution stores is logged here. The lineage pool is
// not journaled; it is reclaimed through Pin/Trim instead.
//
// Trail is not safe for concurrent use — per spec §5 the whole core is
// single-threaded and cooperatively sequenced by its driver.
type Trail struct {
	undo    []Undo
	markers []int
}

// NewTrail creates an empty trail with no open frames.
func NewTrail() *Trail {
	return &Trail{}
}

// Push opens a new frame. Every Log call made before the matching Pop
// belongs to this frame and is undone by it.
func (t *Trail) Push() {
	t.markers = append(t.markers, len(t.undo))
}

// Pop closes the innermost frame, running its undo actions in LIFO order
// and discarding the frame marker. Popping with no open frame is a
// programmer error (§7, invariant violation) and panics.
func (t *Trail) Pop() {
	if len(t.markers) == 0 {
		panic(errors.WithStack(ErrUnbalancedPop))
	}
	checkpoint := t.markers[len(t.markers)-1]
	t.markers = t.markers[:len(t.markers)-1]
	for len(t.undo) > checkpoint {
		last := len(t.undo) - 1
		action := t.undo[last]
		t.undo = t.undo[:last]
		action()
	}
}

// Log appends an undo action to the innermost open frame. Calling Log with
// no open frame logs into the implicit committed region at the bottom of
// the trail (a frame that is never popped); this mirrors the "outermost
// frame is the committed region" language of spec §3 and lets callers
// build pools/maps before the first Push.
func (t *Trail) Log(action Undo) {
	t.undo = append(t.undo, action)
}

// Depth returns the number of currently open frames.
func (t *Trail) Depth() int {
	return len(t.markers)
}
