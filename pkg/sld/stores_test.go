package sld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalStoreInsertEraseRollback(t *testing.T) {
	trail := NewTrail()
	pool := NewPool(trail)
	goals := NewGoalStore(trail)
	lp := NewLineagePool()
	gl := lp.Goal(nil, 0)

	trail.Push()
	goals.Insert(gl, pool.Atom("foo"))
	_, ok := goals.Get(gl)
	require.True(t, ok)
	trail.Pop()

	_, ok = goals.Get(gl)
	assert.False(t, ok, "rollback must remove the inserted goal")
}

func TestGoalStoreEraseRollback(t *testing.T) {
	trail := NewTrail()
	pool := NewPool(trail)
	goals := NewGoalStore(trail)
	lp := NewLineagePool()
	gl := lp.Goal(nil, 0)

	goals.Insert(gl, pool.Atom("foo"))

	trail.Push()
	goals.Erase(gl)
	_, ok := goals.Get(gl)
	require.False(t, ok)
	trail.Pop()

	e, ok := goals.Get(gl)
	require.True(t, ok, "rollback must restore the erased goal")
	assert.Equal(t, "foo", e.Atom())
}

func TestCandidateStoreInsertRollback(t *testing.T) {
	trail := NewTrail()
	candidates := NewCandidateStore(trail)
	lp := NewLineagePool()
	gl := lp.Goal(nil, 0)

	candidates.Insert(gl, 0)

	trail.Push()
	candidates.Insert(gl, 1)
	candidates.Insert(gl, 2)
	assert.ElementsMatch(t, []int{0, 1, 2}, candidates.For(gl))
	trail.Pop()

	assert.Equal(t, []int{0}, candidates.For(gl))
}

func TestCandidateStoreEraseRollback(t *testing.T) {
	trail := NewTrail()
	candidates := NewCandidateStore(trail)
	lp := NewLineagePool()
	gl := lp.Goal(nil, 0)

	candidates.Insert(gl, 0)
	candidates.Insert(gl, 1)

	trail.Push()
	candidates.Erase(gl)
	assert.Empty(t, candidates.For(gl))
	trail.Pop()

	assert.ElementsMatch(t, []int{0, 1}, candidates.For(gl))
}

func TestResolutionStoreInsertRollback(t *testing.T) {
	trail := NewTrail()
	resolutions := NewResolutionStore(trail)
	lp := NewLineagePool()
	gl := lp.Goal(nil, 0)
	rl := lp.Resolution(gl, 0)

	trail.Push()
	resolutions.Insert(rl)
	require.True(t, resolutions.Contains(rl))
	trail.Pop()

	assert.False(t, resolutions.Contains(rl))
}
