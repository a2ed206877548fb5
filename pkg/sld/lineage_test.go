package sld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineageInterningIdentity(t *testing.T) {
	pool := NewLineagePool()

	g1 := pool.Goal(nil, 0)
	g2 := pool.Goal(nil, 0)
	require.Same(t, g1, g2)

	r1 := pool.Resolution(g1, 2)
	r2 := pool.Resolution(g2, 2)
	require.Same(t, r1, r2)

	g3 := pool.Goal(r1, 0)
	g4 := pool.Goal(r2, 0)
	assert.Same(t, g3, g4)
}

func TestLineageTrimRemovesUnpinned(t *testing.T) {
	pool := NewLineagePool()

	root := pool.Goal(nil, 0)
	rl := pool.Resolution(root, 0)
	keep := pool.Goal(rl, 0)

	abandonedRL := pool.Resolution(root, 1)
	abandoned := pool.Goal(abandonedRL, 0)

	pool.PinGoal(keep)
	before := pool.Len()
	pool.Trim()
	after := pool.Len()

	assert.Less(t, after, before)

	// keep and its ancestors survive
	assert.Same(t, keep, pool.Goal(rl, 0))
	assert.Same(t, root, pool.Goal(nil, 0))

	// abandoned branch is gone: re-requesting it mints new identities
	newAbandonedRL := pool.Resolution(root, 1)
	newAbandoned := pool.Goal(newAbandonedRL, 0)
	assert.NotSame(t, abandonedRL, newAbandonedRL)
	assert.NotSame(t, abandoned, newAbandoned)
}

func TestLineagePinShortCircuitsAtAlreadyPinnedAncestor(t *testing.T) {
	pool := NewLineagePool()

	root := pool.Goal(nil, 0)
	rl := pool.Resolution(root, 0)
	child := pool.Goal(rl, 0)

	// Pin the parent chain first; pinning child afterward should not
	// panic or misbehave even though its ancestors are already pinned.
	pool.PinResolution(rl)
	assert.NotPanics(t, func() { pool.PinGoal(child) })

	pool.PinGoal(child)
	before := pool.Len()
	pool.Trim()
	assert.Equal(t, before, pool.Len(), "everything was pinned, nothing should be trimmed")
}

func TestLineageClosureAfterTrim(t *testing.T) {
	pool := NewLineagePool()

	root := pool.Goal(nil, 0)
	rl := pool.Resolution(root, 0)
	child := pool.Goal(rl, 1)

	pool.PinGoal(child)
	pool.Trim()

	// Every ancestor on the path from child to root must still be
	// resident after trim (spec §8.7).
	assert.Same(t, rl, pool.Resolution(root, 0))
	assert.Same(t, root, pool.Goal(nil, 0))
}
