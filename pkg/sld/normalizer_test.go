package sld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeUnboundVariableIsItself(t *testing.T) {
	trail := NewTrail()
	pool := NewPool(trail)
	bind := NewBindMap(trail, pool, false)
	norm := NewNormalizer(pool, bind)

	v := pool.Var(0)
	require.Same(t, v, norm.Normalize(v))
}

func TestNormalizeDereferencesChainedBindings(t *testing.T) {
	trail := NewTrail()
	pool := NewPool(trail)
	bind := NewBindMap(trail, pool, false)
	norm := NewNormalizer(pool, bind)

	trail.Push()
	require.True(t, bind.Unify(pool.Var(0), pool.Var(1)))
	require.True(t, bind.Unify(pool.Var(1), pool.Atom("c")))

	assert.Equal(t, "c", norm.Normalize(pool.Var(0)).Atom())
}

func TestNormalizeDescendsIntoPairs(t *testing.T) {
	trail := NewTrail()
	pool := NewPool(trail)
	bind := NewBindMap(trail, pool, false)
	norm := NewNormalizer(pool, bind)

	require.True(t, bind.Unify(pool.Var(0), pool.Atom("a")))
	require.True(t, bind.Unify(pool.Var(1), pool.Atom("b")))

	pair := pool.Pair(pool.Var(0), pool.Var(1))
	normalized := norm.Normalize(pair)

	assert.Equal(t, "a", normalized.Left().Atom())
	assert.Equal(t, "b", normalized.Right().Atom())
}
