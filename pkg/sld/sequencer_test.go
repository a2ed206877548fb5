package sld

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequencerMonotone(t *testing.T) {
	trail := NewTrail()
	seq := NewSequencer(trail)

	assert.Equal(t, uint32(0), seq.Next())
	assert.Equal(t, uint32(1), seq.Next())
	assert.Equal(t, uint32(2), seq.Next())
}

func TestSequencerRollbackDecrements(t *testing.T) {
	trail := NewTrail()
	seq := NewSequencer(trail)

	seq.Next() // 0, committed

	trail.Push()
	seq.Next() // 1
	seq.Next() // 2
	trail.Pop()

	assert.Equal(t, uint32(1), seq.Next(), "after rollback, the next id should be reissued")
}

func TestSequencerReusesIdsAcrossRolledBackFrames(t *testing.T) {
	trail := NewTrail()
	seq := NewSequencer(trail)

	trail.Push()
	first := seq.Next()
	trail.Pop()

	trail.Push()
	second := seq.Next()
	trail.Pop()

	assert.Equal(t, first, second, "rollback makes ids reusable across independent frames")
}
