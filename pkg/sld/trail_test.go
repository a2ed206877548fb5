package sld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrailPushPopRestoresState(t *testing.T) {
	trail := NewTrail()
	x := 0

	trail.Push()
	trail.Log(func() { x = 0 })
	x = 1
	require.Equal(t, 1, trail.Depth())
	assert.Equal(t, 1, x)

	trail.Pop()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, trail.Depth())
}

func TestTrailUndoOrderIsLIFO(t *testing.T) {
	trail := NewTrail()
	var order []int

	trail.Push()
	trail.Log(func() { order = append(order, 1) })
	trail.Log(func() { order = append(order, 2) })
	trail.Log(func() { order = append(order, 3) })
	trail.Pop()

	assert.Equal(t, []int{3, 2, 1}, order)
}

func TestTrailNestedFramesBalance(t *testing.T) {
	trail := NewTrail()
	var log []string

	trail.Push()
	trail.Log(func() { log = append(log, "undo-outer") })

	trail.Push()
	trail.Log(func() { log = append(log, "undo-inner") })
	trail.Pop()
	assert.Equal(t, []string{"undo-inner"}, log)

	trail.Pop()
	assert.Equal(t, []string{"undo-inner", "undo-outer"}, log)
}

func TestTrailUnbalancedPopPanics(t *testing.T) {
	trail := NewTrail()
	assert.Panics(t, func() { trail.Pop() })
}

func TestTrailPopAfterOperationsNotInAFrameLeavesThemCommitted(t *testing.T) {
	// Operations logged before any Push belong to the implicit committed
	// region: there is no frame to pop them with.
	trail := NewTrail()
	x := 0
	trail.Log(func() { x = -1 })
	x = 1
	trail.Push()
	trail.Pop()
	assert.Equal(t, 1, x)
}
