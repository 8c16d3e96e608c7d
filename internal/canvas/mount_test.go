package canvas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/econum/cableviz/internal/canvas"
)

func TestMount_Exclusive(t *testing.T) {
	m := canvas.NewMount(canvas.NewRaster(4, 2, 0, 0))

	s, ok := m.Acquire()
	require.True(t, ok)
	require.NotNil(t, s)
	assert.True(t, m.Held())

	_, ok = m.Acquire()
	assert.False(t, ok, "second acquire while held")

	m.Release(s)
	assert.False(t, m.Held())

	_, ok = m.Acquire()
	assert.True(t, ok)
}

func TestMount_Unmounted(t *testing.T) {
	_, ok := canvas.NewMount(nil).Acquire()
	assert.False(t, ok)
}

func TestMount_Detach(t *testing.T) {
	m := canvas.NewMount(canvas.NewRaster(4, 2, 0, 0))
	_, ok := m.Acquire()
	require.True(t, ok)

	m.Detach()
	assert.False(t, m.Held())

	_, ok = m.Acquire()
	assert.False(t, ok)
}
