package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlapsTouchingEdge(t *testing.T) {
	a := Box{X1: 0, Y1: 0, X2: 10, Y2: 10}

	assert.True(t, a.Overlaps(Box{X1: 10, Y1: 10, X2: 12, Y2: 12}), "shared corner is a hit")
	assert.True(t, a.Overlaps(Box{X1: 10, Y1: 3, X2: 15, Y2: 4}), "shared edge is a hit")
	assert.False(t, a.Overlaps(Box{X1: 10.5, Y1: 3, X2: 15, Y2: 4}))
	assert.False(t, a.Overlaps(Box{X1: 2, Y1: 11, X2: 4, Y2: 12}))
}

func TestOverlapsIsSymmetric(t *testing.T) {
	a := Rect(5, 5, 4, 4)
	b := Rect(8, 1, 6, 5)
	assert.Equal(t, a.Overlaps(b), b.Overlaps(a))
	assert.True(t, a.Overlaps(b))

	inner := Rect(6, 6, 1, 1)
	assert.True(t, a.Overlaps(inner), "contained box overlaps")
	assert.True(t, inner.Overlaps(a))
}

func TestInset(t *testing.T) {
	b := Rect(50, 50, 20, 18).Inset(1)
	assert.Equal(t, Box{X1: 51, Y1: 51, X2: 69, Y2: 67}, b)

	bullet := Rect(55, 58, 5, 2)
	assert.True(t, b.Overlaps(bullet))
	assert.False(t, b.Overlaps(Rect(70, 58, 5, 2)), "inset removes the outer pixel")
}
