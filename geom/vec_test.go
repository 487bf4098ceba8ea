package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"XcrossY", V(1, 0, 0), V(0, 1, 0), V(0, 0, 1)},
		{"YcrossX", V(0, 1, 0), V(1, 0, 0), V(0, 0, -1)},
		{"Parallel", V(1, 2, 3), V(2, 4, 6), V(0, 0, 0)},
		{"General", V(1, 2, 3), V(4, 5, 6), V(-3, 6, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Cross(tt.b))
		})
	}
}

func TestNormalize(t *testing.T) {
	n, ok := V(0, 3, 4).Normalize(Epsilon)
	assert.True(t, ok)
	assert.True(t, n.ApproxEqual(V(0, 0.6, 0.8), 1e-12))

	tiny := V(1e-8, 0, 0)
	n, ok = tiny.Normalize(Epsilon)
	assert.False(t, ok)
	assert.Equal(t, tiny, n, "degenerate vectors are returned unchanged")
}

func TestDotAndLength(t *testing.T) {
	assert.Equal(t, 32.0, V(1, 2, 3).Dot(V(4, 5, 6)))
	assert.Equal(t, 5.0, V(3, 4, 0).Length())
	assert.Equal(t, V(-1, 2, -3), V(1, -2, 3).Neg())
	assert.Equal(t, V(5, 7, 9), V(1, 2, 3).Add(V(4, 5, 6)))
	assert.Equal(t, V(2, 4, 6), V(1, 2, 3).Mul(2))
}

func TestPointConversions(t *testing.T) {
	p := PtID(3, 1, 2, 3)
	assert.Equal(t, V(1, 2, 3), p.Vec())
	assert.Equal(t, V(1, 1, 1), p.Sub(Pt(0, 1, 2)))

	xy := p.XY()
	assert.Equal(t, 1.0, xy.X())
	assert.Equal(t, 2.0, xy.Y())
	assert.Equal(t, "P3(1, 2, 3)", p.String())
}
