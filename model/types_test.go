package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeKey(t *testing.T) {
	tests := []struct {
		name string
		edge Edge
		want EdgeKey
	}{
		{"Forward", Edge{ID: 1, Start: 1, End: 2}, EdgeKey{1, 2}},
		{"Backward", Edge{ID: 2, Start: 2, End: 1}, EdgeKey{1, 2}},
		{"Loop", Edge{ID: 3, Start: 5, End: 5}, EdgeKey{5, 5}},
		{"Negative", Edge{ID: 4, Start: 3, End: -3}, EdgeKey{-3, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.edge.Key())
			assert.Equal(t, tt.want, tt.edge.Reversed().Key())
		})
	}
}

func TestFaceIsolation(t *testing.T) {
	src := []EdgeID{1, 2, 3}
	f := NewFace(7, src)

	src[0] = 99
	assert.Equal(t, EdgeID(1), f.EdgeAt(0), "NewFace must copy its input")

	out := f.EdgeIDs()
	out[1] = 99
	assert.Equal(t, EdgeID(2), f.EdgeAt(1), "EdgeIDs must return a copy")

	assert.Equal(t, 3, f.Len())
	assert.Equal(t, "F7[1 2 3]", f.String())
}

func TestFaceAll(t *testing.T) {
	f := NewFace(1, []EdgeID{4, 5, 6})

	var got []EdgeID
	for i, id := range f.All() {
		assert.Equal(t, f.EdgeAt(i), id)
		got = append(got, id)
	}
	assert.Equal(t, []EdgeID{4, 5, 6}, got)

	for range f.All() {
		break
	}
}

func TestVertexPoint(t *testing.T) {
	v := Vertex{ID: 4, X: 1, Y: 2, Z: 3}
	p := v.Point()
	assert.Equal(t, 4, p.ID)
	assert.Equal(t, 3.0, p.Z)
	assert.Equal(t, "V4(1, 2, 3)", v.String())
}
