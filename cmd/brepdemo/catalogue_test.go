package main

import (
	"math"
	"testing"

	"github.com/hupe1980/brepgo/profile"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogue(t *testing.T) {
	cat, err := LoadCatalogue("")
	require.NoError(t, err)
	require.Len(t, cat.Parts, 2)

	bolt := cat.Parts[0]
	assert.Equal(t, "bolt", bolt.Name)
	require.Len(t, bolt.Features, 2)
	assert.Equal(t, 6, bolt.Features[0].Profile.Sides)
	assert.Equal(t, int32(101), bolt.Features[1].IDBase)
	assert.Equal(t, 0.2, cat.Parts[1].Features[0].Distance)
}

func TestParseCatalogueErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Empty", ``},
		{"Syntax", `parts: [`},
		{"UnnamedPart", "parts:\n  - features: []\n"},
		{"UnknownSweep", "parts:\n  - name: p\n    features:\n      - name: f\n        sweep: loft\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalogue([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestProfileSpecPoints(t *testing.T) {
	t.Run("ClockwiseRingIsReversed", func(t *testing.T) {
		pts, err := ProfileSpec{Kind: "ring", Ring: [][2]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}}}.Points()
		require.NoError(t, err)
		assert.Equal(t, orb.CCW, profile.Orientation(pts))
	})

	t.Run("UnknownKind", func(t *testing.T) {
		_, err := ProfileSpec{Kind: "spline"}.Points()
		assert.ErrorIs(t, err, profile.ErrInvalidProfile)
	})
}

func TestFeatureOptions(t *testing.T) {
	f := Feature{Angle: 180, Steps: 3, IDBase: 7}
	assert.Len(t, f.SweepOptions(), 2)
	assert.InDelta(t, math.Pi, f.AngleRadians(), 1e-12)
	assert.Empty(t, Feature{}.SweepOptions())
}
