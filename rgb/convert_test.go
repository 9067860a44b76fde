package rgb

import (
	"math"
	"testing"

	"github.com/kpfaulkner/colour-go/colour"
	"github.com/kpfaulkner/colour-go/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cachedMatrices() int {
	n := 0
	matrices.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func TestSpaceMatrixSharedAcrossDescriptors(t *testing.T) {
	in := [3]float64{0.2, 0.5, 0.9}
	expected := Convert[Srgb](New[DisplayP3](0.2, 0.5, 0.9)).Components()

	before := cachedMatrices()
	for i := 0; i < 1000; i++ {
		p3, err := colour.NewCustomPrimaries(
			colour.CIEXY{X: 0.680, Y: 0.320},
			colour.CIEXY{X: 0.265, Y: 0.690},
			colour.CIEXY{X: 0.150, Y: 0.060})
		require.NoError(t, err)

		out := ConvertWith(Srgb{}, &Descriptor{Prim: p3, WP: colour.D65{}, Fn: transfer.Srgb{}}, in)
		for j := range expected {
			assert.InDelta(t, expected[j], out[j], 1e-12)
		}
	}
	assert.LessOrEqual(t, cachedMatrices()-before, 1)
}

func TestSpaceMatrix(t *testing.T) {
	for _, tc := range []struct {
		name     string
		dst      RgbSpace
		src      RgbSpace
		identity bool
	}{
		{name: "same space", dst: SrgbSpace{}, src: SrgbSpace{}, identity: true},
		{name: "hand written same space", dst: SrgbSpace{}, src: handSrgbSpace{}, identity: true},
		{name: "wider gamut", dst: SrgbSpace{}, src: DisplayP3Space{}},
		{name: "other white", dst: SrgbSpace{}, src: Space[colour.SrgbPrimaries, colour.D50]{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := spaceMatrix(tc.dst, tc.src)
			assert.Equal(t, !tc.identity, ok)

			before := cachedMatrices()
			again, ok := spaceMatrix(tc.dst, tc.src)
			assert.Equal(t, !tc.identity, ok)
			assert.Equal(t, before, cachedMatrices())
			if !tc.identity {
				assert.NotEqual(t, [3][3]float64{}, [3][3]float64(again))
			}
		})
	}
}

func TestSpaceKeyHasNaN(t *testing.T) {
	var key spaceKey
	assert.False(t, key.hasNaN())
	key[5].Y = math.NaN()
	assert.True(t, key.hasNaN())
}
