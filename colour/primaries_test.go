package colour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimariesYxy(t *testing.T) {
	red, green, blue := PrimariesYxy[SrgbPrimaries, D65, float64]()

	assert.Equal(t, 0.64, red.X)
	assert.Equal(t, 0.33, red.Y)
	assert.Equal(t, 0.30, green.X)
	assert.Equal(t, 0.06, blue.Y)

	assert.InDelta(t, 0.2126729, red.Luma, 1e-6)
	assert.InDelta(t, 0.7151522, green.Luma, 1e-6)
	assert.InDelta(t, 0.0721750, blue.Luma, 1e-6)
	assert.InDelta(t, 1.0, red.Luma+green.Luma+blue.Luma, 1e-12)
}

func TestPrimariesYxyFloat32(t *testing.T) {
	red, green, blue := PrimariesYxy[Bt2020Primaries, D65, float32]()
	assert.Equal(t, float32(0.708), red.X)
	assert.Equal(t, float32(0.797), green.Y)
	assert.InDelta(t, 1.0, float64(red.Luma+green.Luma+blue.Luma), 1e-6)
}

func TestYxyXyzRoundTrip(t *testing.T) {
	red, _, _ := PrimariesYxy[SrgbPrimaries, D65, float64]()
	xyz := red.IntoXyz()
	assert.InDelta(t, 0.4124564, xyz.X, 1e-6)
	assert.InDelta(t, 0.2126729, xyz.Y, 1e-6)

	back := xyz.IntoYxy()
	assert.InDelta(t, red.X, back.X, 1e-12)
	assert.InDelta(t, red.Y, back.Y, 1e-12)
	assert.InDelta(t, red.Luma, back.Luma, 1e-12)
}

func TestBlackYxy(t *testing.T) {
	black := Xyz[D65, float64]{}.IntoYxy()
	white := WhitePointYxy[D65, float64]()
	assert.Equal(t, white.X, black.X)
	assert.Equal(t, white.Y, black.Y)
	assert.Equal(t, 0.0, black.Luma)

	assert.Equal(t, Xyz[D65, float64]{}, Yxy[D65, float64]{X: 0.3, Y: 0, Luma: 1}.IntoXyz())
}

func TestGetPrimaries(t *testing.T) {
	p, err := GetPrimaries(PRI_P3)
	require.NoError(t, err)
	assert.Equal(t, DisplayP3Primaries{}, p)

	_, err = GetPrimaries(PRI_CUSTOM)
	assert.Error(t, err)
	assert.True(t, ValidatePrimaries(PRI_CUSTOM))
	assert.False(t, ValidatePrimaries(0))
}

func TestCustomPrimaries(t *testing.T) {
	p, err := NewCustomPrimaries(CIEXY{X: 0.64, Y: 0.33}, CIEXY{X: 0.3, Y: 0.6}, CIEXY{X: 0.15, Y: 0.06})
	require.NoError(t, err)
	assert.True(t, PrimariesOf(p).Matches(CM_PRI_SRGB))

	_, err = NewCustomPrimaries(CIEXY{X: 0.64, Y: 0.33}, CIEXY{X: 0.3, Y: 1.6}, CIEXY{X: 0.15, Y: 0.06})
	assert.Error(t, err)
}
