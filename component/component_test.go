package component

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFloat(t *testing.T) {
	assert.True(t, IsFloat[float32]())
	assert.True(t, IsFloat[float64]())
	assert.False(t, IsFloat[uint8]())
	assert.False(t, IsFloat[uint16]())
	assert.False(t, IsFloat[uint32]())
}

func TestMaxIntensity(t *testing.T) {
	assert.Equal(t, 255.0, MaxIntensity[uint8]())
	assert.Equal(t, 65535.0, MaxIntensity[uint16]())
	assert.Equal(t, 4294967295.0, MaxIntensity[uint32]())
	assert.Equal(t, 1.0, MaxIntensity[float32]())
	assert.Equal(t, 1.0, MaxIntensity[float64]())
}

func TestBitWidth(t *testing.T) {
	assert.Equal(t, 8, BitWidth[uint8]())
	assert.Equal(t, 16, BitWidth[uint16]())
	assert.Equal(t, 32, BitWidth[uint32]())
	assert.Equal(t, 32, BitWidth[float32]())
	assert.Equal(t, 64, BitWidth[float64]())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp[float32](1.5))
	assert.Equal(t, float32(0), Clamp[float32](-0.25))
	assert.Equal(t, 0.5, Clamp(0.5))
	assert.Equal(t, uint8(200), Clamp[uint8](200))
}

func TestIsWithinBounds(t *testing.T) {
	assert.True(t, IsWithinBounds(0.0))
	assert.True(t, IsWithinBounds(1.0))
	assert.False(t, IsWithinBounds(1.0001))
	assert.False(t, IsWithinBounds(-0.1))
	assert.False(t, IsWithinBounds(math.NaN()))
	assert.True(t, IsWithinBounds[uint16](65535))
}
