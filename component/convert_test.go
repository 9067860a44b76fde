package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertFloatToInt(t *testing.T) {

	for _, tc := range []struct {
		name     string
		value    float32
		expected uint8
	}{
		{name: "zero", value: 0, expected: 0},
		{name: "full", value: 1, expected: 255},
		{name: "round up", value: 0.76, expected: 194},
		{name: "round down", value: 0.27, expected: 69},
		{name: "half", value: 0.5, expected: 128},
		{name: "over range saturates", value: 1.5, expected: 255},
		{name: "negative saturates", value: -0.5, expected: 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Convert[uint8](tc.value))
		})
	}
}

func TestConvertFloatToFloat(t *testing.T) {
	// no scaling and no clamping between floats.
	assert.Equal(t, 1.5, Convert[float64](float32(1.5)))
	assert.Equal(t, float32(-0.25), Convert[float32](-0.25))
	assert.InDelta(t, 0.76, Convert[float64](float32(0.76)), 1e-7)
}

func TestConvertIntToFloat(t *testing.T) {
	assert.Equal(t, 1.0, Convert[float64](uint8(255)))
	assert.Equal(t, float32(0), Convert[float32](uint16(0)))
	assert.InDelta(t, 0.5, Convert[float64](uint16(32768)), 1e-4)
	assert.Equal(t, 1.0, Convert[float64](uint32(4294967295)))
}

func TestConvertIntToInt(t *testing.T) {

	for _, tc := range []struct {
		name     string
		convert  func() uint32
		expected uint32
	}{
		{name: "u8 to u16", convert: func() uint32 { return uint32(Convert[uint16](uint8(0x12))) }, expected: 0x1212},
		{name: "u8 max to u16", convert: func() uint32 { return uint32(Convert[uint16](uint8(255))) }, expected: 65535},
		{name: "u16 to u8 rounds", convert: func() uint32 { return uint32(Convert[uint8](uint16(0x1280))) }, expected: 0x12},
		{name: "u16 to u8 rounds up", convert: func() uint32 { return uint32(Convert[uint8](uint16(0x1293))) }, expected: 0x13},
		{name: "u8 to u32", convert: func() uint32 { return Convert[uint32](uint8(1)) }, expected: 16843009},
		{name: "u8 to u8", convert: func() uint32 { return uint32(Convert[uint8](uint8(77))) }, expected: 77},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.convert())
		})
	}
}

func TestConvertRoundTripU8(t *testing.T) {
	for v := 0; v < 256; v++ {
		f32 := Convert[float32](uint8(v))
		f64 := Convert[float64](uint8(v))
		assert.Equal(t, uint8(v), Convert[uint8](f32))
		assert.Equal(t, uint8(v), Convert[uint8](f64))
		assert.Equal(t, uint8(v), Convert[uint8](Convert[uint16](uint8(v))))
	}
}

func TestConvertSlice(t *testing.T) {
	src := []uint8{0, 51, 255}
	dst := make([]float64, len(src))
	ConvertSlice(dst, src)
	assert.Equal(t, []float64{0, 0.2, 1}, dst)
}
