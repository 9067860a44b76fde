package rgb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPack(t *testing.T) {
	c := NewRgba[Srgb, uint8](0x12, 0x34, 0x56, 0x78)

	for _, tc := range []struct {
		name     string
		packed   uint32
		expected uint32
	}{
		{name: "rgba", packed: Pack[RgbaOrder](c).Uint(), expected: 0x12345678},
		{name: "argb", packed: Pack[ArgbOrder](c).Uint(), expected: 0x78123456},
		{name: "bgra", packed: Pack[BgraOrder](c).Uint(), expected: 0x56341278},
		{name: "abgr", packed: Pack[AbgrOrder](c).Uint(), expected: 0x78563412},
		{name: "rgb", packed: PackRgb[RgbOrder](c.Color()).Uint(), expected: 0x00123456},
		{name: "bgr", packed: PackRgb[BgrOrder](c.Color()).Uint(), expected: 0x00563412},
		{name: "opaque rgba", packed: PackOpaque[RgbaOrder](c.Color()).Uint(), expected: 0x123456ff},
		{name: "opaque argb", packed: PackOpaque[ArgbOrder](c.Color()).Uint(), expected: 0xff123456},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.packed)
		})
	}
}

func TestPack64(t *testing.T) {
	c := NewRgba[LinSrgb, uint16](0x1234, 0x5678, 0x9abc, 0xdef0)

	assert.Equal(t, uint64(0x123456789abcdef0), Pack64[RgbaOrder](c).Uint())
	assert.Equal(t, uint64(0xdef0123456789abc), Pack64[ArgbOrder](c).Uint())
	assert.Equal(t, uint64(0x9abc56781234def0), Pack64[BgraOrder](c).Uint())
	assert.Equal(t, uint64(0xdef09abc56781234), Pack64[AbgrOrder](c).Uint())
	assert.Equal(t, uint64(0x0000123456789abc), PackRgb64[RgbOrder](c.Color()).Uint())
	assert.Equal(t, uint64(0x00009abc56781234), PackRgb64[BgrOrder](c.Color()).Uint())
}

func TestUnpack(t *testing.T) {
	assert.Equal(t, NewRgba[Srgb, uint8](0x12, 0x34, 0x56, 0x78), Unpack[Srgb](NewPacked[ArgbOrder](uint32(0x78123456))))
	assert.Equal(t, New[Srgb, uint8](0x12, 0x34, 0x56), UnpackRgb[Srgb](NewPacked[RgbOrder](uint32(0x00123456))))
	assert.Equal(t, New[Srgb, uint16](0x1234, 0x5678, 0x9abc), UnpackRgb64[Srgb](NewPacked[BgrOrder](uint64(0x00009abc56781234))))
	assert.Equal(t, NewRgba[Srgb, uint8](0x12, 0x34, 0x56, 0xff), Unpack[Srgb](PackOpaque[BgraOrder](New[Srgb, uint8](0x12, 0x34, 0x56))))
}

func TestPackRoundTrip(t *testing.T) {
	colours8 := []Rgba[Srgb, uint8]{
		NewRgba[Srgb, uint8](0, 0, 0, 0),
		NewRgba[Srgb, uint8](255, 255, 255, 255),
		NewRgba[Srgb, uint8](0x12, 0x34, 0x56, 0x78),
		NewRgba[Srgb, uint8](0xfe, 0x01, 0x80, 0x7f),
	}
	colours16 := []Rgba[Srgb, uint16]{
		NewRgba[Srgb, uint16](0, 0, 0, 0),
		NewRgba[Srgb, uint16](0xffff, 0xffff, 0xffff, 0xffff),
		NewRgba[Srgb, uint16](0x1234, 0x5678, 0x9abc, 0xdef0),
		NewRgba[Srgb, uint16](1, 2, 3, 4),
	}

	for _, c := range colours8 {
		assert.Equal(t, c, Unpack[Srgb](Pack[RgbaOrder](c)))
		assert.Equal(t, c, Unpack[Srgb](Pack[ArgbOrder](c)))
		assert.Equal(t, c, Unpack[Srgb](Pack[BgraOrder](c)))
		assert.Equal(t, c, Unpack[Srgb](Pack[AbgrOrder](c)))
		assert.Equal(t, c.Color(), UnpackRgb[Srgb](PackRgb[RgbOrder](c.Color())))
		assert.Equal(t, c.Color(), UnpackRgb[Srgb](PackRgb[BgrOrder](c.Color())))
	}
	for _, c := range colours16 {
		assert.Equal(t, c, Unpack64[Srgb](Pack64[RgbaOrder](c)))
		assert.Equal(t, c, Unpack64[Srgb](Pack64[ArgbOrder](c)))
		assert.Equal(t, c, Unpack64[Srgb](Pack64[BgraOrder](c)))
		assert.Equal(t, c, Unpack64[Srgb](Pack64[AbgrOrder](c)))
		assert.Equal(t, c.Color(), UnpackRgb64[Srgb](PackRgb64[RgbOrder](c.Color())))
		assert.Equal(t, c.Color(), UnpackRgb64[Srgb](PackRgb64[BgrOrder](c.Color())))
	}
}

// Layouts only accept colours with the same number of channels.
func TestLayoutLaneCounts(t *testing.T) {
	var _ Channels4 = RgbaOrder{}
	var _ Channels4 = ArgbOrder{}
	var _ Channels4 = BgraOrder{}
	var _ Channels4 = AbgrOrder{}
	var _ Channels3 = RgbOrder{}
	var _ Channels3 = BgrOrder{}

	_, is4 := any(RgbOrder{}).(Channels4)
	assert.False(t, is4)
	_, is4 = any(BgrOrder{}).(Channels4)
	assert.False(t, is4)
	_, is3 := any(RgbaOrder{}).(Channels3)
	assert.False(t, is3)
}
