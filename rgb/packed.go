package rgb

import (
	"github.com/kpfaulkner/colour-go/component"
)

// Channels describes where each channel sits in a packed integer. Lanes are counted from the most
// significant end; an alpha lane of -1 means the layout has no alpha.
type Channels interface {
	Lanes() (r int, g int, b int, a int)
	Count() int
}

// Channels4 is a layout with red, green, blue and alpha lanes.
type Channels4 interface {
	Channels
	fourLanes()
}

// Channels3 is a layout with red, green and blue lanes only.
type Channels3 interface {
	Channels
	threeLanes()
}

// RgbaOrder packs as 0xRRGGBBAA.
type RgbaOrder struct{}

// ArgbOrder packs as 0xAARRGGBB.
type ArgbOrder struct{}

// BgraOrder packs as 0xBBGGRRAA.
type BgraOrder struct{}

// AbgrOrder packs as 0xAABBGGRR.
type AbgrOrder struct{}

// RgbOrder packs as 0x00RRGGBB.
type RgbOrder struct{}

// BgrOrder packs as 0x00BBGGRR.
type BgrOrder struct{}

func (RgbaOrder) Lanes() (int, int, int, int) { return 0, 1, 2, 3 }
func (ArgbOrder) Lanes() (int, int, int, int) { return 1, 2, 3, 0 }
func (BgraOrder) Lanes() (int, int, int, int) { return 2, 1, 0, 3 }
func (AbgrOrder) Lanes() (int, int, int, int) { return 3, 2, 1, 0 }
func (RgbOrder) Lanes() (int, int, int, int)  { return 0, 1, 2, -1 }
func (BgrOrder) Lanes() (int, int, int, int)  { return 2, 1, 0, -1 }

func (RgbaOrder) fourLanes() {}
func (ArgbOrder) fourLanes() {}
func (BgraOrder) fourLanes() {}
func (AbgrOrder) fourLanes() {}
func (RgbOrder) threeLanes() {}
func (BgrOrder) threeLanes() {}

func (RgbaOrder) Count() int { return 4 }
func (ArgbOrder) Count() int { return 4 }
func (BgraOrder) Count() int { return 4 }
func (AbgrOrder) Count() int { return 4 }
func (RgbOrder) Count() int  { return 3 }
func (BgrOrder) Count() int  { return 3 }

// Word is an integer wide enough to hold every lane of a packed colour.
type Word interface {
	~uint32 | ~uint64
}

// Packed is a colour stored as a single integer with channel layout C.
type Packed[C Channels, W Word] struct {
	Color W
}

func NewPacked[C Channels, W Word](v W) Packed[C, W] {
	return Packed[C, W]{Color: v}
}

func (p Packed[C, W]) Uint() W {
	return p.Color
}

// Pack places the 8 bit channels of c into a 32 bit word.
func Pack[C Channels4, S RgbStandard](c Rgba[S, uint8]) Packed[C, uint32] {
	return Packed[C, uint32]{Color: packLanes[C, uint32](c.Red, c.Green, c.Blue, c.Alpha)}
}

// PackOpaque places the 8 bit channels of c into a 32 bit word with an opaque alpha lane.
func PackOpaque[C Channels4, S RgbStandard](c Rgb[S, uint8]) Packed[C, uint32] {
	return Packed[C, uint32]{Color: packLanes[C, uint32](c.Red, c.Green, c.Blue, 0xff)}
}

// PackRgb places the 8 bit channels of c into the low 24 bits of a 32 bit word.
func PackRgb[C Channels3, S RgbStandard](c Rgb[S, uint8]) Packed[C, uint32] {
	return Packed[C, uint32]{Color: packLanes[C, uint32](c.Red, c.Green, c.Blue, 0)}
}

// Pack64 places the 16 bit channels of c into a 64 bit word.
func Pack64[C Channels4, S RgbStandard](c Rgba[S, uint16]) Packed[C, uint64] {
	return Packed[C, uint64]{Color: packLanes[C, uint64](c.Red, c.Green, c.Blue, c.Alpha)}
}

// PackRgb64 places the 16 bit channels of c into the low 48 bits of a 64 bit word.
func PackRgb64[C Channels3, S RgbStandard](c Rgb[S, uint16]) Packed[C, uint64] {
	return Packed[C, uint64]{Color: packLanes[C, uint64](c.Red, c.Green, c.Blue, 0)}
}

func Unpack[S RgbStandard, C Channels4](p Packed[C, uint32]) Rgba[S, uint8] {
	r, g, b, a := unpackLanes[C, uint32, uint8](p.Color)
	return NewRgba[S](r, g, b, a)
}

func UnpackRgb[S RgbStandard, C Channels3](p Packed[C, uint32]) Rgb[S, uint8] {
	r, g, b, _ := unpackLanes[C, uint32, uint8](p.Color)
	return New[S](r, g, b)
}

func Unpack64[S RgbStandard, C Channels4](p Packed[C, uint64]) Rgba[S, uint16] {
	r, g, b, a := unpackLanes[C, uint64, uint16](p.Color)
	return NewRgba[S](r, g, b, a)
}

func UnpackRgb64[S RgbStandard, C Channels3](p Packed[C, uint64]) Rgb[S, uint16] {
	r, g, b, _ := unpackLanes[C, uint64, uint16](p.Color)
	return New[S](r, g, b)
}

func laneShift(lane int, count int, bits int) uint {
	return uint((count - 1 - lane) * bits)
}

func packLanes[C Channels, W Word, T uint8 | uint16](r T, g T, b T, a T) W {
	var order C
	lr, lg, lb, la := order.Lanes()
	n := order.Count()
	bits := component.BitWidth[T]()

	w := W(r)<<laneShift(lr, n, bits) | W(g)<<laneShift(lg, n, bits) | W(b)<<laneShift(lb, n, bits)
	if la >= 0 {
		w |= W(a) << laneShift(la, n, bits)
	}
	return w
}

func unpackLanes[C Channels, W Word, T uint8 | uint16](w W) (r T, g T, b T, a T) {
	var order C
	lr, lg, lb, la := order.Lanes()
	n := order.Count()
	bits := component.BitWidth[T]()
	mask := W(^T(0))

	r = T(w >> laneShift(lr, n, bits) & mask)
	g = T(w >> laneShift(lg, n, bits) & mask)
	b = T(w >> laneShift(lb, n, bits) & mask)
	if la < 0 {
		return r, g, b, 0
	}
	return r, g, b, T(w >> laneShift(la, n, bits) & mask)
}
