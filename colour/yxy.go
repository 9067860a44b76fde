package colour

import (
	"github.com/kpfaulkner/colour-go/component"
)

// Xyz is a CIE 1931 XYZ tristimulus value relative to white point W.
type Xyz[W WhitePoint, T component.Float] struct {
	X T
	Y T
	Z T
}

// Yxy is a CIE xyY value relative to white point W: chromaticity X, Y and luminance Luma.
type Yxy[W WhitePoint, T component.Float] struct {
	X    T
	Y    T
	Luma T
}

// IntoXyz converts to XYZ. A zero y chromaticity has no defined XYZ and gives black.
func (c Yxy[W, T]) IntoXyz() Xyz[W, T] {
	if c.Y == 0 {
		return Xyz[W, T]{}
	}
	return Xyz[W, T]{
		X: c.X * c.Luma / c.Y,
		Y: c.Luma,
		Z: (1 - c.X - c.Y) * c.Luma / c.Y,
	}
}

// IntoYxy converts to xyY. Black takes the chromaticity of W.
func (c Xyz[W, T]) IntoYxy() Yxy[W, T] {
	sum := c.X + c.Y + c.Z
	if sum == 0 {
		white := WhitePointYxy[W, T]()
		white.Luma = 0
		return white
	}
	return Yxy[W, T]{X: c.X / sum, Y: c.Y / sum, Luma: c.Y}
}

// WhitePointXYZ resolves W to its tristimulus value at precision T.
func WhitePointXYZ[W WhitePoint, T component.Float]() Xyz[W, T] {
	var wp W
	x, y, z := wp.XYZ()
	return Xyz[W, T]{X: T(x), Y: T(y), Z: T(z)}
}

// WhitePointYxy resolves W to its chromaticity and unit luminance at precision T.
func WhitePointYxy[W WhitePoint, T component.Float]() Yxy[W, T] {
	var wp W
	xy := Chromaticity(wp)
	return Yxy[W, T]{X: T(xy.X), Y: T(xy.Y), Luma: 1}
}

// PrimariesYxy resolves P against white point W at precision T. The chromaticities are those of
// P and each luminance is the share of white the primary contributes, so the three sum to 1.
func PrimariesYxy[P Primaries, W WhitePoint, T component.Float]() (red Yxy[W, T], green Yxy[W, T], blue Yxy[W, T]) {
	var p P
	var wp W
	m, err := PrimariesToXYZ(PrimariesOf(p), Chromaticity(wp))
	if err != nil {
		panic("colour: invalid primaries: " + err.Error())
	}
	r, g, b := p.Red(), p.Green(), p.Blue()
	red = Yxy[W, T]{X: T(r.X), Y: T(r.Y), Luma: T(m[1][0])}
	green = Yxy[W, T]{X: T(g.X), Y: T(g.Y), Luma: T(m[1][1])}
	blue = Yxy[W, T]{X: T(b.X), Y: T(b.Y), Luma: T(m[1][2])}
	return red, green, blue
}
