// Package rgb is the RGB colour model: colour values tagged at the type level with the standard
// (primaries, white point and transfer function) that gives their components meaning, and the
// conversions between standards and component formats.
//
// A standard is built from zero sized descriptors:
//
//	Space[P, W]        any primaries and white point pair
//	Standard[Sp, F]    any space and transfer function pair
//	Triple[P, W, F]    the same as Standard[Space[P, W], F]
//
// so adding a new standard needs no code beyond naming it.
package rgb

import (
	"github.com/kpfaulkner/colour-go/colour"
	"github.com/kpfaulkner/colour-go/component"
	"github.com/kpfaulkner/colour-go/transfer"
	"github.com/kpfaulkner/colour-go/util"
)

// RgbSpace is a gamut and reference white, without any encoding.
type RgbSpace interface {
	Primaries() colour.Primaries
	WhitePoint() colour.WhitePoint
}

// RgbStandard is everything needed to interpret raw RGB components as a real colour.
type RgbStandard interface {
	Space() RgbSpace
	TransferFn() transfer.TransferFn
}

// Space is the RGB space of primaries P and white point W.
type Space[P colour.Primaries, W colour.WhitePoint] struct{}

func (Space[P, W]) Primaries() colour.Primaries {
	var p P
	return p
}

func (Space[P, W]) WhitePoint() colour.WhitePoint {
	var w W
	return w
}

// Standard is the RGB space Sp with components encoded by F.
type Standard[Sp RgbSpace, F transfer.TransferFn] struct{}

func (Standard[Sp, F]) Space() RgbSpace {
	var sp Sp
	return sp
}

func (Standard[Sp, F]) TransferFn() transfer.TransferFn {
	var f F
	return f
}

// Triple names a standard directly by its primaries, white point and transfer function.
type Triple[P colour.Primaries, W colour.WhitePoint, F transfer.TransferFn] = Standard[Space[P, W], F]

type (
	SrgbSpace      = Space[colour.SrgbPrimaries, colour.D65]
	DisplayP3Space = Space[colour.DisplayP3Primaries, colour.D65]
	Bt2020Space    = Space[colour.Bt2020Primaries, colour.D65]
	AdobeRgbSpace  = Space[colour.AdobeRgbPrimaries, colour.D65]
)

type (
	// Srgb is non-linear sRGB.
	Srgb = Standard[SrgbSpace, transfer.Srgb]
	// LinSrgb is linear sRGB.
	LinSrgb = Standard[SrgbSpace, transfer.Linear]
	// GammaSrgb is sRGB encoded with a pure 2.2 gamma.
	GammaSrgb = Standard[SrgbSpace, transfer.Gamma[transfer.F2p2]]

	DisplayP3    = Standard[DisplayP3Space, transfer.Srgb]
	LinDisplayP3 = Standard[DisplayP3Space, transfer.Linear]
	Bt2020       = Standard[Bt2020Space, transfer.Bt709]
	LinBt2020    = Standard[Bt2020Space, transfer.Linear]
	AdobeRgb     = Standard[AdobeRgbSpace, transfer.Gamma[transfer.F2p2]]
)

// ResolvePrimaries returns the primaries of S against its own white point at precision T. The
// luminances are the share of white each primary contributes and sum to 1.
//
// The white point of S is only known at run time, so the results carry colour.WhitePoint rather
// than a concrete tag. Use ResolvePrimariesAt to keep the tag.
func ResolvePrimaries[S RgbStandard, T component.Float]() (red colour.Yxy[colour.WhitePoint, T], green colour.Yxy[colour.WhitePoint, T], blue colour.Yxy[colour.WhitePoint, T]) {
	var s S
	sp := s.Space()
	return resolvePrimaries[colour.WhitePoint, T](sp, colour.Chromaticity(sp.WhitePoint()))
}

// ResolveWhitePoint returns the white point of S as XYZ with Y = 1 at precision T.
func ResolveWhitePoint[S RgbStandard, T component.Float]() colour.Xyz[colour.WhitePoint, T] {
	var s S
	x, y, z := s.Space().WhitePoint().XYZ()
	return colour.Xyz[colour.WhitePoint, T]{X: T(x), Y: T(y), Z: T(z)}
}

// ResolvePrimariesAt returns the primaries of S seen under white point W, adapting them with
// the Bradford transform when W is not the white point of S.
func ResolvePrimariesAt[S RgbStandard, W colour.WhitePoint, T component.Float]() (red colour.Yxy[W, T], green colour.Yxy[W, T], blue colour.Yxy[W, T]) {
	var s S
	var w W
	return resolvePrimaries[W, T](s.Space(), colour.Chromaticity(w))
}

func resolvePrimaries[W colour.WhitePoint, T component.Float](sp RgbSpace, target *colour.CIEXY) (colour.Yxy[W, T], colour.Yxy[W, T], colour.Yxy[W, T]) {
	p := sp.Primaries()
	current := colour.Chromaticity(sp.WhitePoint())
	m, err := colour.PrimariesToXYZ(colour.PrimariesOf(p), current)
	if err != nil {
		panic("rgb: invalid primaries: " + err.Error())
	}
	if target.Matches(current) {
		r, g, b := p.Red(), p.Green(), p.Blue()
		return colour.Yxy[W, T]{X: T(r.X), Y: T(r.Y), Luma: T(m[1][0])},
			colour.Yxy[W, T]{X: T(g.X), Y: T(g.Y), Luma: T(m[1][1])},
			colour.Yxy[W, T]{X: T(b.X), Y: T(b.Y), Luma: T(m[1][2])}
	}

	adapt, err := colour.AdaptWhitePoint(target, current)
	if err != nil {
		panic("rgb: invalid white point: " + err.Error())
	}
	m = util.MatrixMatrixMultiply(adapt, m)
	primary := func(i int) colour.Yxy[W, T] {
		return colour.Xyz[W, T]{X: T(m[0][i]), Y: T(m[1][i]), Z: T(m[2][i])}.IntoYxy()
	}
	return primary(0), primary(1), primary(2)
}
