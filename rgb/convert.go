package rgb

import (
	"math"
	"sync"

	"github.com/kpfaulkner/colour-go/colour"
	"github.com/kpfaulkner/colour-go/component"
	"github.com/kpfaulkner/colour-go/transfer"
	"github.com/kpfaulkner/colour-go/util"
)

// IntoLinear decodes c into the linear standard of the same space.
func IntoLinear[Sp RgbSpace, F transfer.TransferFn, T component.Float](c Rgb[Standard[Sp, F], T]) Rgb[Standard[Sp, transfer.Linear], T] {
	var fn F
	return Rgb[Standard[Sp, transfer.Linear], T]{
		Red:   transfer.Decode(fn, c.Red),
		Green: transfer.Decode(fn, c.Green),
		Blue:  transfer.Decode(fn, c.Blue),
	}
}

// FromLinear encodes linear c with transfer function F.
func FromLinear[F transfer.TransferFn, Sp RgbSpace, T component.Float](c Rgb[Standard[Sp, transfer.Linear], T]) Rgb[Standard[Sp, F], T] {
	var fn F
	return Rgb[Standard[Sp, F], T]{
		Red:   transfer.Encode(fn, c.Red),
		Green: transfer.Encode(fn, c.Green),
		Blue:  transfer.Encode(fn, c.Blue),
	}
}

// DecodeTo decodes c into linear light stored as U.
func DecodeTo[U component.Component, Sp RgbSpace, F transfer.TransferFn, T component.Float](c Rgb[Standard[Sp, F], T]) Rgb[Standard[Sp, transfer.Linear], U] {
	return IntoFormat[U](IntoLinear(c))
}

// EncodeTo encodes linear c with transfer function F and stores it as U.
func EncodeTo[U component.Component, F transfer.TransferFn, Sp RgbSpace, T component.Float](c Rgb[Standard[Sp, transfer.Linear], T]) Rgb[Standard[Sp, F], U] {
	return IntoFormat[U](FromLinear[F](c))
}

// IntoFormat changes the component type of c without touching its standard.
func IntoFormat[U component.Component, S RgbStandard, T component.Component](c Rgb[S, T]) Rgb[S, U] {
	return Rgb[S, U]{
		Red:   component.Convert[U](c.Red),
		Green: component.Convert[U](c.Green),
		Blue:  component.Convert[U](c.Blue),
	}
}

// FromFormat is IntoFormat with the source component type named first, for call sites that
// know what they hold rather than what they want.
func FromFormat[T component.Component, U component.Component, S RgbStandard](c Rgb[S, T]) Rgb[S, U] {
	return IntoFormat[U](c)
}

// Convert re-expresses c in standard D. The components are decoded to linear light, moved
// between the two spaces with a 3x3 matrix and encoded with D's transfer function.
func Convert[D RgbStandard, S RgbStandard, T component.Float](c Rgb[S, T]) Rgb[D, T] {
	var src S
	var dst D
	r, g, b := convertComponents(dst, src, c.Red, c.Green, c.Blue)
	return Rgb[D, T]{Red: r, Green: g, Blue: b}
}

// ConvertWith converts raw components between two run time standards.
func ConvertWith(dst RgbStandard, src RgbStandard, c [3]float64) [3]float64 {
	r, g, b := convertComponents(dst, src, c[0], c[1], c[2])
	return [3]float64{r, g, b}
}

func IntoLinearA[Sp RgbSpace, F transfer.TransferFn, T component.Float](c Rgba[Standard[Sp, F], T]) Rgba[Standard[Sp, transfer.Linear], T] {
	return Rgba[Standard[Sp, transfer.Linear], T]{Rgb: IntoLinear(c.Rgb), Alpha: c.Alpha}
}

func FromLinearA[F transfer.TransferFn, Sp RgbSpace, T component.Float](c Rgba[Standard[Sp, transfer.Linear], T]) Rgba[Standard[Sp, F], T] {
	return Rgba[Standard[Sp, F], T]{Rgb: FromLinear[F](c.Rgb), Alpha: c.Alpha}
}

// IntoFormatA changes the component type of c. Alpha is scaled like any other component.
func IntoFormatA[U component.Component, S RgbStandard, T component.Component](c Rgba[S, T]) Rgba[S, U] {
	return Rgba[S, U]{Rgb: IntoFormat[U](c.Rgb), Alpha: component.Convert[U](c.Alpha)}
}

func FromFormatA[T component.Component, U component.Component, S RgbStandard](c Rgba[S, T]) Rgba[S, U] {
	return IntoFormatA[U](c)
}

func ConvertA[D RgbStandard, S RgbStandard, T component.Float](c Rgba[S, T]) Rgba[D, T] {
	return Rgba[D, T]{Rgb: Convert[D](c.Rgb), Alpha: c.Alpha}
}

func convertComponents[T component.Float](dst RgbStandard, src RgbStandard, red T, green T, blue T) (T, T, T) {
	srcFn := src.TransferFn()
	red, green, blue = transfer.Decode(srcFn, red), transfer.Decode(srcFn, green), transfer.Decode(srcFn, blue)

	if m, ok := spaceMatrix(dst.Space(), src.Space()); ok {
		v := util.MatrixVectorMultiply(m, util.Vector3{float64(red), float64(green), float64(blue)})
		red, green, blue = T(v[0]), T(v[1]), T(v[2])
	}

	dstFn := dst.TransferFn()
	return transfer.Encode(dstFn, red), transfer.Encode(dstFn, green), transfer.Encode(dstFn, blue)
}

// spaceKey holds the chromaticities of a conversion: target red, green, blue and white, then
// source red, green, blue and white.
type spaceKey [8]colour.CIEXY

type spaceConversion struct {
	matrix   util.Matrix3
	identity bool
}

// matrices memoises the conversion matrix per pair of chromaticity sets, so identical spaces
// share one entry however their descriptors were built.
var matrices sync.Map

func chromaticities(sp RgbSpace) (colour.CIEXY, colour.CIEXY, colour.CIEXY, colour.CIEXY) {
	p := sp.Primaries()
	return p.Red(), p.Green(), p.Blue(), *colour.Chromaticity(sp.WhitePoint())
}

// spaceMatrix returns the linear RGB matrix from src into dst, and false when the two spaces
// are the same and no matrix needs to be applied.
func spaceMatrix(dst RgbSpace, src RgbSpace) (util.Matrix3, bool) {
	var key spaceKey
	key[0], key[1], key[2], key[3] = chromaticities(dst)
	key[4], key[5], key[6], key[7] = chromaticities(src)
	if cached, ok := matrices.Load(key); ok {
		conv := cached.(spaceConversion)
		return conv.matrix, !conv.identity
	}

	tr, tg, tb := key[0], key[1], key[2]
	cr, cg, cb := key[4], key[5], key[6]
	m := colour.MustGetConversionMatrix(
		*colour.NewCIEPrimaries(&tr, &tg, &tb), key[3],
		*colour.NewCIEPrimaries(&cr, &cg, &cb), key[7])
	conv := spaceConversion{matrix: m, identity: m == util.MatrixIdentity()}
	if !key.hasNaN() {
		matrices.Store(key, conv)
	}
	return conv.matrix, !conv.identity
}

// hasNaN reports whether the key would never compare equal to itself.
func (k spaceKey) hasNaN() bool {
	for _, xy := range k {
		if math.IsNaN(xy.X) || math.IsNaN(xy.Y) {
			return true
		}
	}
	return false
}
