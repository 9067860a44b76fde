// Package transfer holds the transfer functions that map between linear light and the encoded
// values stored in non-linear RGB.
//
// Every function is total: any float, including values below 0 or above 1 from out of gamut or
// HDR colours, gives a numeric result. Nothing is clamped.
package transfer

import (
	"github.com/kpfaulkner/colour-go/component"
)

// TransferFn pairs an encode (linear to non-linear) and decode (non-linear to linear) curve.
// Decode(Encode(x)) == x to floating precision.
//
// The named curves are zero sized so they can be used as type arguments of an RGB standard.
type TransferFn interface {
	Encode(linear float64) float64
	Decode(encoded float64) float64
}

// Float32TransferFn is implemented by curves that can evaluate natively in float32.
type Float32TransferFn interface {
	Encode32(linear float32) float32
	Decode32(encoded float32) float32
}

// Encode applies fn's encoding curve at the precision of T.
func Encode[T component.Float](fn TransferFn, x T) T {
	if component.BitWidth[T]() == 32 {
		if fn32, ok := fn.(Float32TransferFn); ok {
			return T(fn32.Encode32(float32(x)))
		}
	}
	return T(fn.Encode(float64(x)))
}

// Decode applies fn's decoding curve at the precision of T.
func Decode[T component.Float](fn TransferFn, x T) T {
	if component.BitWidth[T]() == 32 {
		if fn32, ok := fn.(Float32TransferFn); ok {
			return T(fn32.Decode32(float32(x)))
		}
	}
	return T(fn.Decode(float64(x)))
}

// Linear is the identity transfer function of linear RGB.
type Linear struct{}

func (Linear) Encode(linear float64) float64    { return linear }
func (Linear) Decode(encoded float64) float64   { return encoded }
func (Linear) Encode32(linear float32) float32  { return linear }
func (Linear) Decode32(encoded float32) float32 { return encoded }

// IsLinear reports whether fn is the identity.
func IsLinear(fn TransferFn) bool {
	_, ok := fn.(Linear)
	return ok
}
