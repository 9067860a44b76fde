// Package component defines the numeric channel types a colour can be stored in and converts
// between them.
//
// A component is either integer bounded (uint8, uint16, uint32 where 0 is no intensity and the
// type maximum is full intensity) or floating (float32, float64 where 1.0 is full intensity).
// Floating components may carry values outside 0..1 for out of gamut or HDR colours and are never
// clamped implicitly. Clamp is the only operation that limits a value to its natural range.
package component

import (
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/kpfaulkner/colour-go/util"
)

// Integer is the set of integer bounded component types.
type Integer interface {
	~uint8 | ~uint16 | ~uint32
}

// Float is the set of floating component types.
type Float interface {
	constraints.Float
}

// Component is any supported component type.
type Component interface {
	Integer | Float
}

// IsFloat reports whether T is a floating component type.
func IsFloat[T Component]() bool {
	// integer division truncates 1/2 to zero, float division does not.
	var half T = 1
	half /= 2
	return half != 0
}

// MaxIntensity returns the value of T representing full intensity.
func MaxIntensity[T Component]() float64 {
	if IsFloat[T]() {
		return 1.0
	}
	return float64(maxInteger[T]())
}

// BitWidth returns the storage width of T in bits.
func BitWidth[T Component]() int {
	var v T
	return int(unsafe.Sizeof(v)) * 8
}

// Clamp limits v to the natural range of T. Integer components are always within range.
func Clamp[T Component](v T) T {
	if !IsFloat[T]() {
		return v
	}
	return util.Min(util.Max(v, 0), 1)
}

// IsWithinBounds reports whether v lies in the natural range of T. NaN is never within bounds.
func IsWithinBounds[T Component](v T) bool {
	if !IsFloat[T]() {
		return true
	}
	return v >= 0 && v <= 1
}

// maxInteger wraps zero around to the largest value of an unsigned type.
func maxInteger[T Component]() T {
	var m T
	m--
	return m
}
