package rgb

import (
	"fmt"
	"unsafe"

	"github.com/kpfaulkner/colour-go/component"
)

// FromRawSlice views a flat buffer of red, green, blue triplets as colours without copying.
// The length of buf must be a multiple of 3.
func FromRawSlice[S RgbStandard, T component.Component](buf []T) []Rgb[S, T] {
	if len(buf)%3 != 0 {
		panic(fmt.Sprintf("rgb: raw slice length %d is not a multiple of 3", len(buf)))
	}
	if len(buf) == 0 {
		return nil
	}
	return unsafe.Slice((*Rgb[S, T])(unsafe.Pointer(&buf[0])), len(buf)/3)
}

// IntoRawSlice views colours as a flat buffer of components without copying.
func IntoRawSlice[S RgbStandard, T component.Component](colours []Rgb[S, T]) []T {
	if len(colours) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&colours[0])), len(colours)*3)
}

// FromRawSliceA views a flat buffer of red, green, blue, alpha quadruplets as colours without
// copying. The length of buf must be a multiple of 4.
func FromRawSliceA[S RgbStandard, T component.Component](buf []T) []Rgba[S, T] {
	if len(buf)%4 != 0 {
		panic(fmt.Sprintf("rgb: raw slice length %d is not a multiple of 4", len(buf)))
	}
	if len(buf) == 0 {
		return nil
	}
	return unsafe.Slice((*Rgba[S, T])(unsafe.Pointer(&buf[0])), len(buf)/4)
}

func IntoRawSliceA[S RgbStandard, T component.Component](colours []Rgba[S, T]) []T {
	if len(colours) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&colours[0])), len(colours)*4)
}
