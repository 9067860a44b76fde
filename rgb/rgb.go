package rgb

import (
	"github.com/kpfaulkner/colour-go/component"
)

// Rgb is a colour in standard S with components of type T. Float components are nominally in
// [0, 1] and may go outside it; integer components use their full range.
type Rgb[S RgbStandard, T component.Component] struct {
	Red   T
	Green T
	Blue  T
}

// Rgba is an Rgb with a straight (not premultiplied) alpha channel.
type Rgba[S RgbStandard, T component.Component] struct {
	Rgb[S, T]
	Alpha T
}

type (
	SrgbColour[T component.Component]       = Rgb[Srgb, T]
	SrgbaColour[T component.Component]      = Rgba[Srgb, T]
	LinSrgbColour[T component.Component]    = Rgb[LinSrgb, T]
	LinSrgbaColour[T component.Component]   = Rgba[LinSrgb, T]
	GammaSrgbColour[T component.Component]  = Rgb[GammaSrgb, T]
	GammaSrgbaColour[T component.Component] = Rgba[GammaSrgb, T]
)

func New[S RgbStandard, T component.Component](red T, green T, blue T) Rgb[S, T] {
	return Rgb[S, T]{Red: red, Green: green, Blue: blue}
}

func NewRgba[S RgbStandard, T component.Component](red T, green T, blue T, alpha T) Rgba[S, T] {
	return Rgba[S, T]{Rgb: Rgb[S, T]{Red: red, Green: green, Blue: blue}, Alpha: alpha}
}

// FromComponents builds a colour from red, green and blue in that order.
func FromComponents[S RgbStandard, T component.Component](c [3]T) Rgb[S, T] {
	return Rgb[S, T]{Red: c[0], Green: c[1], Blue: c[2]}
}

// FromComponentsA builds a colour from red, green, blue and alpha in that order.
func FromComponentsA[S RgbStandard, T component.Component](c [4]T) Rgba[S, T] {
	return NewRgba[S](c[0], c[1], c[2], c[3])
}

// Standard returns the descriptor of the colour's standard.
func (c Rgb[S, T]) Standard() S {
	var s S
	return s
}

func (c Rgb[S, T]) Components() [3]T {
	return [3]T{c.Red, c.Green, c.Blue}
}

func (c Rgb[S, T]) WithAlpha(alpha T) Rgba[S, T] {
	return Rgba[S, T]{Rgb: c, Alpha: alpha}
}

// Clamp pins float components into [0, 1]. Integer colours are returned unchanged.
func (c Rgb[S, T]) Clamp() Rgb[S, T] {
	return Rgb[S, T]{
		Red:   component.Clamp(c.Red),
		Green: component.Clamp(c.Green),
		Blue:  component.Clamp(c.Blue),
	}
}

func (c Rgb[S, T]) IsWithinBounds() bool {
	return component.IsWithinBounds(c.Red) && component.IsWithinBounds(c.Green) && component.IsWithinBounds(c.Blue)
}

// RGBA implements image/color.Color. Components are clamped to the nominal range here since
// the 16 bit result cannot hold anything else.
func (c Rgb[S, T]) RGBA() (r uint32, g uint32, b uint32, a uint32) {
	return to16(c.Red), to16(c.Green), to16(c.Blue), 0xffff
}

func (c Rgba[S, T]) Components() [4]T {
	return [4]T{c.Red, c.Green, c.Blue, c.Alpha}
}

// Color drops the alpha channel.
func (c Rgba[S, T]) Color() Rgb[S, T] {
	return c.Rgb
}

// WithAlpha replaces the alpha channel, keeping red, green and blue.
func (c Rgba[S, T]) WithAlpha(alpha T) Rgba[S, T] {
	return Rgba[S, T]{Rgb: c.Rgb, Alpha: alpha}
}

// Clamp pins float components, alpha included, into [0, 1].
func (c Rgba[S, T]) Clamp() Rgba[S, T] {
	return Rgba[S, T]{Rgb: c.Rgb.Clamp(), Alpha: component.Clamp(c.Alpha)}
}

func (c Rgba[S, T]) IsWithinBounds() bool {
	return c.Rgb.IsWithinBounds() && component.IsWithinBounds(c.Alpha)
}

// RGBA implements image/color.Color with alpha premultiplied into the colour components.
func (c Rgba[S, T]) RGBA() (r uint32, g uint32, b uint32, a uint32) {
	a = to16(c.Alpha)
	r = to16(c.Red) * a / 0xffff
	g = to16(c.Green) * a / 0xffff
	b = to16(c.Blue) * a / 0xffff
	return r, g, b, a
}

func to16[T component.Component](v T) uint32 {
	return uint32(component.Convert[uint16](component.Clamp(v)))
}
