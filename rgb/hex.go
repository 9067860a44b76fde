package rgb

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kpfaulkner/colour-go/component"
)

var ErrInvalidHex = errors.New("invalid hex colour")

// ParseHex reads a colour written as rrggbb or rgb, with or without a leading '#'.
func ParseHex[S RgbStandard](s string) (Rgb[S, uint8], error) {
	c, err := parseHexDigits(s, 3)
	if err != nil {
		return Rgb[S, uint8]{}, err
	}
	return New[S](c[0], c[1], c[2]), nil
}

// ParseHexA reads a colour written as rrggbbaa or rgba, with or without a leading '#'. Six or
// three digit forms are accepted and are opaque.
func ParseHexA[S RgbStandard](s string) (Rgba[S, uint8], error) {
	c, err := parseHexDigits(s, 4)
	if err != nil {
		return Rgba[S, uint8]{}, err
	}
	return NewRgba[S](c[0], c[1], c[2], c[3]), nil
}

func MustParseHex[S RgbStandard](s string) Rgb[S, uint8] {
	c, err := ParseHex[S](s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as #rrggbb after converting the components to 8 bit.
func (c Rgb[S, T]) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", component.Convert[uint8](c.Red), component.Convert[uint8](c.Green), component.Convert[uint8](c.Blue))
}

// Hex formats c as #rrggbbaa after converting the components to 8 bit.
func (c Rgba[S, T]) Hex() string {
	return c.Rgb.Hex() + fmt.Sprintf("%02x", component.Convert[uint8](c.Alpha))
}

func parseHexDigits(s string, maxChannels int) ([4]uint8, error) {
	c := [4]uint8{0, 0, 0, 0xff}
	digits := strings.TrimPrefix(s, "#")

	var width int
	switch len(digits) {
	case 3, 6:
		width = len(digits) / 3
	case 4, 8:
		if maxChannels < 4 {
			return c, fmt.Errorf("%w %q: alpha not accepted", ErrInvalidHex, s)
		}
		width = len(digits) / 4
	default:
		return c, fmt.Errorf("%w %q: unexpected length %d", ErrInvalidHex, s, len(digits))
	}

	for i := 0; i*width < len(digits); i++ {
		v, err := strconv.ParseUint(digits[i*width:(i+1)*width], 16, 8)
		if err != nil {
			return c, fmt.Errorf("%w %q: %w", ErrInvalidHex, s, err)
		}
		if width == 1 {
			// #abc is shorthand for #aabbcc
			v *= 0x11
		}
		c[i] = uint8(v)
	}
	return c, nil
}
