package transfer

import (
	"math"

	"github.com/chewxy/math32"
)

// sRGB curve constants from IEC 61966-2-1.
const (
	srgbDecodeThreshold = 0.04045
	srgbEncodeThreshold = 0.0031308
	srgbSlope           = 12.92
	srgbOffset          = 0.055
	srgbScale           = 1.055
	srgbExponent        = 2.4
)

// Srgb is the piecewise sRGB curve: a linear segment near zero and a 2.4 power segment elsewhere,
// which keeps the gradient finite at zero. Negative input follows the linear segment.
type Srgb struct{}

func (Srgb) Encode(linear float64) float64 {
	if linear <= srgbEncodeThreshold {
		return linear * srgbSlope
	}
	return srgbScale*math.Pow(linear, 1.0/srgbExponent) - srgbOffset
}

func (Srgb) Decode(encoded float64) float64 {
	if encoded <= srgbDecodeThreshold {
		return encoded / srgbSlope
	}
	return math.Pow((encoded+srgbOffset)/srgbScale, srgbExponent)
}

func (Srgb) Encode32(linear float32) float32 {
	if linear <= srgbEncodeThreshold {
		return linear * srgbSlope
	}
	return srgbScale*math32.Pow(linear, 1.0/srgbExponent) - srgbOffset
}

func (Srgb) Decode32(encoded float32) float32 {
	if encoded <= srgbDecodeThreshold {
		return encoded / srgbSlope
	}
	return math32.Pow((encoded+srgbOffset)/srgbScale, srgbExponent)
}

// srgbDecodeLUT maps every 8 bit sRGB value to linear light.
var srgbDecodeLUT [256]float32

func init() {
	for i := 0; i < 256; i++ {
		srgbDecodeLUT[i] = float32(Srgb{}.Decode(float64(i) / 255.0))
	}
}

// SrgbDecodeU8 decodes an 8 bit sRGB component to linear light with a table lookup.
//
// Example:
//
//	l := SrgbDecodeU8(128) // ~0.2159 (not 0.5!)
func SrgbDecodeU8(v uint8) float32 {
	return srgbDecodeLUT[v]
}
