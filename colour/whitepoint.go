package colour

// WhitePoint is a reference white. XYZ returns its tristimulus value normalised to Y = 1.
//
// The named illuminants are zero sized markers used as type arguments, so a colour value carries
// its white point in its type rather than in its data.
type WhitePoint interface {
	XYZ() (x float64, y float64, z float64)
}

// CIE standard illuminant A, incandescent tungsten.
type A struct{}

// CIE standard illuminant B, direct sunlight at noon (obsolete).
type B struct{}

// CIE standard illuminant C, average north sky daylight (obsolete).
type C struct{}

// D50 is horizon light, the ICC profile connection space white.
type D50 struct{}

// D55 is mid morning or mid afternoon daylight.
type D55 struct{}

// D65 is noon daylight, the white of sRGB, Display P3 and BT.2020.
type D65 struct{}

// D75 is north sky daylight.
type D75 struct{}

// E is the equal energy illuminant.
type E struct{}

// F2 is cool white fluorescent.
type F2 struct{}

// F7 is the D65 simulator fluorescent.
type F7 struct{}

// F11 is the Philips TL84 fluorescent.
type F11 struct{}

// DCI is the white of the DCI-P3 cinema projector space.
type DCI struct{}

func (A) XYZ() (float64, float64, float64)   { return 1.09850, 1.0, 0.35585 }
func (B) XYZ() (float64, float64, float64)   { return 0.99072, 1.0, 0.85223 }
func (C) XYZ() (float64, float64, float64)   { return 0.98074, 1.0, 1.18232 }
func (D50) XYZ() (float64, float64, float64) { return 0.96422, 1.0, 0.82521 }
func (D55) XYZ() (float64, float64, float64) { return 0.95682, 1.0, 0.92149 }
func (D65) XYZ() (float64, float64, float64) { return 0.95047, 1.0, 1.08883 }
func (D75) XYZ() (float64, float64, float64) { return 0.94972, 1.0, 1.22638 }
func (E) XYZ() (float64, float64, float64)   { return 1.0, 1.0, 1.0 }
func (F2) XYZ() (float64, float64, float64)  { return 0.99186, 1.0, 0.67393 }
func (F7) XYZ() (float64, float64, float64)  { return 0.95041, 1.0, 1.08747 }
func (F11) XYZ() (float64, float64, float64) { return 1.00962, 1.0, 0.64350 }
func (DCI) XYZ() (float64, float64, float64) { return xyToXYZ(0.314, 0.351) }

// CustomWhitePoint is a white point known only at run time, for example one read from an image
// header.
type CustomWhitePoint struct {
	CIEXY
}

func NewCustomWhitePoint(x float64, y float64) (*CustomWhitePoint, error) {
	cwp := &CustomWhitePoint{CIEXY: CIEXY{X: x, Y: y}}
	if err := validateXY(cwp.CIEXY); err != nil {
		return nil, err
	}
	return cwp, nil
}

func (cwp CustomWhitePoint) XYZ() (float64, float64, float64) {
	return xyToXYZ(cwp.X, cwp.Y)
}

// Chromaticity returns the xy chromaticity of a white point.
func Chromaticity(wp WhitePoint) *CIEXY {
	x, y, z := wp.XYZ()
	sum := x + y + z
	return NewCIEXY(x/sum, y/sum)
}

func xyToXYZ(x float64, y float64) (float64, float64, float64) {
	return x / y, 1.0, (1.0 - x - y) / y
}
