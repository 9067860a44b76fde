package colour

import "math"

// CIEXY is a CIE 1931 xy chromaticity coordinate.
type CIEXY struct {
	X float64
	Y float64
}

func NewCIEXY(x float64, y float64) *CIEXY {
	cxy := &CIEXY{}
	cxy.X = x
	cxy.Y = y
	return cxy
}

// Matches reports whether two chromaticities are the same to within 1e-4.
func (cxy *CIEXY) Matches(other *CIEXY) bool {
	if cxy == nil || other == nil {
		return cxy == other
	}
	return math.Abs(cxy.X-other.X)+math.Abs(cxy.Y-other.Y) < 1e-4
}
