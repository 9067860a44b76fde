package colour

// CIEPrimaries holds the chromaticities of the red, green and blue primaries of an RGB space.
type CIEPrimaries struct {
	Red   *CIEXY
	Green *CIEXY
	Blue  *CIEXY
}

func NewCIEPrimaries(red *CIEXY, green *CIEXY, blue *CIEXY) *CIEPrimaries {
	cp := &CIEPrimaries{}
	cp.Red = red
	cp.Green = green
	cp.Blue = blue
	return cp
}

func (cp *CIEPrimaries) Matches(other *CIEPrimaries) bool {
	if cp == nil || other == nil {
		return cp == other
	}
	return cp.Red.Matches(other.Red) && cp.Green.Matches(other.Green) && cp.Blue.Matches(other.Blue)
}
