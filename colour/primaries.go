package colour

// Primaries is the red, green and blue chromaticity triple of an RGB space.
type Primaries interface {
	Red() CIEXY
	Green() CIEXY
	Blue() CIEXY
}

// SrgbPrimaries are the ITU-R BT.709 primaries shared by sRGB.
type SrgbPrimaries struct{}

// DisplayP3Primaries are the DCI-P3 primaries as used by Display P3.
type DisplayP3Primaries struct{}

// Bt2020Primaries are the ITU-R BT.2020 / BT.2100 wide gamut primaries.
type Bt2020Primaries struct{}

// AdobeRgbPrimaries are the Adobe RGB (1998) primaries.
type AdobeRgbPrimaries struct{}

func (SrgbPrimaries) Red() CIEXY   { return CIEXY{X: 0.6400, Y: 0.3300} }
func (SrgbPrimaries) Green() CIEXY { return CIEXY{X: 0.3000, Y: 0.6000} }
func (SrgbPrimaries) Blue() CIEXY  { return CIEXY{X: 0.1500, Y: 0.0600} }

func (DisplayP3Primaries) Red() CIEXY   { return CIEXY{X: 0.680, Y: 0.320} }
func (DisplayP3Primaries) Green() CIEXY { return CIEXY{X: 0.265, Y: 0.690} }
func (DisplayP3Primaries) Blue() CIEXY  { return CIEXY{X: 0.150, Y: 0.060} }

func (Bt2020Primaries) Red() CIEXY   { return CIEXY{X: 0.708, Y: 0.292} }
func (Bt2020Primaries) Green() CIEXY { return CIEXY{X: 0.170, Y: 0.797} }
func (Bt2020Primaries) Blue() CIEXY  { return CIEXY{X: 0.131, Y: 0.046} }

func (AdobeRgbPrimaries) Red() CIEXY   { return CIEXY{X: 0.6400, Y: 0.3300} }
func (AdobeRgbPrimaries) Green() CIEXY { return CIEXY{X: 0.2100, Y: 0.7100} }
func (AdobeRgbPrimaries) Blue() CIEXY  { return CIEXY{X: 0.1500, Y: 0.0600} }

// CustomPrimaries are primaries known only at run time.
type CustomPrimaries struct {
	R CIEXY
	G CIEXY
	B CIEXY
}

func NewCustomPrimaries(red CIEXY, green CIEXY, blue CIEXY) (*CustomPrimaries, error) {
	for _, xy := range []CIEXY{red, green, blue} {
		if err := validateXY(xy); err != nil {
			return nil, err
		}
	}
	return &CustomPrimaries{R: red, G: green, B: blue}, nil
}

func (cp CustomPrimaries) Red() CIEXY   { return cp.R }
func (cp CustomPrimaries) Green() CIEXY { return cp.G }
func (cp CustomPrimaries) Blue() CIEXY  { return cp.B }

// PrimariesOf returns the chromaticities of p in the form the matrix functions take.
func PrimariesOf(p Primaries) *CIEPrimaries {
	red, green, blue := p.Red(), p.Green(), p.Blue()
	return NewCIEPrimaries(&red, &green, &blue)
}
