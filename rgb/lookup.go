package rgb

import (
	"fmt"
	"strings"

	"github.com/kpfaulkner/colour-go/colour"
	"github.com/kpfaulkner/colour-go/transfer"
)

// StandardID names a preset standard for selection at run time.
type StandardID int32

const (
	SRGB StandardID = iota
	LINEAR_SRGB
	GAMMA_SRGB
	DISPLAY_P3
	LINEAR_DISPLAY_P3
	BT2020
	LINEAR_BT2020
	ADOBE_RGB
)

var standards = []struct {
	id       StandardID
	name     string
	standard RgbStandard
}{
	{SRGB, "srgb", Srgb{}},
	{LINEAR_SRGB, "linear-srgb", LinSrgb{}},
	{GAMMA_SRGB, "gamma-srgb", GammaSrgb{}},
	{DISPLAY_P3, "display-p3", DisplayP3{}},
	{LINEAR_DISPLAY_P3, "linear-display-p3", LinDisplayP3{}},
	{BT2020, "bt2020", Bt2020{}},
	{LINEAR_BT2020, "linear-bt2020", LinBt2020{}},
	{ADOBE_RGB, "adobe-rgb", AdobeRgb{}},
}

func (id StandardID) String() string {
	for _, s := range standards {
		if s.id == id {
			return s.name
		}
	}
	return fmt.Sprintf("StandardID(%d)", int32(id))
}

// Lookup returns the descriptor of a preset standard.
func Lookup(id StandardID) (RgbStandard, error) {
	for _, s := range standards {
		if s.id == id {
			return s.standard, nil
		}
	}
	return nil, fmt.Errorf("unknown standard id %d", int32(id))
}

// ParseStandard maps a name such as "srgb" or "linear_display_p3" to its id. Case, '-' and '_'
// are not significant.
func ParseStandard(name string) (StandardID, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for _, s := range standards {
		if s.name == key {
			return s.id, nil
		}
	}
	return 0, fmt.Errorf("unknown standard %q", name)
}

// StandardNames lists every name ParseStandard accepts, in id order.
func StandardNames() []string {
	names := make([]string, 0, len(standards))
	for _, s := range standards {
		names = append(names, s.name)
	}
	return names
}

// Descriptor is a standard assembled at run time, for conversions with ConvertWith. It can tag
// colours whose standard is only known at run time, but operations that take the standard from
// a type argument (Convert, ResolvePrimaries) cannot be used with it since its zero value has no
// primaries.
type Descriptor struct {
	Prim colour.Primaries
	WP   colour.WhitePoint
	Fn   transfer.TransferFn
}

type runtimeSpace struct {
	prim colour.Primaries
	wp   colour.WhitePoint
}

func (s runtimeSpace) Primaries() colour.Primaries   { return s.prim }
func (s runtimeSpace) WhitePoint() colour.WhitePoint { return s.wp }

func (d Descriptor) Space() RgbSpace                 { return runtimeSpace{prim: d.Prim, wp: d.WP} }
func (d Descriptor) TransferFn() transfer.TransferFn { return d.Fn }

// NewDescriptor builds a standard from the enumerated primaries, white point and transfer
// function ids.
func NewDescriptor(primaries int32, whitePoint int32, transferFn uint32) (*Descriptor, error) {
	prim, err := colour.GetPrimaries(primaries)
	if err != nil {
		return nil, err
	}
	wp, err := colour.GetWhitePoint(whitePoint)
	if err != nil {
		return nil, err
	}
	fn, err := transfer.GetTransferFunction(transferFn)
	if err != nil {
		return nil, err
	}
	return &Descriptor{Prim: prim, WP: wp, Fn: fn}, nil
}
