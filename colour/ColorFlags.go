package colour

import "fmt"

// Enumerated ids for run time selection, numbered as in the JPEG XL colour encoding bundle.
const (
	PRI_SRGB   int32 = 1
	PRI_CUSTOM int32 = 2
	PRI_ADOBE  int32 = 3
	PRI_BT2100 int32 = 9
	PRI_P3     int32 = 11

	WP_D50    int32 = -1
	WP_D65    int32 = 1
	WP_CUSTOM int32 = 2
	WP_E      int32 = 10
	WP_DCI    int32 = 11
)

func ValidatePrimaries(primaries int32) bool {
	return primaries == PRI_SRGB || primaries == PRI_CUSTOM || primaries == PRI_ADOBE ||
		primaries == PRI_BT2100 || primaries == PRI_P3
}

func ValidateWhitePoint(whitePoint int32) bool {
	return whitePoint == WP_D50 || whitePoint == WP_D65 || whitePoint == WP_CUSTOM ||
		whitePoint == WP_E || whitePoint == WP_DCI
}

// GetPrimaries returns the marker for a named primaries id. PRI_CUSTOM has no fixed value and is
// built with NewCustomPrimaries instead.
func GetPrimaries(primaries int32) (Primaries, error) {
	switch primaries {
	case PRI_SRGB:
		return SrgbPrimaries{}, nil
	case PRI_ADOBE:
		return AdobeRgbPrimaries{}, nil
	case PRI_BT2100:
		return Bt2020Primaries{}, nil
	case PRI_P3:
		return DisplayP3Primaries{}, nil
	}
	return nil, fmt.Errorf("no fixed primaries for id %d", primaries)
}

// GetWhitePoint returns the marker for a named white point id. WP_CUSTOM has no fixed value and is
// built with NewCustomWhitePoint instead.
func GetWhitePoint(whitePoint int32) (WhitePoint, error) {
	switch whitePoint {
	case WP_D50:
		return D50{}, nil
	case WP_D65:
		return D65{}, nil
	case WP_E:
		return E{}, nil
	case WP_DCI:
		return DCI{}, nil
	}
	return nil, fmt.Errorf("no fixed white point for id %d", whitePoint)
}
