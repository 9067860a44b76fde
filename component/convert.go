package component

import "math"

// Convert changes v into the component type To so that v/max(From) == result/max(To).
//
// Float to float is a plain cast, integer to float divides by the integer maximum and float to
// integer multiplies by the integer maximum and rounds to nearest. Integer to integer scales by
// the ratio of the two maxima, which is exact when widening.
//
// Values are not clamped to the natural 0..max range. Where an integer target cannot hold the
// scaled value at all (negative, NaN or above the type maximum) the result saturates at the type
// bounds.
func Convert[To, From Component](v From) To {
	fromFloat := IsFloat[From]()
	toFloat := IsFloat[To]()

	switch {
	case fromFloat && toFloat:
		return To(v)
	case toFloat:
		return To(float64(v) / MaxIntensity[From]())
	case fromFloat:
		return saturate[To](float64(v) * MaxIntensity[To]())
	}

	fromMax := MaxIntensity[From]()
	toMax := MaxIntensity[To]()
	if fromMax == toMax {
		return To(v)
	}
	return saturate[To](float64(v) * toMax / fromMax)
}

// ConvertSlice converts every value of src into dst. dst must be at least as long as src.
func ConvertSlice[To, From Component](dst []To, src []From) {
	for i, v := range src {
		dst[i] = Convert[To](v)
	}
}

// saturate rounds x to the nearest integer of type T, pinning values T cannot hold to its bounds.
func saturate[T Component](x float64) T {
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	r := math.Round(x)
	if r >= float64(maxInteger[T]()) {
		return maxInteger[T]()
	}
	return T(r)
}
