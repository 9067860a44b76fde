package transfer

import "math"

const (
	bt709Alpha     = 1.09929682680944
	bt709Beta      = 0.018053968510807
	bt709Slope     = 4.5
	bt709Exponent  = 0.45
	bt709Threshold = bt709Slope * bt709Beta
)

// Bt709 is the ITU-R BT.709 camera curve, also used by BT.2020.
type Bt709 struct{}

func (Bt709) Encode(linear float64) float64 {
	if linear < bt709Beta {
		return linear * bt709Slope
	}
	return bt709Alpha*math.Pow(linear, bt709Exponent) - (bt709Alpha - 1)
}

func (Bt709) Decode(encoded float64) float64 {
	if encoded < bt709Threshold {
		return encoded / bt709Slope
	}
	return math.Pow((encoded+(bt709Alpha-1))/bt709Alpha, 1.0/bt709Exponent)
}
