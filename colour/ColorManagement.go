package colour

import (
	"errors"
	"fmt"

	"github.com/kpfaulkner/colour-go/util"
)

var (
	CM_PRI_SRGB = PrimariesOf(SrgbPrimaries{})

	CM_WP_D65 = Chromaticity(D65{})
	CM_WP_D50 = Chromaticity(D50{})

	BRADFORD = util.Matrix3{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}

	BRADFORD_INVERSE = mustInvert(BRADFORD)
)

// GetConversionMatrix returns the matrix taking linear RGB in the current primaries and white
// point to linear RGB in the target primaries and white point.
func GetConversionMatrix(targetPrim CIEPrimaries, targetWP CIEXY, currentPrim CIEPrimaries, currentWP CIEXY) (util.Matrix3, error) {
	if targetPrim.Matches(&currentPrim) && targetWP.Matches(&currentWP) {
		return util.MatrixIdentity(), nil
	}

	var whitePointConv *util.Matrix3
	if !targetWP.Matches(&currentWP) {
		adapt, err := AdaptWhitePoint(&targetWP, &currentWP)
		if err != nil {
			return util.Matrix3{}, err
		}
		whitePointConv = &adapt
	}
	forward, err := PrimariesToXYZ(&currentPrim, &currentWP)
	if err != nil {
		return util.Matrix3{}, err
	}

	t, err := PrimariesToXYZ(&targetPrim, &targetWP)
	if err != nil {
		return util.Matrix3{}, err
	}
	reverse, err := util.InvertMatrix3x3(t)
	if err != nil {
		return util.Matrix3{}, fmt.Errorf("target primaries are degenerate: %w", err)
	}
	return util.MatrixMultiply(&reverse, whitePointConv, &forward), nil
}

// AdaptWhitePoint returns the Bradford chromatic adaptation matrix from currentWP to targetWP in
// XYZ. A nil target means D50 and a nil current means D65.
func AdaptWhitePoint(targetWP *CIEXY, currentWP *CIEXY) (util.Matrix3, error) {
	if targetWP == nil {
		targetWP = CM_WP_D50
	}
	if currentWP == nil {
		currentWP = CM_WP_D65
	}

	wCurrent, err := GetXYZ(*currentWP)
	if err != nil {
		return util.Matrix3{}, err
	}
	lmsCurrent := util.MatrixVectorMultiply(BRADFORD, wCurrent)

	wTarget, err := GetXYZ(*targetWP)
	if err != nil {
		return util.Matrix3{}, err
	}
	lmsTarget := util.MatrixVectorMultiply(BRADFORD, wTarget)

	var scale util.Vector3
	for i := 0; i < 3; i++ {
		if lmsCurrent[i] == 0 {
			return util.Matrix3{}, errors.New("invalid argument")
		}
		scale[i] = lmsTarget[i] / lmsCurrent[i]
	}
	a := util.MatrixDiagonal(scale)
	return util.MatrixMultiply(&BRADFORD_INVERSE, &a, &BRADFORD), nil
}

// PrimariesToXYZ returns the matrix taking linear RGB with the given primaries and white point to
// XYZ, scaled so that RGB (1, 1, 1) maps to the white point with Y = 1. A nil white point means D50.
func PrimariesToXYZ(primaries *CIEPrimaries, wp *CIEXY) (util.Matrix3, error) {
	if primaries == nil {
		return util.Matrix3{}, errors.New("primaries required")
	}

	if wp == nil {
		wp = CM_WP_D50
	}
	if err := validateXY(*wp); err != nil {
		return util.Matrix3{}, err
	}
	r, errR := GetXYZ(*primaries.Red)
	g, errG := GetXYZ(*primaries.Green)
	b, errB := GetXYZ(*primaries.Blue)
	if errR != nil || errG != nil || errB != nil {
		return util.Matrix3{}, errors.New("invalid argument")
	}
	primariesTr := util.Matrix3{r, g, b}
	primariesMatrix := util.TransposeMatrix(primariesTr)
	inversePrimaries, err := util.InvertMatrix3x3(primariesMatrix)
	if err != nil {
		return util.Matrix3{}, fmt.Errorf("primaries are degenerate: %w", err)
	}
	w, err := GetXYZ(*wp)
	if err != nil {
		return util.Matrix3{}, err
	}
	xyz := util.MatrixVectorMultiply(inversePrimaries, w)
	a := util.MatrixDiagonal(xyz)
	return util.MatrixMatrixMultiply(primariesMatrix, a), nil
}

func validateXY(xy CIEXY) error {
	if xy.X < 0 || xy.X > 1 || xy.Y <= 0 || xy.Y > 1 {
		return errors.New("Invalid argument")
	}
	return nil
}

// GetXYZ returns the XYZ tristimulus value with Y = 1 for a chromaticity.
func GetXYZ(xy CIEXY) (util.Vector3, error) {
	if err := validateXY(xy); err != nil {
		return util.Vector3{}, err
	}
	invY := 1.0 / xy.Y
	return util.Vector3{xy.X * invY, 1.0, (1.0 - xy.X - xy.Y) * invY}, nil
}

// MustGetConversionMatrix is GetConversionMatrix for descriptors whose chromaticities are known good.
func MustGetConversionMatrix(targetPrim CIEPrimaries, targetWP CIEXY, currentPrim CIEPrimaries, currentWP CIEXY) util.Matrix3 {
	m, err := GetConversionMatrix(targetPrim, targetWP, currentPrim, currentWP)
	if err != nil {
		panic("colour: invalid conversion descriptors: " + err.Error())
	}
	return m
}

func mustInvert(m util.Matrix3) util.Matrix3 {
	inv, err := util.InvertMatrix3x3(m)
	if err != nil {
		panic(err)
	}
	return inv
}
