package util

import "errors"

// Matrix3 is a row major 3x3 matrix. Fixed size so colour conversions never allocate.
type Matrix3 [3][3]float64

// Vector3 is a column vector.
type Vector3 [3]float64

func MatrixIdentity() Matrix3 {
	return Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

func MatrixDiagonal(v Vector3) Matrix3 {
	return Matrix3{{v[0], 0, 0}, {0, v[1], 0}, {0, 0, v[2]}}
}

func TransposeMatrix(m Matrix3) Matrix3 {
	var t Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[j][i] = m[i][j]
		}
	}
	return t
}

// InvertMatrix3x3 inverts m using the adjugate. A singular matrix is an error.
func InvertMatrix3x3(m Matrix3) (Matrix3, error) {
	a := m[1][1]*m[2][2] - m[1][2]*m[2][1]
	b := m[1][2]*m[2][0] - m[1][0]*m[2][2]
	c := m[1][0]*m[2][1] - m[1][1]*m[2][0]

	det := m[0][0]*a + m[0][1]*b + m[0][2]*c
	if det == 0 {
		return Matrix3{}, errors.New("matrix is singular")
	}
	invDet := 1.0 / det

	return Matrix3{
		{
			a * invDet,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet,
		},
		{
			b * invDet,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet,
		},
		{
			c * invDet,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet,
		},
	}, nil
}

func MatrixMatrixMultiply(a Matrix3, b Matrix3) Matrix3 {
	var res Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += a[i][k] * b[k][j]
			}
			res[i][j] = sum
		}
	}
	return res
}

// MatrixMultiply multiplies the matrices left to right. Nil entries are treated as the identity,
// which lets callers pass optional steps such as a skipped white point adaptation.
func MatrixMultiply(matrices ...*Matrix3) Matrix3 {
	res := MatrixIdentity()
	for _, m := range matrices {
		if m == nil {
			continue
		}
		res = MatrixMatrixMultiply(res, *m)
	}
	return res
}

func MatrixVectorMultiply(m Matrix3, v Vector3) Vector3 {
	return Vector3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}
