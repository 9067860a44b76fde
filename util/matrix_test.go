package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertMatrixInDelta(t *testing.T, expected Matrix3, actual Matrix3, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, expected[i][j], actual[i][j], delta, "element [%d][%d]", i, j)
		}
	}
}

func TestInvertMatrix3x3(t *testing.T) {

	for _, tc := range []struct {
		name      string
		matrix    Matrix3
		expectErr bool
	}{
		{
			name:   "identity",
			matrix: MatrixIdentity(),
		},
		{
			name:   "non identity",
			matrix: Matrix3{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}},
		},
		{
			name:      "singular",
			matrix:    Matrix3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
			expectErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			inverse, err := InvertMatrix3x3(tc.matrix)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assertMatrixInDelta(t, MatrixIdentity(), MatrixMatrixMultiply(tc.matrix, inverse), 1e-12)
		})
	}
}

func TestTransposeMatrix(t *testing.T) {
	m := Matrix3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	assert.Equal(t, Matrix3{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, TransposeMatrix(m))
}

func TestMatrixMultiplySkipsNil(t *testing.T) {
	a := Matrix3{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}}
	b := Matrix3{{1, 1, 0}, {0, 1, 0}, {0, 0, 1}}

	assert.Equal(t, MatrixMatrixMultiply(a, b), MatrixMultiply(&a, nil, &b))
	assert.Equal(t, MatrixIdentity(), MatrixMultiply())
}

func TestMatrixVectorMultiply(t *testing.T) {
	m := MatrixDiagonal(Vector3{2, 3, 4})
	assert.Equal(t, Vector3{2, 6, 12}, MatrixVectorMultiply(m, Vector3{1, 2, 3}))

	m = Matrix3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	assert.Equal(t, Vector3{14, 32, 50}, MatrixVectorMultiply(m, Vector3{1, 2, 3}))
}
