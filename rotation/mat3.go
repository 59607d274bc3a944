// SPDX-License-Identifier: MIT

package rotation

import (
	"math"

	"github.com/katalvlaran/lvrot/matrix"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// mat3 is a fixed-size row-major 3×3 scratch matrix; it never escapes the
// package. Public results are *matrix.Dense.
type mat3 [3][3]float64

// quatFromMat3 extracts a (non-normalised) quaternion from a rotation matrix
// using Shepperd's branch selection.
func quatFromMat3(a mat3) quat.Number {
	tr := a[0][0] + a[1][1] + a[2][2]

	var w, x, y, z, f float64
	switch {
	case tr >= a[0][0] && tr >= a[1][1] && tr >= a[2][2]:
		w = 0.5 * math.Sqrt(1+tr)
		f = 0.25 / w
		x = (a[2][1] - a[1][2]) * f
		y = (a[0][2] - a[2][0]) * f
		z = (a[1][0] - a[0][1]) * f
	case a[0][0] >= a[1][1] && a[0][0] >= a[2][2]:
		x = 0.5 * math.Sqrt(1+2*a[0][0]-tr)
		f = 0.25 / x
		w = (a[2][1] - a[1][2]) * f
		y = (a[0][1] + a[1][0]) * f
		z = (a[0][2] + a[2][0]) * f
	case a[1][1] >= a[2][2]:
		y = 0.5 * math.Sqrt(1+2*a[1][1]-tr)
		f = 0.25 / y
		w = (a[0][2] - a[2][0]) * f
		x = (a[0][1] + a[1][0]) * f
		z = (a[1][2] + a[2][1]) * f
	default:
		z = 0.5 * math.Sqrt(1+2*a[2][2]-tr)
		f = 0.25 / z
		w = (a[1][0] - a[0][1]) * f
		x = (a[0][2] + a[2][0]) * f
		y = (a[1][2] + a[2][1]) * f
	}

	return quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}
}

// mat3FromQuat is the standard unit-quaternion to rotation-matrix map.
func mat3FromQuat(q quat.Number) mat3 {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	return mat3{
		{1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y)},
		{2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x)},
		{2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y)},
	}
}

// skew3 returns S(v), the matrix with S(v)·u = v × u.
func skew3(v r3.Vec) mat3 {
	return mat3{
		{0, -v.Z, v.Y},
		{v.Z, 0, -v.X},
		{-v.Y, v.X, 0},
	}
}

// dense converts the scratch matrix into a public *matrix.Dense.
// Entries are finite by construction, so Set cannot fail.
func (a mat3) dense() *matrix.Dense {
	m, _ := matrix.NewDense(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			_ = m.Set(i, j, a[i][j])
		}
	}

	return m
}
