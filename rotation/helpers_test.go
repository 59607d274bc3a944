// SPDX-License-Identifier: MIT
// Package rotation_test contains test helpers
//
// Purpose:
//   • Deterministic random rotations for property tests.
//   • Tolerance-based comparisons for vectors and 3×3 matrices.

package rotation_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvrot/matrix"
	"github.com/katalvlaran/lvrot/rotation"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// tol is the comparison tolerance used throughout the rotation tests.
const tol = 1e-10

var (
	ex = r3.Vec{X: 1}
	ey = r3.Vec{Y: 1}
	ez = r3.Vec{Z: 1}
)

// randomRotations returns n reproducible rotations drawn from normal quaternions.
func randomRotations(t *testing.T, seed int64, n int) []rotation.Rotation {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	out := make([]rotation.Rotation, n)
	for i := range out {
		q := quat.Number{Real: rng.NormFloat64(), Imag: rng.NormFloat64(), Jmag: rng.NormFloat64(), Kmag: rng.NormFloat64()}
		r, err := rotation.FromQuaternion(q)
		require.NoError(t, err)
		out[i] = r
	}

	return out
}

// randomVectors returns n reproducible vectors with components in [-2, 2).
func randomVectors(seed int64, n int) []r3.Vec {
	rng := rand.New(rand.NewSource(seed))
	out := make([]r3.Vec, n)
	for i := range out {
		out[i] = r3.Vec{X: 4*rng.Float64() - 2, Y: 4*rng.Float64() - 2, Z: 4*rng.Float64() - 2}
	}

	return out
}

// requireVecClose fails unless |a − b|∞ ≤ eps.
func requireVecClose(t *testing.T, want, got r3.Vec, eps float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.True(t, floats.EqualApprox([]float64{want.X, want.Y, want.Z}, []float64{got.X, got.Y, got.Z}, eps),
		append([]interface{}{"want %v, got %v", want, got}, msgAndArgs...)...)
}

// requireDenseClose fails unless a and b agree entrywise within eps.
func requireDenseClose(t *testing.T, want, got matrix.Matrix, eps float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, eps)
	require.NoError(t, err)
	require.True(t, ok, "want\n%v\ngot\n%v", want, got)
}

// rows3 builds a 3×3 *matrix.Dense from literal rows.
func rows3(t *testing.T, rows ...[]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// identity3 returns I₃.
func identity3(t *testing.T) *matrix.Dense {
	t.Helper()
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	return id
}

// matVec3 multiplies a 3×3 matrix with a vector via the matrix kernels.
func matVec3(t *testing.T, m matrix.Matrix, v r3.Vec) r3.Vec {
	t.Helper()
	y, err := matrix.MatVec(m, []float64{v.X, v.Y, v.Z})
	require.NoError(t, err)

	return r3.Vec{X: y[0], Y: y[1], Z: y[2]}
}

// quatNorm is |q|.
func quatNorm(q quat.Number) float64 { return quat.Abs(q) }

// halfPi is π/2.
const halfPi = math.Pi / 2
