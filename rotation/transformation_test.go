// SPDX-License-Identifier: MIT

package rotation_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvrot/matrix"
	"github.com/katalvlaran/lvrot/rotation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// psiSamples spans both sides of the series threshold and the end of the range.
var psiSamples = []r3.Vec{
	{X: 1e-9},
	{X: 3e-5, Y: -2e-5, Z: 1e-5},
	{X: 0.004, Y: 0.005, Z: -0.003},
	{Y: 0.0099999},
	{Y: 0.0100001},
	{X: 0.02, Y: -0.01},
	{X: 0.3, Y: -0.4, Z: 0.5},
	{X: -1.2, Y: 0.7, Z: 1.9},
	r3.Scale(math.Pi-1e-6, r3.Unit(r3.Vec{X: 1, Y: -1, Z: 2})),
}

// TestTransformationMatrixIdentity checks T(0) = T⁻¹(0) = I exactly.
func TestTransformationMatrixIdentity(t *testing.T) {
	id := rotation.Identity()
	requireDenseClose(t, identity3(t), id.TransformationMatrix(), 0)
	requireDenseClose(t, identity3(t), id.TransformationMatrixInverse(), 0)
}

// TestTransformationMatrixSmallAngle checks T → I − ½S as ψ → 0.
func TestTransformationMatrixSmallAngle(t *testing.T) {
	dir := r3.Unit(r3.Vec{X: 1, Y: 2, Z: -2})
	for _, theta := range []float64{1e-3, 1e-5, 1e-8, 1e-12} {
		psi := r3.Scale(theta, dir)
		r, err := rotation.FromRotationVector(psi)
		require.NoError(t, err)

		half, err := matrix.Scale(rotation.Skew(psi), -0.5)
		require.NoError(t, err)
		want, err := matrix.Add(identity3(t), half)
		require.NoError(t, err)
		requireDenseClose(t, want, r.TransformationMatrix(), 2*theta*theta)

		halfInv, err := matrix.Scale(rotation.Skew(psi), 0.5)
		require.NoError(t, err)
		wantInv, err := matrix.Add(identity3(t), halfInv)
		require.NoError(t, err)
		requireDenseClose(t, wantInv, r.TransformationMatrixInverse(), 2*theta*theta)
	}
}

// TestTransformationMatrixProductIsIdentity checks T·T⁻¹ = I everywhere.
func TestTransformationMatrixProductIsIdentity(t *testing.T) {
	for _, psi := range psiSamples {
		r, err := rotation.FromRotationVector(psi)
		require.NoError(t, err)
		prod, err := matrix.Mul(r.TransformationMatrix(), r.TransformationMatrixInverse())
		require.NoError(t, err)
		requireDenseClose(t, identity3(t), prod, 1e-9)
	}
}

// TestTransformationMatrixInverseAgainstGonum inverts T numerically with gonum.
func TestTransformationMatrixInverseAgainstGonum(t *testing.T) {
	for _, psi := range psiSamples {
		r, err := rotation.FromRotationVector(psi)
		require.NoError(t, err)

		tm := mat.NewDense(3, 3, r.TransformationMatrix().RawData())
		var inv mat.Dense
		require.NoError(t, inv.Inverse(tm), "psi %v", psi)

		got := r.TransformationMatrixInverse().RawData()
		for k, v := range inv.RawMatrix().Data {
			assert.InDelta(t, v, got[k], 1e-8, "psi %v entry %d", psi, k)
		}
	}
}

// TestTransformationMatrixContinuity compares both sides of the series threshold.
func TestTransformationMatrixContinuity(t *testing.T) {
	dir := r3.Unit(r3.Vec{X: 0.3, Y: -0.5, Z: 0.8})
	below := rotation.MustFromAxisAngle(dir, 0.01-1e-9)
	above := rotation.MustFromAxisAngle(dir, 0.01+1e-9)
	requireDenseClose(t, below.TransformationMatrix(), above.TransformationMatrix(), 1e-8)
	requireDenseClose(t, below.TransformationMatrixInverse(), above.TransformationMatrixInverse(), 1e-8)
}

// TestTransformationMatrixFiniteDifference verifies δψ ≈ T·δθ for a spatial
// spin increment: Λ(ψ + δψ) = exp(δθ)∘Λ(ψ).
func TestTransformationMatrixFiniteDifference(t *testing.T) {
	const h = 1e-6
	for _, psi := range []r3.Vec{{X: 0.3, Y: -0.4, Z: 0.5}, {X: 1e-3, Z: 2e-3}, {X: -1.1, Y: 0.6, Z: 1.7}} {
		base, err := rotation.FromRotationVector(psi)
		require.NoError(t, err)
		tm := base.TransformationMatrix()

		for k, e := range []r3.Vec{ex, ey, ez} {
			plus, err := rotation.FromRotationVector(r3.Scale(h, e))
			require.NoError(t, err)
			minus, err := rotation.FromRotationVector(r3.Scale(-h, e))
			require.NoError(t, err)

			dpsi := r3.Scale(0.5/h, r3.Sub(
				plus.Compose(base).RotationVector(),
				minus.Compose(base).RotationVector(),
			))
			col := r3.Vec{}
			col.X, _ = tm.At(0, k)
			col.Y, _ = tm.At(1, k)
			col.Z, _ = tm.At(2, k)
			requireVecClose(t, col, dpsi, 1e-6, "psi %v column %d", psi, k)
		}
	}
}

// TestSkew checks S(v)·u = v × u and antisymmetry.
func TestSkew(t *testing.T) {
	vs := randomVectors(77, 10)
	for i := 0; i+1 < len(vs); i += 2 {
		v, u := vs[i], vs[i+1]
		s := rotation.Skew(v)
		requireVecClose(t, r3.Cross(v, u), matVec3(t, s, u), 1e-14)

		st, err := matrix.Transpose(s)
		require.NoError(t, err)
		neg, err := matrix.Scale(s, -1)
		require.NoError(t, err)
		requireDenseClose(t, neg, st, 0)
	}
}
