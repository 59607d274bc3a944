// SPDX-License-Identifier: MIT

// Package rotation - the Rotation value type and its constructors.
//
// Representation:
//   - A unit quaternion q = (w, x, y, z) stored as a gonum quat.Number.
//   - q and −q describe the same rotation; the stored sign is arbitrary and
//     only canonicalised on output (Quaternion) and ignored by Equal.
//   - Every constructor normalises; Compose re-normalises to stop drift.
package rotation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvrot/matrix"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Rotation is an element of SO(3), the group of proper rotations in 3D.
//
// Rotation is an immutable value: no method mutates its receiver, so values
// may be copied freely and shared between goroutines without locking.
// The zero value is the identity rotation.
type Rotation struct {
	q quat.Number // unit quaternion; the zero Number stands for the identity
}

// identityQuat is the canonical identity quaternion.
var identityQuat = quat.Number{Real: 1}

// unit returns the stored unit quaternion, mapping the zero value to identity.
func (r Rotation) unit() quat.Number {
	if r.q == (quat.Number{}) {
		return identityQuat
	}

	return r.q
}

// fromUnnormalized divides q by its norm. Callers guarantee a non-zero norm.
func fromUnnormalized(q quat.Number) Rotation {
	return Rotation{q: quat.Scale(1/quat.Abs(q), q)}
}

// Identity returns the identity rotation, q = (1, 0, 0, 0).
func Identity() Rotation {
	return Rotation{q: identityQuat}
}

// FromAxisAngle returns the rotation by angle (radians, right-hand rule) about axis.
//
// The axis need not be unit length. A zero angle yields the identity whatever
// the axis is, which is the limit of Rodrigues' formula.
//
// Errors:
//   - ErrNonFinite when any input is NaN or ±Inf.
//   - ErrZeroAxis when axis is the zero vector and angle ≠ 0.
func FromAxisAngle(axis r3.Vec, angle float64) (Rotation, error) {
	if !finiteVec(axis) || !finite(angle) {
		return Rotation{}, fmt.Errorf("FromAxisAngle(%v, %g): %w", axis, angle, ErrNonFinite)
	}
	if angle == 0 {
		return Identity(), nil
	}
	n := r3.Norm(axis)
	if n == 0 {
		return Rotation{}, fmt.Errorf("FromAxisAngle(%v, %g): %w", axis, angle, ErrZeroAxis)
	}
	half := 0.5 * angle
	v := r3.Scale(math.Sin(half)/n, axis)

	return fromUnnormalized(quat.Number{Real: math.Cos(half), Imag: v.X, Jmag: v.Y, Kmag: v.Z}), nil
}

// MustFromAxisAngle is like FromAxisAngle but panics on error.
// It is meant for literal inputs in examples and tests.
func MustFromAxisAngle(axis r3.Vec, angle float64) Rotation {
	r, err := FromAxisAngle(axis, angle)
	if err != nil {
		panic(err)
	}

	return r
}

// FromRotationVector returns the rotation described by the pseudo-vector psi:
// |psi| is the angle and psi/|psi| the axis. psi = 0 yields the identity.
//
// Errors: ErrNonFinite.
func FromRotationVector(psi r3.Vec) (Rotation, error) {
	if !finiteVec(psi) {
		return Rotation{}, fmt.Errorf("FromRotationVector(%v): %w", psi, ErrNonFinite)
	}
	theta := r3.Norm(psi)
	if theta == 0 {
		return Identity(), nil
	}
	v := r3.Scale(halfSinc(theta), psi)

	return fromUnnormalized(quat.Number{Real: math.Cos(0.5 * theta), Imag: v.X, Jmag: v.Y, Kmag: v.Z}), nil
}

// FromQuaternion returns the rotation for q after dividing q by its norm.
//
// Errors: ErrNonFinite, ErrZeroQuaternion.
func FromQuaternion(q quat.Number) (Rotation, error) {
	if !finite(q.Real) || !finite(q.Imag) || !finite(q.Jmag) || !finite(q.Kmag) {
		return Rotation{}, fmt.Errorf("FromQuaternion(%v): %w", q, ErrNonFinite)
	}
	if quat.Abs(q) == 0 {
		return Rotation{}, fmt.Errorf("FromQuaternion: %w", ErrZeroQuaternion)
	}

	return fromUnnormalized(q), nil
}

// FromRotationMatrix returns the rotation represented by the 3×3 matrix m.
//
// Implementation:
//   - Stage 1: unless WithoutMatrixCheck is given, verify m ∈ SO(3) with
//     matrix.ValidateProperRotation (orthogonal, det = +1, within tolerance).
//   - Stage 2: Shepperd's extraction. The largest of 4w², 4x², 4y², 4z² is
//     computed from the trace and diagonal, so the divisor is never below 1/2.
//   - Stage 3: normalise.
//
// Errors:
//   - ErrNotRotationMatrix wrapping the matrix cause (ErrNilMatrix,
//     ErrDimensionMismatch, ErrNaNInf, ErrNotOrthogonal, ErrImproperRotation).
func FromRotationMatrix(m matrix.Matrix, opts ...Option) (Rotation, error) {
	o := gatherOptions(opts...)
	var err error
	if o.checkMatrix {
		err = matrix.ValidateProperRotation(m, matrix.WithEpsilon(o.matrixTol))
	} else {
		err = validateShape3(m)
	}
	if err != nil {
		return Rotation{}, fmt.Errorf("FromRotationMatrix: %w: %w", ErrNotRotationMatrix, err)
	}

	var a mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j], _ = m.At(i, j) // shape validated above
		}
	}

	return fromUnnormalized(quatFromMat3(a)), nil
}

// FromBasis returns the rotation whose first base vector points along t1 and
// whose second base vector lies in the plane spanned by t1 and t2, on the side
// of t2. The third base vector completes the right-handed triad.
//
// Errors: ErrNonFinite, ErrZeroVector (t1 = 0), ErrParallelBasis.
func FromBasis(t1, t2 r3.Vec) (Rotation, error) {
	if !finiteVec(t1) || !finiteVec(t2) {
		return Rotation{}, fmt.Errorf("FromBasis: %w", ErrNonFinite)
	}
	n1 := r3.Norm(t1)
	if n1 == 0 {
		return Rotation{}, fmt.Errorf("FromBasis: t1: %w", ErrZeroVector)
	}
	g1 := r3.Scale(1/n1, t1)

	// Gram–Schmidt: remove the g1 component from t2.
	perp := r3.Sub(t2, r3.Scale(r3.Dot(t2, g1), g1))
	np := r3.Norm(perp)
	if np == 0 || np <= parallelBasisTol*r3.Norm(t2) {
		return Rotation{}, fmt.Errorf("FromBasis(%v, %v): %w", t1, t2, ErrParallelBasis)
	}
	g2 := r3.Scale(1/np, perp)
	g3 := r3.Cross(g1, g2)

	a := mat3{
		{g1.X, g2.X, g3.X},
		{g1.Y, g2.Y, g3.Y},
		{g1.Z, g2.Z, g3.Z},
	}

	return fromUnnormalized(quatFromMat3(a)), nil
}

// validateShape3 is the light check used when SO(3) verification is disabled:
// non-nil, 3×3, finite.
func validateShape3(m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != 3 || m.Cols() != 3 {
		return fmt.Errorf("%d×%d: %w", m.Rows(), m.Cols(), matrix.ErrDimensionMismatch)
	}

	return matrix.ValidateFinite(m)
}

// halfSinc returns sin(θ/2)/θ with its Taylor limit near zero.
func halfSinc(theta float64) float64 {
	if theta < halfSincThreshold {
		t2 := theta * theta
		return 0.5 - t2/48 + t2*t2/3840
	}

	return math.Sin(0.5*theta) / theta
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func finiteVec(v r3.Vec) bool { return finite(v.X) && finite(v.Y) && finite(v.Z) }
