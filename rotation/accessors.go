// SPDX-License-Identifier: MIT

package rotation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvrot/matrix"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// canonical picks the deterministic sign of q: w > 0, or for w == 0 the first
// non-zero vector component positive.
func canonical(q quat.Number) quat.Number {
	neg := false
	switch {
	case q.Real != 0:
		neg = q.Real < 0
	case q.Imag != 0:
		neg = q.Imag < 0
	case q.Jmag != 0:
		neg = q.Jmag < 0
	default:
		neg = q.Kmag < 0
	}
	if neg {
		return quat.Scale(-1, q)
	}

	return q
}

// Quaternion returns the unit quaternion of r with a deterministic sign
// (non-negative scalar part), so equal rotations print identically.
func (r Rotation) Quaternion() quat.Number {
	return canonical(r.unit())
}

// RotationVector returns psi = angle·axis with angle in [0, π].
// The identity maps to the zero vector. Rotations by exactly π have two
// valid answers (±psi); the one derived from the canonical quaternion is used.
func (r Rotation) RotationVector() r3.Vec {
	q := r.Quaternion()
	v := r3.Vec{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
	n := r3.Norm(v)
	if n == 0 {
		return r3.Vec{}
	}
	phi := 2 * math.Atan2(n, q.Real) // q.Real ≥ 0 ⇒ phi ∈ [0, π]

	return r3.Scale(phi/n, v)
}

// AxisAngle returns the unit axis and the angle in [0, π].
// The identity reports the first Cartesian axis and angle 0.
func (r Rotation) AxisAngle() (r3.Vec, float64) {
	psi := r.RotationVector()
	angle := r3.Norm(psi)
	if angle == 0 {
		return r3.Vec{X: 1}, 0
	}

	return r3.Scale(1/angle, psi), angle
}

// Angle returns the rotation angle in [0, π].
func (r Rotation) Angle() float64 {
	return r3.Norm(r.RotationVector())
}

// Matrix returns the 3×3 rotation matrix R, so that R·v equals Apply(v).
func (r Rotation) Matrix() *matrix.Dense {
	return mat3FromQuat(r.unit()).dense()
}

// BaseVector returns column i (0, 1 or 2) of the rotation matrix, i.e. the
// rotated Cartesian basis vector e_i.
//
// Errors: ErrBaseVectorIndex.
func (r Rotation) BaseVector(i int) (r3.Vec, error) {
	switch i {
	case 0:
		return r.FirstBaseVector(), nil
	case 1:
		return r.SecondBaseVector(), nil
	case 2:
		return r.ThirdBaseVector(), nil
	}

	return r3.Vec{}, fmt.Errorf("BaseVector(%d): %w", i, ErrBaseVectorIndex)
}

// FirstBaseVector returns R·e₁.
func (r Rotation) FirstBaseVector() r3.Vec {
	a := mat3FromQuat(r.unit())
	return r3.Vec{X: a[0][0], Y: a[1][0], Z: a[2][0]}
}

// SecondBaseVector returns R·e₂.
func (r Rotation) SecondBaseVector() r3.Vec {
	a := mat3FromQuat(r.unit())
	return r3.Vec{X: a[0][1], Y: a[1][1], Z: a[2][1]}
}

// ThirdBaseVector returns R·e₃.
func (r Rotation) ThirdBaseVector() r3.Vec {
	a := mat3FromQuat(r.unit())
	return r3.Vec{X: a[0][2], Y: a[1][2], Z: a[2][2]}
}

// String implements fmt.Stringer with the canonical quaternion.
func (r Rotation) String() string {
	q := r.Quaternion()
	return fmt.Sprintf("Rotation{w: %g, x: %g, y: %g, z: %g}", q.Real, q.Imag, q.Jmag, q.Kmag)
}

// RotationVectorString formats the rotation vector as three space-separated
// values in full double precision, the form solver input files expect for
// nodal triads and local coordinate systems.
func (r Rotation) RotationVectorString() string {
	psi := r.RotationVector()
	return fmt.Sprintf("%.16e %.16e %.16e", psi.X, psi.Y, psi.Z)
}
