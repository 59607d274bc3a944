// SPDX-License-Identifier: MIT

// Package rotation - group operations.
//
// Composition and vector action are two explicitly named operations:
//   - a.Compose(b) is a∘b, "apply b first, then a" (quaternion product q_a·q_b).
//   - a.Apply(v)   rotates a Cartesian vector (sandwich product q·(0,v)·q*).
package rotation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Compose returns r∘b: the rotation that applies b first and then r.
// Composition is associative but not commutative. The product is
// re-normalised so long chains do not drift off the unit sphere.
func (r Rotation) Compose(b Rotation) Rotation {
	return fromUnnormalized(quat.Mul(r.unit(), b.unit()))
}

// Inverse returns r⁻¹ (the conjugate quaternion), so r.Compose(r.Inverse())
// is the identity.
func (r Rotation) Inverse() Rotation {
	return Rotation{q: quat.Conj(r.unit())}
}

// Apply rotates the vector v by r.
func (r Rotation) Apply(v r3.Vec) r3.Vec {
	q := r.unit()
	p := quat.Mul(quat.Mul(q, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(q))

	return r3.Vec{X: p.Imag, Y: p.Jmag, Z: p.Kmag}
}

// Equal reports whether r and b are the same rotation within DefaultEpsilon.
// The quaternion sign is not significant: q and −q compare equal.
func (r Rotation) Equal(b Rotation) bool {
	return r.EqualWithin(b, DefaultEpsilon)
}

// EqualWithin is Equal with an explicit absolute per-component tolerance.
func (r Rotation) EqualWithin(b Rotation, eps float64) bool {
	qa, qb := r.unit(), b.unit()
	return quatClose(qa, qb, eps) || quatClose(qa, quat.Scale(-1, qb), eps)
}

func quatClose(p, q quat.Number, eps float64) bool {
	return scalar.EqualWithinAbs(p.Real, q.Real, eps) &&
		scalar.EqualWithinAbs(p.Imag, q.Imag, eps) &&
		scalar.EqualWithinAbs(p.Jmag, q.Jmag, eps) &&
		scalar.EqualWithinAbs(p.Kmag, q.Kmag, eps)
}

// Relative returns the rotation that maps from onto to: to∘from⁻¹.
func Relative(from, to Rotation) Rotation {
	return to.Compose(from.Inverse())
}

// ComposeEach composes element-wise: out[i] = left[i]∘right[i].
// A slice of length 1 is broadcast against the other operand.
//
// Errors: ErrLengthMismatch when the lengths differ and neither is 1.
func ComposeEach(left, right []Rotation) ([]Rotation, error) {
	nl, nr := len(left), len(right)
	n := nl
	switch {
	case nl == nr:
	case nl == 1:
		n = nr
	case nr == 1:
		n = nl
	default:
		return nil, fmt.Errorf("ComposeEach(%d, %d): %w", nl, nr, ErrLengthMismatch)
	}

	out := make([]Rotation, n)
	for i := 0; i < n; i++ {
		out[i] = left[min(i, nl-1)].Compose(right[min(i, nr-1)])
	}

	return out, nil
}

// RotateCoordinates rotates every point about origin: origin + rot·(p − origin).
// The input slice is left untouched.
func RotateCoordinates(points []r3.Vec, rot Rotation, origin r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(points))
	for i, p := range points {
		out[i] = r3.Add(origin, rot.Apply(r3.Sub(p, origin)))
	}

	return out
}

// Slerp interpolates along the shortest great arc between a (t = 0) and b (t = 1).
//
// Errors: ErrInterpolationParameter when t is outside [0, 1] or not finite.
func Slerp(a, b Rotation, t float64) (Rotation, error) {
	if !finite(t) || t < 0 || t > 1 {
		return Rotation{}, fmt.Errorf("Slerp(t=%g): %w", t, ErrInterpolationParameter)
	}
	qa, qb := a.unit(), b.unit()
	dot := qa.Real*qb.Real + qa.Imag*qb.Imag + qa.Jmag*qb.Jmag + qa.Kmag*qb.Kmag
	if dot < 0 {
		// shortest arc: flip to the same hemisphere
		qb = quat.Scale(-1, qb)
		dot = -dot
	}
	if dot > 1-slerpLinearTol {
		return fromUnnormalized(quat.Add(quat.Scale(1-t, qa), quat.Scale(t, qb))), nil
	}
	theta := math.Acos(dot)
	s := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / s
	wb := math.Sin(t*theta) / s

	return fromUnnormalized(quat.Add(quat.Scale(wa, qa), quat.Scale(wb, qb))), nil
}
