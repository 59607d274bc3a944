// SPDX-License-Identifier: MIT

// Package rotation - transformation matrices between additive and
// multiplicative rotation variations.
//
// For a rotation with rotation vector ψ (θ = |ψ|, S = S(ψ) the skew operator):
//
//	δψ = T(ψ)·δθ,    T   = I − ½·S + c(θ)·S²,   c(θ) = (1 − (θ/2)·cot(θ/2)) / θ²
//	δθ = T⁻¹(ψ)·δψ,  T⁻¹ = I + a(θ)·S + b(θ)·S², a(θ) = (1 − cos θ) / θ²,
//	                                              b(θ) = (θ − sin θ) / θ³
//
// All three coefficients have removable singularities at θ = 0; below
// seriesThreshold they are evaluated from their Taylor expansions
// (error O(θ⁶)) instead of dividing by a tiny angle.
package rotation

import (
	"math"

	"github.com/katalvlaran/lvrot/matrix"
	"gonum.org/v1/gonum/spatial/r3"
)

// TransformationMatrix returns T(ψ), mapping multiplicative (spin) increments
// δθ onto additive increments of the rotation vector: δψ = T·δθ.
// T is the identity for the identity rotation.
func (r Rotation) TransformationMatrix() *matrix.Dense {
	psi := r.RotationVector()
	return assembleT(psi, -0.5, coeffT(r3.Norm(psi))).dense()
}

// TransformationMatrixInverse returns T⁻¹(ψ) in closed form: δθ = T⁻¹·δψ.
func (r Rotation) TransformationMatrixInverse() *matrix.Dense {
	psi := r.RotationVector()
	theta := r3.Norm(psi)
	return assembleT(psi, coeffInvA(theta), coeffInvB(theta)).dense()
}

// Skew returns S(v), the skew-symmetric matrix with S(v)·u = v × u.
func Skew(v r3.Vec) *matrix.Dense {
	return skew3(v).dense()
}

// assembleT builds I + a·S(ψ) + b·S(ψ)², using S(ψ)² = ψψᵀ − |ψ|²·I.
func assembleT(psi r3.Vec, a, b float64) mat3 {
	s := skew3(psi)
	p := [3]float64{psi.X, psi.Y, psi.Z}
	theta2 := r3.Norm2(psi)

	var out mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = a*s[i][j] + b*p[i]*p[j]
		}
		out[i][i] += 1 - b*theta2
	}

	return out
}

// coeffT is c(θ) = (1 − (θ/2)cot(θ/2))/θ². θ ∈ [0, π] so sin(θ/2) > 0 off zero.
func coeffT(theta float64) float64 {
	if theta < seriesThreshold {
		t2 := theta * theta
		return 1.0/12 + t2/720 + t2*t2/30240
	}
	h := 0.5 * theta

	return (1 - h*math.Cos(h)/math.Sin(h)) / (theta * theta)
}

// coeffInvA is a(θ) = (1 − cos θ)/θ².
func coeffInvA(theta float64) float64 {
	if theta < seriesThreshold {
		t2 := theta * theta
		return 0.5 - t2/24 + t2*t2/720
	}

	return (1 - math.Cos(theta)) / (theta * theta)
}

// coeffInvB is b(θ) = (θ − sin θ)/θ³.
func coeffInvB(theta float64) float64 {
	if theta < seriesThreshold {
		t2 := theta * theta
		return 1.0/6 - t2/120 + t2*t2/5040
	}

	return (theta - math.Sin(theta)) / (theta * theta * theta)
}
