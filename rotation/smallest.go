// SPDX-License-Identifier: MIT

package rotation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// SmallestRotation returns the triad Λ_sr whose first base vector points
// along t, obtained from the reference triad ref by the smallest possible
// rotation: Λ_sr = Λ_rel∘ref, where Λ_rel turns ref·e₁ onto t/|t| along the
// great-circle arc. Λ_rel has its axis perpendicular to both directions, so
// no twist about t is introduced.
//
// The relative quaternion is built without trigonometry from the sum
// s = g + t̂ (g = ref·e₁) as normalize(|s|²/2, g × s). For unit vectors this
// equals (1 + g·t̂, g × t̂), but it keeps both parts accurate as t̂ approaches
// −g, where 1 + g·t̂ cancels.
//
// Anti-parallel case: when t points exactly opposite to ref·e₁ every
// half-turn about an axis perpendicular to t is a smallest rotation, so the
// answer is not unique. SmallestRotation then turns by π about ref's second
// base vector. Use IsAntiParallel to detect this case beforehand.
//
// Errors: ErrNonFinite, ErrZeroVector.
func SmallestRotation(ref Rotation, t r3.Vec) (Rotation, error) {
	if !finiteVec(t) {
		return Rotation{}, fmt.Errorf("SmallestRotation(%v): %w", t, ErrNonFinite)
	}
	n := r3.Norm(t)
	if n == 0 {
		return Rotation{}, fmt.Errorf("SmallestRotation: %w", ErrZeroVector)
	}
	g1 := ref.FirstBaseVector()
	sum := r3.Add(g1, r3.Scale(1/n, t))

	if r3.Norm(sum) <= antiParallelTol {
		axis := ref.SecondBaseVector()
		half := Rotation{q: quat.Number{Imag: axis.X, Jmag: axis.Y, Kmag: axis.Z}}

		return half.Compose(ref), nil
	}
	axis := r3.Cross(g1, sum)
	rel := fromUnnormalized(quat.Number{Real: 0.5 * r3.Norm2(sum), Imag: axis.X, Jmag: axis.Y, Kmag: axis.Z})

	return rel.Compose(ref), nil
}

// IsAntiParallel reports whether t points opposite to ref's first base vector,
// the case in which SmallestRotation falls back to its half-turn convention.
// A zero or non-finite t reports false.
func IsAntiParallel(ref Rotation, t r3.Vec) bool {
	n := r3.Norm(t)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return false
	}

	return r3.Norm(r3.Add(ref.FirstBaseVector(), r3.Scale(1/n, t))) <= antiParallelTol
}
