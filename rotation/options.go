// SPDX-License-Identifier: MIT

// Package rotation: functional configuration and numeric constants.
//
// All tolerances live here as documented constants so that every comparison
// in the package draws from one source of truth.
package rotation

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute per-component quaternion tolerance used by
	// Equal. Two rotations are equal when q_a ≈ q_b or q_a ≈ −q_b within it.
	DefaultEpsilon = 1e-10

	// DefaultMatrixTolerance bounds |RᵀR − I| entries and |det R − 1| when
	// FromRotationMatrix verifies its input.
	DefaultMatrixTolerance = 1e-8

	// DefaultCheckMatrix toggles SO(3) verification in FromRotationMatrix.
	DefaultCheckMatrix = true
)

// Internal numeric thresholds.
const (
	// seriesThreshold: below this angle the T/T⁻¹ coefficients use Taylor series.
	seriesThreshold = 1e-2

	// halfSincThreshold: below this angle sin(θ/2)/θ uses its Taylor series.
	halfSincThreshold = 1e-4

	// antiParallelTol: |g + t̂| at or below this value is treated as exactly
	// anti-parallel by SmallestRotation; it bounds the mapping error there.
	antiParallelTol = 1e-12

	// slerpLinearTol: quaternions closer than this (1 − |dot|) are interpolated linearly.
	slerpLinearTol = 1e-12

	// parallelBasisTol: relative size of the perpendicular part of t2 below
	// which FromBasis reports ErrParallelBasis.
	parallelBasisTol = 1e-12
)

const (
	panicMatrixToleranceInvalid = "rotation: WithMatrixTolerance: tol must be finite, non-negative"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	matrixTol   float64 // DefaultMatrixTolerance
	checkMatrix bool    // DefaultCheckMatrix
}

// WithMatrixTolerance sets the tolerance used to verify rotation matrices.
// Panics when tol is negative or non-finite (programmer error).
func WithMatrixTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicMatrixToleranceInvalid)
	}

	return func(o *Options) { o.matrixTol = tol }
}

// WithoutMatrixCheck skips SO(3) verification in FromRotationMatrix; the
// caller guarantees the input is orthogonal with determinant +1.
func WithoutMatrixCheck() Option {
	return func(o *Options) { o.checkMatrix = false }
}

// WithMatrixCheck re-enables SO(3) verification (the default).
func WithMatrixCheck() Option {
	return func(o *Options) { o.checkMatrix = true }
}

func gatherOptions(opts ...Option) Options {
	o := Options{matrixTol: DefaultMatrixTolerance, checkMatrix: DefaultCheckMatrix}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
