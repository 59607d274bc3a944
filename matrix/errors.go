// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped) and
// tests MUST check them via errors.Is. No kernel panics on user input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// these sentinels with fmt.Errorf("Op: %w", ErrX); callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> NaN/Inf -> structural violations (orthogonality, det).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when a zero pivot is met during LU/inversion.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotOrthogonal signals that MᵀM deviates from the identity beyond tolerance.
	ErrNotOrthogonal = errors.New("matrix: matrix is not orthogonal within tolerance")

	// ErrImproperRotation signals an orthogonal matrix with determinant -1 (a reflection).
	ErrImproperRotation = errors.New("matrix: determinant is not +1")
)
