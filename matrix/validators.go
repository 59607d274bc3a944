// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/finiteness checks here.
//  - Gate SO(3) ingestion: ValidateOrthogonal and ValidateProperRotation.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; the rotation checks allocate one
//    small product matrix.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Values).

package matrix

import (
	"fmt"
	"math"
)

// rotationDim is the only dimension ValidateProperRotation accepts.
const rotationDim = 3

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil (including typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix if nil, ErrDimensionMismatch if not square.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has length n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the sentinel for "nil argument"
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans m once and rejects any NaN or ±Inf entry.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	if d, ok := m.(*Dense); ok {
		for k, v := range d.data {
			if isNonFinite(v) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", k/d.c, k%d.c), ErrNaNInf)
			}
		}

		return nil
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if isNonFinite(v) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateOrthogonal checks that m is square and |(MᵀM − I)[i,j]| ≤ eps for
// all i,j, where eps comes from WithEpsilon (DefaultEpsilon otherwise).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrNotOrthogonal.
// Complexity: O(n³).
func ValidateOrthogonal(m Matrix, opts ...Option) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateOrthogonal", err)
	}
	if err := ValidateFinite(m); err != nil {
		return validatorErrorf("ValidateOrthogonal", err)
	}

	return orthogonalWithin(m, gatherOptions(opts...).eps)
}

// orthogonalWithin scans the upper triangle of MᵀM − I against tol.
func orthogonalWithin(m Matrix, tol float64) error {
	n := m.Rows()
	var (
		i, j, k  int
		aki, akj float64
		sum      float64
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ { // MᵀM is symmetric; scan the upper triangle
			sum = 0
			for k = 0; k < n; k++ {
				aki, _ = m.At(k, i)
				akj, _ = m.At(k, j)
				sum += aki * akj
			}
			if i == j {
				sum -= 1
			}
			if math.Abs(sum) > tol {
				return validatorErrorf(fmt.Sprintf("ValidateOrthogonal(%d,%d)", i, j), ErrNotOrthogonal)
			}
		}
	}

	return nil
}

// ValidateProperRotation checks that m is a 3×3 element of SO(3):
// orthogonal and det(m) = +1, both within the WithEpsilon tolerance.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (not 3×3), ErrNaNInf,
// ErrNotOrthogonal, ErrImproperRotation.
// Complexity: O(1) for the fixed 3×3 shape.
func ValidateProperRotation(m Matrix, opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateProperRotation", err)
	}
	if m.Rows() != rotationDim || m.Cols() != rotationDim {
		return validatorErrorf("ValidateProperRotation", ErrDimensionMismatch)
	}
	if err := ValidateFinite(m); err != nil {
		return validatorErrorf("ValidateProperRotation", err)
	}
	tol := gatherOptions(opts...).eps
	if err := orthogonalWithin(m, tol); err != nil {
		return validatorErrorf("ValidateProperRotation", err)
	}
	det, err := Det(m)
	if err != nil {
		return validatorErrorf("ValidateProperRotation", err)
	}
	if math.Abs(det-1) > tol {
		return validatorErrorf(fmt.Sprintf("ValidateProperRotation: det=%g", det), ErrImproperRotation)
	}

	return nil
}
