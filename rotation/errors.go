// SPDX-License-Identifier: MIT
// Package rotation: sentinel error set.
// Every constructor failure is an invalid-argument contract violation; the
// specialised sentinels below all wrap ErrInvalidArgument, so callers can match
// either the broad kind or the precise cause with errors.Is.

package rotation

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the single error kind of this package: an input
// violated a precondition. It is never transient; retrying cannot help.
var ErrInvalidArgument = errors.New("rotation: invalid argument")

var (
	// ErrZeroAxis is returned for a zero axis combined with a non-zero angle.
	ErrZeroAxis = fmt.Errorf("%w: zero rotation axis", ErrInvalidArgument)

	// ErrZeroQuaternion is returned when a quaternion with zero norm is given.
	ErrZeroQuaternion = fmt.Errorf("%w: zero-norm quaternion", ErrInvalidArgument)

	// ErrZeroVector is returned when a direction vector has zero length.
	ErrZeroVector = fmt.Errorf("%w: zero-length direction", ErrInvalidArgument)

	// ErrNonFinite is returned when any input component is NaN or ±Inf.
	ErrNonFinite = fmt.Errorf("%w: NaN or Inf component", ErrInvalidArgument)

	// ErrNotRotationMatrix is returned when a matrix is not an element of SO(3).
	// The matrix package cause (ErrNotOrthogonal, ErrImproperRotation, ...) is
	// wrapped alongside it.
	ErrNotRotationMatrix = fmt.Errorf("%w: not a rotation matrix", ErrInvalidArgument)

	// ErrParallelBasis is returned by FromBasis when the second vector has no
	// component perpendicular to the first.
	ErrParallelBasis = fmt.Errorf("%w: basis vectors are parallel", ErrInvalidArgument)

	// ErrLengthMismatch is returned by batch operations on incompatible slices.
	ErrLengthMismatch = fmt.Errorf("%w: slice length mismatch", ErrInvalidArgument)

	// ErrInterpolationParameter is returned for interpolation parameters outside [0, 1].
	ErrInterpolationParameter = fmt.Errorf("%w: interpolation parameter outside [0, 1]", ErrInvalidArgument)

	// ErrBaseVectorIndex is returned for base vector indices outside {0, 1, 2}.
	ErrBaseVectorIndex = fmt.Errorf("%w: base vector index out of range", ErrInvalidArgument)
)
