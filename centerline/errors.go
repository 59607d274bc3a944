// SPDX-License-Identifier: MIT
// Package centerline: sentinel errors.
// Callers match with errors.Is; messages carry the offending index or value.

package centerline

import "errors"

var (
	// ErrTooFewPoints is returned when fewer than two points are given.
	ErrTooFewPoints = errors.New("centerline: at least two points are required")

	// ErrDegenerateSegment is returned for coincident consecutive points or a
	// curve that folds back onto itself, where no tangent is defined.
	ErrDegenerateSegment = errors.New("centerline: degenerate segment")

	// ErrOutOfRange is returned when an arc length lies outside [0, Length()].
	ErrOutOfRange = errors.New("centerline: arc length out of range")
)
