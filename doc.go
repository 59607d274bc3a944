// Package lvrot is a small toolkit for finite rotations in 3D, aimed at
// building and linearising beam and shell meshes.
//
// 🚀 What is lvrot?
//
//	A pure-Go library that brings together:
//		• Rotation: an immutable SO(3) value built from axis–angle, rotation
//		  vector, quaternion, rotation matrix or two base vectors
//		• Group operations: Compose, Inverse, Apply, Relative, Slerp
//		• Smallest-rotation mapping of a triad onto a new tangent
//		• Transformation matrices T and T⁻¹ between additive and
//		  multiplicative rotation increments
//		• Centerline: twist-free triads along a discrete space curve
//
// ✨ Why choose lvrot?
//
//   - Explicit names: no overloaded operators, Compose applies its argument first
//   - Sign-insensitive equality: q and −q are one rotation
//   - Stable small-angle limits: no division by tiny angles
//   - Values, not pointers: safe to share between goroutines
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/     — dense row-major matrices, kernels and SO(3) validators
//	rotation/   — the Rotation type and its operations
//	centerline/ — triads along a polyline via smallest rotations
//
// Quick example:
//
//	rx, _ := rotation.FromAxisAngle(r3.Vec{X: 1}, math.Pi/2)
//	v := rx.Apply(r3.Vec{Y: 1}) // (0, 0, 1)
//
// A runnable walkthrough lives in examples/so3_tutorial.
//
//	go get github.com/katalvlaran/lvrot/rotation
package lvrot
