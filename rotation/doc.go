// Package rotation represents finite rotations, the elements of SO(3), as
// immutable unit-quaternion values.
//
// 🚀 What is it for?
//
//	Beam and shell finite elements carry a triad (an orthonormal frame) at
//	every node. Building meshes means creating, composing and comparing such
//	triads, and linearising them requires the transformation matrix T between
//	additive and multiplicative rotation increments.
//
// ✨ Key features:
//   - constructors from axis–angle, rotation vector, quaternion, rotation
//     matrix (verified to be in SO(3)) and from two base vectors
//   - canonical output: quaternion with non-negative scalar part, rotation
//     vector with angle in [0, π], rotation matrix, base vectors
//   - Compose (apply right operand first), Inverse, Apply, Relative, Slerp
//   - sign-insensitive, tolerance-based Equal (q and −q are one rotation)
//   - SmallestRotation: twist-free update of a triad onto a new tangent
//   - TransformationMatrix / TransformationMatrixInverse with stable
//     small-angle limits
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvrot/rotation"
//
//	rx, _ := rotation.FromAxisAngle(r3.Vec{X: 1}, math.Pi/2)
//	ry, _ := rotation.FromAxisAngle(r3.Vec{Y: 1}, math.Pi/2)
//	both := rx.Compose(ry)            // ry first, then rx
//	v := both.Apply(r3.Vec{Z: 1})     // rotate a vector
//	same := both.Equal(ry.Compose(rx)) // false: SO(3) is not commutative
//
// Errors:
//
//	Every failure is an invalid argument; all sentinels wrap ErrInvalidArgument.
//
// Concurrency:
//
//	Rotation values are immutable and safe for concurrent use.
package rotation
