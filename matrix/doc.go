// Package matrix offers the dense linear-algebra primitives used by the
// rotation and centerline packages.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe accessors (At/Set return
//     errors instead of panicking) and a configurable NaN/Inf policy.
//   - Kernels: Add, Sub, Scale, Mul, Transpose, MatVec, LU, Inverse, Det, AllClose.
//   - Validators for shape, finiteness, orthogonality and proper rotations
//     (orthogonal with determinant +1), the gatekeepers of SO(3) ingestion.
//
// Matrices here are small (3×3 in the rotation code paths); kernels favour
// clarity and deterministic loop orders over blocking or SIMD tricks.
//
// See the examples in this package for usage patterns.
package matrix
