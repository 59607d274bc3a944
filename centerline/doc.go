// Package centerline computes twist-free triads along a discrete space curve.
//
// 🚀 What is it for?
//
//	Beam meshes need a nodal triad at every point of the centerline whose
//	first base vector follows the tangent. Chaining smallest-rotation
//	mappings from node to node yields such triads without spurious twist.
//
// ✨ Key features:
//   - Build from an ordered list of points (piecewise-linear arc length)
//   - deterministic initial triad, or a caller-provided one
//   - At(s): position and interpolated triad at any arc length
//   - Rotate: rigid rotation of the whole curve about a point
//
// ⚙️ Usage:
//
//	c, err := centerline.Build(points)
//	pos, triad, err := c.At(0.5 * c.Length())
//
// Concurrency:
//
//	A *Centerline is immutable after Build and safe for concurrent reads.
package centerline
