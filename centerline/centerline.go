// SPDX-License-Identifier: MIT

package centerline

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvrot/rotation"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Centerline is a polyline with one triad per point. The first base vector of
// every triad is the nodal tangent. Use Build; the zero value holds no points,
// has Length 0 and rejects every At.
type Centerline struct {
	points   []r3.Vec
	arc      []float64 // arc[0] = 0, strictly increasing
	tangents []r3.Vec  // unit
	triads   []rotation.Rotation
}

// Build computes arc lengths, nodal tangents and triads for points.
//
// Implementation:
//   - Stage 1: segment lengths; arc length is their running sum.
//   - Stage 2: tangents. End points use their single segment; interior
//     points average the unit tangents of the adjacent segments.
//   - Stage 3: triads. The first comes from FromBasis(t₀, e_k) with e_k the
//     Cartesian axis of smallest |e_k·t₀| (or from WithInitialRotation);
//     each following one is SmallestRotation(previous, tᵢ).
//
// Errors: ErrTooFewPoints, ErrDegenerateSegment, rotation.ErrNonFinite.
// Complexity: O(n).
func Build(points []r3.Vec, opts ...Option) (*Centerline, error) {
	n := len(points)
	if n < 2 {
		return nil, fmt.Errorf("Build(%d points): %w", n, ErrTooFewPoints)
	}
	o := gatherOptions(opts...)

	// Stage 1
	lengths := make([]float64, n-1)
	units := make([]r3.Vec, n-1)
	for i := 0; i < n-1; i++ {
		d := r3.Sub(points[i+1], points[i])
		l := r3.Norm(d)
		if math.IsNaN(l) || math.IsInf(l, 0) {
			return nil, fmt.Errorf("Build: segment %d: %w", i, rotation.ErrNonFinite)
		}
		if l == 0 {
			return nil, fmt.Errorf("Build: segment %d: coincident points: %w", i, ErrDegenerateSegment)
		}
		lengths[i] = l
		units[i] = r3.Scale(1/l, d)
	}
	arc := make([]float64, n)
	floats.CumSum(arc[1:], lengths)

	// Stage 2
	tangents := make([]r3.Vec, n)
	tangents[0] = units[0]
	tangents[n-1] = units[n-2]
	for i := 1; i < n-1; i++ {
		avg := r3.Add(units[i-1], units[i])
		norm := r3.Norm(avg)
		if norm == 0 {
			return nil, fmt.Errorf("Build: point %d: curve folds back: %w", i, ErrDegenerateSegment)
		}
		tangents[i] = r3.Scale(1/norm, avg)
	}

	// Stage 3
	triads := make([]rotation.Rotation, n)
	var err error
	if o.hasInitial {
		triads[0], err = rotation.SmallestRotation(o.initial, tangents[0])
	} else {
		triads[0], err = rotation.FromBasis(tangents[0], leastAlignedAxis(tangents[0]))
	}
	if err != nil {
		return nil, fmt.Errorf("Build: initial triad: %w", err)
	}
	for i := 1; i < n; i++ {
		if triads[i], err = rotation.SmallestRotation(triads[i-1], tangents[i]); err != nil {
			return nil, fmt.Errorf("Build: triad %d: %w", i, err)
		}
	}

	pts := make([]r3.Vec, n)
	copy(pts, points)

	return &Centerline{points: pts, arc: arc, tangents: tangents, triads: triads}, nil
}

// leastAlignedAxis returns the Cartesian basis vector with the smallest
// |e_k·t|; ties go to the lower index.
func leastAlignedAxis(t r3.Vec) r3.Vec {
	axes := [3]r3.Vec{{X: 1}, {Y: 1}, {Z: 1}}
	proj := []float64{math.Abs(t.X), math.Abs(t.Y), math.Abs(t.Z)}

	return axes[floats.MinIdx(proj)]
}

// Len returns the number of points.
func (c *Centerline) Len() int { return len(c.points) }

// Length returns the total arc length, 0 for a zero Centerline.
func (c *Centerline) Length() float64 {
	if len(c.arc) == 0 {
		return 0
	}

	return c.arc[len(c.arc)-1]
}

// ArcLengths returns a copy of the arc length at every point.
func (c *Centerline) ArcLengths() []float64 {
	out := make([]float64, len(c.arc))
	copy(out, c.arc)

	return out
}

// Points returns a copy of the points.
func (c *Centerline) Points() []r3.Vec {
	out := make([]r3.Vec, len(c.points))
	copy(out, c.points)

	return out
}

// Tangents returns a copy of the unit nodal tangents.
func (c *Centerline) Tangents() []r3.Vec {
	out := make([]r3.Vec, len(c.tangents))
	copy(out, c.tangents)

	return out
}

// Triads returns a copy of the nodal triads.
func (c *Centerline) Triads() []rotation.Rotation {
	out := make([]rotation.Rotation, len(c.triads))
	copy(out, c.triads)

	return out
}

// At returns the position and triad at arc length s. Positions are linear
// between points; triads are interpolated with rotation.Slerp.
//
// Errors: ErrOutOfRange when s is outside [0, Length()] or NaN.
// Complexity: O(log n).
func (c *Centerline) At(s float64) (r3.Vec, rotation.Rotation, error) {
	if len(c.arc) == 0 || !(s >= 0 && s <= c.Length()) {
		return r3.Vec{}, rotation.Rotation{}, fmt.Errorf("At(%g) with length %g: %w", s, c.Length(), ErrOutOfRange)
	}
	i := sort.SearchFloat64s(c.arc, s) // first i with arc[i] >= s
	if c.arc[i] == s {
		return c.points[i], c.triads[i], nil
	}
	t := (s - c.arc[i-1]) / (c.arc[i] - c.arc[i-1])
	pos := r3.Add(c.points[i-1], r3.Scale(t, r3.Sub(c.points[i], c.points[i-1])))
	triad, err := rotation.Slerp(c.triads[i-1], c.triads[i], t)
	if err != nil {
		return r3.Vec{}, rotation.Rotation{}, fmt.Errorf("At(%g): %w", s, err)
	}

	return pos, triad, nil
}

// Rotate returns a copy of c rotated rigidly by rot about origin. Points and
// tangents are rotated; triads become rot∘triad. Arc lengths are unchanged.
func (c *Centerline) Rotate(rot rotation.Rotation, origin r3.Vec) *Centerline {
	triads, _ := rotation.ComposeEach([]rotation.Rotation{rot}, c.triads) // length 1 always broadcasts
	tangents := make([]r3.Vec, len(c.tangents))
	for i, t := range c.tangents {
		tangents[i] = rot.Apply(t)
	}

	return &Centerline{
		points:   rotation.RotateCoordinates(c.points, rot, origin),
		arc:      c.ArcLengths(),
		tangents: tangents,
		triads:   triads,
	}
}
