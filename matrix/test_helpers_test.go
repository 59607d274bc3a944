// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures for the kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvrot/matrix"
)

// hide wraps any Matrix to hide its concrete type, forcing the generic
// At/Set paths in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t *testing.T, rows ...[]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// rotZ returns the rotation matrix about z by angle a.
func rotZ(t *testing.T, a float64) *matrix.Dense {
	t.Helper()
	c, s := math.Cos(a), math.Sin(a)

	return MustRows(t,
		[]float64{c, -s, 0},
		[]float64{s, c, 0},
		[]float64{0, 0, 1},
	)
}

// flatten reads m through the interface into a row-major slice.
func flatten(m matrix.Matrix) []float64 {
	out := make([]float64, 0, m.Rows()*m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			out = append(out, v)
		}
	}

	return out
}
