// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvrot/matrix"
	"github.com/stretchr/testify/assert"
)

// TestOptionsDefaults checks the documented defaults.
func TestOptionsDefaults(t *testing.T) {
	o := matrix.NewOptions()
	assert.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	assert.Equal(t, matrix.DefaultValidateNaNInf, o.ValidatesNaNInf())
}

// TestOptionsApplyInOrder checks last-writer-wins and nil tolerance.
func TestOptionsApplyInOrder(t *testing.T) {
	o := matrix.NewOptions(matrix.WithEpsilon(1e-3), nil, matrix.WithNoValidateNaNInf(), matrix.WithEpsilon(1e-6))
	assert.Equal(t, 1e-6, o.Epsilon())
	assert.False(t, o.ValidatesNaNInf())

	o = matrix.NewOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	assert.True(t, o.ValidatesNaNInf())
}

// TestWithEpsilonPanics rejects nonsensical tolerances.
func TestWithEpsilonPanics(t *testing.T) {
	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		assert.Panics(t, func() { matrix.WithEpsilon(eps) })
	}
}
