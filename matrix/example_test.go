package matrix_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvrot/matrix"
)

// ExampleValidateProperRotation checks that a quarter turn about z is in SO(3)
// while a mirror is rejected.
func ExampleValidateProperRotation() {
	quarter, _ := matrix.NewFromRows([][]float64{
		{0, -1, 0},
		{1, 0, 0},
		{0, 0, 1},
	})
	mirror, _ := matrix.NewFromRows([][]float64{
		{1, 0, 0},
		{0, -1, 0},
		{0, 0, 1},
	})

	fmt.Println(matrix.ValidateProperRotation(quarter) == nil)
	fmt.Println(matrix.ValidateProperRotation(mirror))
	// Output:
	// true
	// ValidateProperRotation: det=-1: matrix: determinant is not +1
}

// ExampleInverse inverts a rotation matrix, which equals its transpose.
func ExampleInverse() {
	c, s := math.Cos(math.Pi/6), math.Sin(math.Pi/6)
	r, _ := matrix.NewFromRows([][]float64{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	})
	inv, _ := matrix.Inverse(r)
	rt, _ := matrix.Transpose(r)
	same, _ := matrix.AllClose(inv, rt, 0, 1e-12)
	fmt.Println(same)
	// Output:
	// true
}
