package rotation_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvrot/matrix"
	"github.com/katalvlaran/lvrot/rotation"
	"gonum.org/v1/gonum/spatial/r3"
)

// clean maps round-off residue to an exact zero so printed output is stable.
func clean(x float64) float64 {
	if math.Abs(x) < 1e-12 {
		return 0
	}

	return x
}

// ExampleFromAxisAngle builds a turn of π/3 about x and prints its quaternion.
func ExampleFromAxisAngle() {
	r, err := rotation.FromAxisAngle(r3.Vec{X: 1}, math.Pi/3)
	if err != nil {
		fmt.Println(err)
		return
	}
	q := r.Quaternion()
	fmt.Printf("w=%.4f x=%.4f y=%.4f z=%.4f\n", q.Real, q.Imag, q.Jmag, q.Kmag)
	fmt.Printf("angle=%.4f\n", r.Angle())
	// Output:
	// w=0.8660 x=0.5000 y=0.0000 z=0.0000
	// angle=1.0472
}

// ExampleRotation_Compose shows that the right operand is applied first and
// that the group is not commutative.
func ExampleRotation_Compose() {
	rx := rotation.MustFromAxisAngle(r3.Vec{X: 1}, math.Pi/2)
	ry := rotation.MustFromAxisAngle(r3.Vec{Y: 1}, math.Pi/2)

	v := rx.Compose(ry).Apply(r3.Vec{Z: 1})
	fmt.Printf("(%.1f, %.1f, %.1f)\n", clean(v.X), clean(v.Y), clean(v.Z))
	fmt.Println(rx.Compose(ry).Equal(ry.Compose(rx)))
	// Output:
	// (1.0, 0.0, 0.0)
	// false
}

// ExampleRotation_Equal compares the two quaternions of one rotation.
func ExampleRotation_Equal() {
	a := rotation.MustFromAxisAngle(r3.Vec{Z: 1}, math.Pi/2)
	b := rotation.MustFromAxisAngle(r3.Vec{Z: -1}, 3*math.Pi/2) // same rotation, opposite sign
	fmt.Println(a.Equal(b))
	// Output:
	// true
}

// ExampleSmallestRotation turns the identity triad onto the tangent (1, 0.5, 0).
func ExampleSmallestRotation() {
	sr, err := rotation.SmallestRotation(rotation.Identity(), r3.Vec{X: 1, Y: 0.5})
	if err != nil {
		fmt.Println(err)
		return
	}
	g1 := sr.FirstBaseVector()
	psi := sr.RotationVector()
	fmt.Printf("g1  = (%.4f, %.4f, %.4f)\n", clean(g1.X), clean(g1.Y), clean(g1.Z))
	fmt.Printf("psi = (%.4f, %.4f, %.4f)\n", clean(psi.X), clean(psi.Y), clean(psi.Z))
	// Output:
	// g1  = (0.8944, 0.4472, 0.0000)
	// psi = (0.0000, 0.0000, 0.4636)
}

// ExampleRotation_TransformationMatrix checks that T and T⁻¹ are inverse.
func ExampleRotation_TransformationMatrix() {
	r, _ := rotation.FromRotationVector(r3.Vec{X: 0.3, Y: -0.4, Z: 0.5})
	prod, _ := matrix.Mul(r.TransformationMatrix(), r.TransformationMatrixInverse())
	id, _ := matrix.NewIdentity(3)
	ok, _ := matrix.AllClose(prod, id, 0, 1e-12)
	fmt.Println(ok)
	// Output:
	// true
}
