// Package matrix_test provides benchmarks for the dense kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvrot/matrix"
)

// benchSizes are the matrix sizes to benchmark; 3 is the rotation case.
var benchSizes = []int{3, 16, 64}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkV []float64
	sinkB bool
	sinkF float64
)

// benchDense returns an n×n matrix with entries in [-1, 1) plus n on the
// diagonal, so it is well conditioned for LU and Inverse.
func benchDense(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := 2*rng.Float64() - 1
			if i == j {
				v += float64(n)
			}
			if err = m.Set(i, j, v); err != nil {
				b.Fatal(err)
			}
		}
	}

	return m
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := benchDense(b, n, 1337), benchDense(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := benchDense(b, n, 5), benchDense(b, n, 6)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, 7)
			x := make([]float64, n)
			for i := range x {
				x[i] = float64(i) - 0.5
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := matrix.MatVec(A, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}

func BenchmarkLU(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, 8)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				L, _, err := matrix.LU(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = L
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, 9)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Inverse(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, 10)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Det(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

// BenchmarkValidateProperRotation measures the SO(3) membership check.
func BenchmarkValidateProperRotation(b *testing.B) {
	R, err := matrix.NewFromRows([][]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}})
	if err != nil {
		b.Fatal(err)
	}
	opts := []matrix.Option{matrix.WithEpsilon(1e-12)}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkB = matrix.ValidateProperRotation(R, opts...) == nil
	}
}
