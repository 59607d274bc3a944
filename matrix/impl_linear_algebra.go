// SPDX-License-Identifier: MIT

// Package matrix - dense linear-algebra kernels.
//
// Purpose:
//   - Elementwise Add/Sub/Scale, Mul, Transpose, MatVec.
//   - Factorizations and derived quantities: LU (Doolittle), Inverse and Det
//     (Gaussian elimination with partial pivoting), AllClose.
//
// Contract:
//   - Inputs are never mutated; every kernel allocates a fresh result.
//   - Fast-paths operate on *Dense flat buffers; the fallback goes through At/Set
//     with fixed i→j(→k) loop orders so results are bitwise reproducible.
package matrix

import (
	"fmt"
	"math"
)

// Operation tags used in error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opLU        = "LU"
	opInverse   = "Inverse"
	opDet       = "Det"
	opAllClose  = "AllClose"
)

// ZeroSum is the accumulator seed used by the reduction loops.
const ZeroSum = 0.0

// matrixErrorf wraps err with a canonical operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense materializes any Matrix into a fresh *Dense copy.
// The NaN/Inf policy is relaxed on the copy; kernels validate explicitly.
func toDense(m Matrix) *Dense {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense)
	}
	out := &Dense{r: m.Rows(), c: m.Cols(), data: make([]float64, m.Rows()*m.Cols())}
	var v float64
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			v, _ = m.At(i, j)
			out.data[i*out.c+j] = v
		}
	}

	return out
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Complexity: O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, db := toDense(a), toDense(b)
	res := &Dense{r: da.r, c: da.c, data: make([]float64, len(da.data))}
	for k := range da.data {
		res.data[k] = da.data[k] + sign*db.data[k]
	}

	return res, nil
}

// Add returns a + b. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a − b. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha·m. Errors: ErrNilMatrix.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := toDense(m)
	for k := range res.data {
		res.data[k] *= alpha
	}

	return res, nil
}

// Mul returns the matrix product a·b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). Allocate Dense(a.Rows × b.Cols).
//   - Stage 2: i→k→j accumulation over flat buffers.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, db := toDense(a), toDense(b)
	aRows, aCols, bCols := da.r, da.c, db.c
	res := &Dense{r: aRows, c: bCols, data: make([]float64, aRows*bCols)}

	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src := toDense(m)
	res := &Dense{r: src.c, c: src.r, data: make([]float64, len(src.data))}
	for i := 0; i < src.r; i++ {
		for j := 0; j < src.c; j++ {
			res.data[j*res.c+i] = src.data[i*src.c+j]
		}
	}

	return res, nil
}

// MatVec returns y = m·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols()).
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d := toDense(m)
	y := make([]float64, d.r)
	var sum float64
	for i := 0; i < d.r; i++ {
		sum = ZeroSum
		for j := 0; j < d.c; j++ {
			sum += d.data[i*d.c+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// LU performs Doolittle LU decomposition (no pivoting) on a square matrix m.
// It returns L (unit lower triangular) and U (upper triangular).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular when a
// zero pivot would be divided by.
// Complexity: O(n³) time, O(n²) memory.
func LU(m Matrix) (Matrix, Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	a := toDense(m)
	n := a.r
	L := &Dense{r: n, c: n, data: make([]float64, n*n)}
	U := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		L.data[i*n+i] = 1
	}

	var (
		i, j, k int
		sum     float64
		uDiag   float64
	)
	for i = 0; i < n; i++ {
		// U's row i for columns j >= i
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * U.data[k*n+j]
			}
			U.data[i*n+j] = a.data[i*n+j] - sum
		}
		uDiag = U.data[i*n+i]
		// L's column i for rows j > i
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[j*n+k] * U.data[k*n+i]
			}
			if uDiag == 0 {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("zero pivot at %d: %w", i, ErrSingular))
			}
			L.data[j*n+i] = (a.data[j*n+i] - sum) / uDiag
		}
	}

	return L, U, nil
}

// eliminate runs Gaussian elimination with partial pivoting on a (n×n) and an
// optional right-hand side block rhs (n×m), both modified in place.
// Returns the determinant of the original matrix.
// A pivot with |p| ≤ pivotTol·scale is treated as zero.
func eliminate(a *Dense, rhs *Dense) (float64, error) {
	n := a.r
	det := 1.0
	scale := 0.0
	for _, v := range a.data {
		scale = math.Max(scale, math.Abs(v))
	}
	if scale == 0 {
		return 0, ErrSingular
	}
	pivotTol := 1e-14 * scale

	var (
		col, row, pr, j int
		best, f         float64
	)
	for col = 0; col < n; col++ {
		// choose the largest pivot in this column
		pr, best = col, math.Abs(a.data[col*n+col])
		for row = col + 1; row < n; row++ {
			if v := math.Abs(a.data[row*n+col]); v > best {
				pr, best = row, v
			}
		}
		if best <= pivotTol {
			return 0, fmt.Errorf("zero pivot at %d: %w", col, ErrSingular)
		}
		if pr != col {
			swapRows(a, pr, col)
			if rhs != nil {
				swapRows(rhs, pr, col)
			}
			det = -det
		}
		det *= a.data[col*n+col]
		for row = col + 1; row < n; row++ {
			f = a.data[row*n+col] / a.data[col*n+col]
			if f == 0 {
				continue
			}
			for j = col; j < n; j++ {
				a.data[row*n+j] -= f * a.data[col*n+j]
			}
			if rhs != nil {
				for j = 0; j < rhs.c; j++ {
					rhs.data[row*rhs.c+j] -= f * rhs.data[col*rhs.c+j]
				}
			}
		}
	}

	return det, nil
}

// swapRows exchanges rows p and q of d in place.
func swapRows(d *Dense, p, q int) {
	for j := 0; j < d.c; j++ {
		d.data[p*d.c+j], d.data[q*d.c+j] = d.data[q*d.c+j], d.data[p*d.c+j]
	}
}

// Inverse returns the inverse of the square matrix m.
// Blueprint:
//
//	Stage 1 (Validate): ensure m is square and finite.
//	Stage 2 (Eliminate): forward elimination with partial pivoting on [A | I].
//	Stage 3 (Back-substitute): solve U·X = Y column block at once.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrSingular.
// Complexity: O(n³) time, O(n²) memory.
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	a := toDense(m)
	n := a.r
	inv := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		inv.data[i*n+i] = 1
	}
	if _, err := eliminate(a, inv); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		i, k, col int
		sum       float64
	)
	for col = 0; col < n; col++ {
		for i = n - 1; i >= 0; i-- {
			sum = inv.data[i*n+col]
			for k = i + 1; k < n; k++ {
				sum -= a.data[i*n+k] * inv.data[k*n+col]
			}
			inv.data[i*n+col] = sum / a.data[i*n+i]
		}
	}

	return inv, nil
}

// Det returns the determinant of the square matrix m.
// A singular matrix yields (0, nil): a zero determinant is a valid answer here.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(n³).
func Det(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	if err := ValidateFinite(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	a := toDense(m)
	if a.r == rotationDim {
		// closed form keeps rotation checks free of pivot thresholds
		d := a.data

		return d[0]*(d[4]*d[8]-d[5]*d[7]) -
			d[1]*(d[3]*d[8]-d[5]*d[6]) +
			d[2]*(d[3]*d[7]-d[4]*d[6]), nil
	}
	det, err := eliminate(a, nil)
	if err != nil {
		return 0, nil
	}

	return det, nil
}

// AllClose reports whether |a[i,j] − b[i,j]| ≤ atol + rtol·|b[i,j]| for all i,j.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tolerances).
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if isNonFinite(rtol) || isNonFinite(atol) || rtol < 0 || atol < 0 {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	da, db := toDense(a), toDense(b)
	for k := range da.data {
		if math.Abs(da.data[k]-db.data[k]) > atol+rtol*math.Abs(db.data[k]) {
			return false, nil
		}
	}

	return true, nil
}
