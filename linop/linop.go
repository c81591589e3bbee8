// Package linop provides linear operators: maps that can be applied to
// a vector without necessarily materializing a dense matrix.
package linop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

type LinearOperator interface {
	// Dimensions of the map, rows by columns.
	Dims() (rows, cols int)

	// Apply the map to a vector of length cols.
	Apply(x *mat.VecDense) (*mat.VecDense, error)

	// The transposed map.
	T() LinearOperator

	// Dense materialization. Intended for testing and small problems,
	// not for the hot path.
	Dense() *mat.Dense
}

// ShapeError reports a dimension mismatch along a contraction.
type ShapeError struct {
	Op       string
	Expected int
	Actual   int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: dimension mismatch: expected %d, got %d",
		e.Op, e.Expected, e.Actual)
}

// checkApplyDim validates the length of an Apply argument.
func checkApplyDim(op string, cols int, x *mat.VecDense) error {
	if x.Len() != cols {
		return &ShapeError{Op: op, Expected: cols, Actual: x.Len()}
	}
	return nil
}
