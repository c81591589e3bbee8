// Package randvar provides random variables: shaped values described by
// a probability distribution rather than a fixed number, supporting
// arithmetic with scalars, arrays, matrices, linear operators and other
// random variables, with closed-form propagation of the distribution
// parameters through every operation.
package randvar

import (
	"reflect"

	"gonum.org/v1/gonum/mat"

	"github.com/statkit/prob/dist"
	"github.com/statkit/prob/linop"
	"github.com/statkit/prob/utils"
)

// RandomVariable is a shaped wrapper around a Normal distribution. The
// shape is scalar (empty), vector (one dim) or matrix (two dims); the
// distribution holds the row-major vectorized mean and the matching
// covariance operator. Instances are immutable: every arithmetic
// operation returns a fresh random variable and never mutates its
// operands.
type RandomVariable struct {
	shape []int
	dist  *dist.Normal
}

// New validates that the product of the shape dimensions matches the
// distribution dimension. At most two dimensions are supported.
func New(shape []int, d *dist.Normal) (*RandomVariable, error) {
	if len(shape) > 2 {
		return nil, &linop.ShapeError{Op: "random variable rank", Expected: 2, Actual: len(shape)}
	}
	n := 1
	for _, s := range shape {
		if s < 1 {
			return nil, &linop.ShapeError{Op: "random variable shape", Expected: 1, Actual: s}
		}
		n *= s
	}
	if n != d.Dim() {
		return nil, &linop.ShapeError{Op: "random variable shape", Expected: d.Dim(), Actual: n}
	}
	out := make([]int, len(shape))
	copy(out, shape)
	return &RandomVariable{shape: out, dist: d}, nil
}

// Shape returns a copy of the shape. A scalar has an empty shape.
func (rv *RandomVariable) Shape() []int {
	out := make([]int, len(rv.shape))
	copy(out, rv.shape)
	return out
}

// Size is the total number of entries.
func (rv *RandomVariable) Size() int {
	n := 1
	for _, s := range rv.shape {
		n *= s
	}
	return n
}

func (rv *RandomVariable) Dtype() reflect.Kind {
	return reflect.Float64
}

// MeanVec returns the row-major vectorized mean.
func (rv *RandomVariable) MeanVec() *mat.VecDense {
	return rv.dist.Mean()
}

// Mean returns the mean reshaped to the variable's shape: a scalar
// becomes 1x1, a vector n-by-1.
func (rv *RandomVariable) Mean() *mat.Dense {
	m := rv.dist.Mean()
	switch len(rv.shape) {
	case 0:
		return utils.Unvec(m, 1, 1)
	case 1:
		return utils.Unvec(m, rv.shape[0], 1)
	default:
		return utils.Unvec(m, rv.shape[0], rv.shape[1])
	}
}

// Cov returns the covariance of the vectorized variable. Call Dense on
// the result to materialize it.
func (rv *RandomVariable) Cov() linop.LinearOperator {
	return rv.dist.Cov()
}

// Dist returns the underlying distribution.
func (rv *RandomVariable) Dist() *dist.Normal {
	return rv.dist
}

func shapeEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
