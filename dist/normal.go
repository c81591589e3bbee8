// Package dist provides the Normal (Gaussian) distribution model used
// by random variables: a vectorized mean together with a covariance
// held as a linear operator, and the closed-form propagation rules for
// shifting, scaling, summing and affine-transforming it.
package dist

import (
	"gonum.org/v1/gonum/mat"

	"github.com/statkit/prob/linop"
)

// Normal is a Gaussian law over a vector of dimension Dim. The
// covariance is a Dim-by-Dim linear operator; structured covariances
// (e.g. symmetric Kronecker) are applied, never materialized, by the
// propagation rules. Instances are immutable: every operation returns
// a fresh distribution.
type Normal struct {
	mean *mat.VecDense
	cov  linop.LinearOperator
}

// NewNormal validates that cov is square with side mean.Len().
func NewNormal(mean *mat.VecDense, cov linop.LinearOperator) (*Normal, error) {
	n := mean.Len()
	rows, cols := cov.Dims()
	if rows != cols {
		return nil, &linop.ShapeError{Op: "normal covariance", Expected: rows, Actual: cols}
	}
	if rows != n {
		return nil, &linop.ShapeError{Op: "normal covariance", Expected: n, Actual: rows}
	}
	out := mat.NewVecDense(n, nil)
	out.CopyVec(mean)
	return &Normal{mean: out, cov: cov}, nil
}

// Dirac builds a degenerate distribution: the given mean with zero
// covariance.
func Dirac(mean *mat.VecDense) *Normal {
	out := mat.NewVecDense(mean.Len(), nil)
	out.CopyVec(mean)
	return &Normal{
		mean: out,
		cov:  linop.NewUniformScaling(0, mean.Len()),
	}
}

func (d *Normal) Dim() int {
	return d.mean.Len()
}

// Mean returns a copy of the vectorized mean.
func (d *Normal) Mean() *mat.VecDense {
	out := mat.NewVecDense(d.mean.Len(), nil)
	out.CopyVec(d.mean)
	return out
}

func (d *Normal) Cov() linop.LinearOperator {
	return d.cov
}

// Shift adds a constant: mean' = mean + b, covariance unchanged.
func (d *Normal) Shift(b *mat.VecDense) (*Normal, error) {
	if b.Len() != d.mean.Len() {
		return nil, &linop.ShapeError{Op: "normal shift", Expected: d.mean.Len(), Actual: b.Len()}
	}
	out := mat.NewVecDense(d.mean.Len(), nil)
	out.AddVec(d.mean, b)
	return &Normal{mean: out, cov: d.cov}, nil
}

// Scale multiplies by a scalar: mean' = alpha·mean, cov' = alpha²·cov.
func (d *Normal) Scale(alpha float64) *Normal {
	out := mat.NewVecDense(d.mean.Len(), nil)
	out.ScaleVec(alpha, d.mean)
	return &Normal{mean: out, cov: linop.Scale(alpha*alpha, d.cov)}
}

// Add sums two distributions assuming independence: means add and
// covariances add. The caller is responsible for the independence
// precondition.
func (d *Normal) Add(other *Normal) (*Normal, error) {
	if other.mean.Len() != d.mean.Len() {
		return nil, &linop.ShapeError{Op: "normal sum", Expected: d.mean.Len(), Actual: other.mean.Len()}
	}
	mean := mat.NewVecDense(d.mean.Len(), nil)
	mean.AddVec(d.mean, other.mean)
	cov, err := linop.Add(d.cov, other.cov)
	if err != nil {
		return nil, err
	}
	return &Normal{mean: mean, cov: cov}, nil
}

// AffineTransform maps the distribution through y = op·x + b:
// mean' = op·mean + b and cov' = op·cov·opᵀ. The covariance update
// applies the (possibly structured) covariance operator once per output
// row and never materializes it. A nil b means no shift.
func (d *Normal) AffineTransform(op linop.LinearOperator, b *mat.VecDense) (*Normal, error) {
	rows, cols := op.Dims()
	if cols != d.mean.Len() {
		return nil, &linop.ShapeError{Op: "affine transform", Expected: d.mean.Len(), Actual: cols}
	}
	mean, err := op.Apply(d.mean)
	if err != nil {
		return nil, err
	}
	if b != nil {
		if b.Len() != rows {
			return nil, &linop.ShapeError{Op: "affine shift", Expected: rows, Actual: b.Len()}
		}
		mean.AddVec(mean, b)
	}

	// cov'[i][j] = rᵢᵀ·cov·rⱼ where rᵢ is the i-th row of op.
	opT := op.T()
	rs := make([]*mat.VecDense, rows)
	ts := make([]*mat.VecDense, rows)
	e := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		e.SetVec(i, 1)
		rs[i], err = opT.Apply(e)
		if err != nil {
			return nil, err
		}
		e.SetVec(i, 0)
		ts[i], err = d.cov.Apply(rs[i])
		if err != nil {
			return nil, err
		}
	}
	cov := mat.NewDense(rows, rows, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < rows; j++ {
			cov.Set(i, j, mat.Dot(rs[i], ts[j]))
		}
	}
	return &Normal{mean: mean, cov: linop.NewMatrix(cov)}, nil
}
