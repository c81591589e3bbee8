package randvar

import (
	"gonum.org/v1/gonum/mat"

	"github.com/statkit/prob/dist"
	"github.com/statkit/prob/linop"
	"github.com/statkit/prob/utils"
)

func result(shape []int, d *dist.Normal, err error) (*RandomVariable, error) {
	if err != nil {
		return nil, err
	}
	return New(shape, d)
}

// rowMat is the 1-by-n matrix with v as its single row.
func rowMat(v *mat.VecDense) *mat.Dense {
	out := mat.NewDense(1, v.Len(), nil)
	for i := 0; i < v.Len(); i++ {
		out.Set(0, i, v.AtVec(i))
	}
	return out
}

// Add returns rv + x. A scalar broadcasts over every entry; an array or
// matrix must match the variable's shape; another random variable must
// match exactly and is assumed independent (covariances sum).
func (rv *RandomVariable) Add(x interface{}) (*RandomVariable, error) {
	switch classify(x) {
	case kindScalar:
		d, err := rv.dist.Shift(constVec(asScalar(x), rv.Size()))
		return result(rv.shape, d, err)
	case kindArray:
		v := asVec(x)
		if v.Len() != rv.Size() {
			return nil, &linop.ShapeError{Op: "broadcast add", Expected: rv.Size(), Actual: v.Len()}
		}
		d, err := rv.dist.Shift(v)
		return result(rv.shape, d, err)
	case kindMatrix:
		m := asMatrix(x)
		if err := rv.checkMatrixShape("broadcast add", m); err != nil {
			return nil, err
		}
		d, err := rv.dist.Shift(utils.Vec(m))
		return result(rv.shape, d, err)
	case kindRandVar:
		other := x.(*RandomVariable)
		if !shapeEqual(rv.shape, other.shape) {
			return nil, &linop.ShapeError{Op: "random variable sum", Expected: rv.Size(), Actual: other.Size()}
		}
		d, err := rv.dist.Add(other.dist)
		return result(rv.shape, d, err)
	default:
		return nil, &UnsupportedOperandError{Op: "add", Operand: x}
	}
}

// Sub returns rv - x.
func (rv *RandomVariable) Sub(x interface{}) (*RandomVariable, error) {
	switch classify(x) {
	case kindScalar:
		d, err := rv.dist.Shift(constVec(-asScalar(x), rv.Size()))
		return result(rv.shape, d, err)
	case kindArray:
		v := asVec(x)
		if v.Len() != rv.Size() {
			return nil, &linop.ShapeError{Op: "broadcast sub", Expected: rv.Size(), Actual: v.Len()}
		}
		v.ScaleVec(-1, v)
		d, err := rv.dist.Shift(v)
		return result(rv.shape, d, err)
	case kindMatrix:
		m := asMatrix(x)
		if err := rv.checkMatrixShape("broadcast sub", m); err != nil {
			return nil, err
		}
		v := utils.Vec(m)
		v.ScaleVec(-1, v)
		d, err := rv.dist.Shift(v)
		return result(rv.shape, d, err)
	case kindRandVar:
		other := x.(*RandomVariable)
		if !shapeEqual(rv.shape, other.shape) {
			return nil, &linop.ShapeError{Op: "random variable difference", Expected: rv.Size(), Actual: other.Size()}
		}
		d, err := rv.dist.Add(other.dist.Scale(-1))
		return result(rv.shape, d, err)
	default:
		return nil, &UnsupportedOperandError{Op: "sub", Operand: x}
	}
}

// Mul returns the scalar or elementwise product rv * x. A scalar scales
// the mean by x and the covariance by x²; an array or matrix of the
// variable's shape scales elementwise through a diagonal operator.
func (rv *RandomVariable) Mul(x interface{}) (*RandomVariable, error) {
	switch classify(x) {
	case kindScalar:
		return result(rv.shape, rv.dist.Scale(asScalar(x)), nil)
	case kindArray:
		v := asVec(x)
		if v.Len() != rv.Size() {
			return nil, &linop.ShapeError{Op: "elementwise mul", Expected: rv.Size(), Actual: v.Len()}
		}
		d, err := rv.dist.AffineTransform(linop.NewScaling(v), nil)
		return result(rv.shape, d, err)
	case kindMatrix:
		m := asMatrix(x)
		if err := rv.checkMatrixShape("elementwise mul", m); err != nil {
			return nil, err
		}
		d, err := rv.dist.AffineTransform(linop.NewScaling(utils.Vec(m)), nil)
		return result(rv.shape, d, err)
	default:
		return nil, &UnsupportedOperandError{Op: "mul", Operand: x}
	}
}

// MatMul returns the matrix product rv @ x. A vector operand on a
// vector variable is the dot product and yields a scalar variable; a
// matrix operand on a matrix-shaped variable acts on the vectorized
// distribution through the Kronecker operator I ⊗ xᵀ, so a structured
// covariance is never materialized.
func (rv *RandomVariable) MatMul(x interface{}) (*RandomVariable, error) {
	switch classify(x) {
	case kindScalar:
		return rv.Mul(x)
	case kindArray:
		v := asVec(x)
		if len(rv.shape) <= 1 {
			if v.Len() != rv.Size() {
				return nil, &linop.ShapeError{Op: "dot product", Expected: rv.Size(), Actual: v.Len()}
			}
			d, err := rv.dist.AffineTransform(linop.NewMatrix(rowMat(v)), nil)
			return result(nil, d, err)
		}
		m, n := rv.shape[0], rv.shape[1]
		if v.Len() != n {
			return nil, &linop.ShapeError{Op: "matmul", Expected: n, Actual: v.Len()}
		}
		op := linop.NewKronecker(utils.Eye(m), rowMat(v))
		d, err := rv.dist.AffineTransform(op, nil)
		return result([]int{m}, d, err)
	case kindMatrix:
		a := asMatrix(x)
		r, c := a.Dims()
		if len(rv.shape) <= 1 {
			if r != rv.Size() {
				return nil, &linop.ShapeError{Op: "matmul", Expected: rv.Size(), Actual: r}
			}
			d, err := rv.dist.AffineTransform(linop.NewMatrix(a.T()), nil)
			if c == 1 {
				// Contraction against a single column is a dot product.
				return result(nil, d, err)
			}
			return result([]int{c}, d, err)
		}
		m, n := rv.shape[0], rv.shape[1]
		if r != n {
			return nil, &linop.ShapeError{Op: "matmul", Expected: n, Actual: r}
		}
		op := linop.NewKronecker(utils.Eye(m), a.T())
		d, err := rv.dist.AffineTransform(op, nil)
		return result([]int{m, c}, d, err)
	default:
		return nil, &UnsupportedOperandError{Op: "matmul", Operand: x}
	}
}

// RMatMul returns the product x @ rv with the random variable on the
// right. Matrix and vector operands contract against the leading
// dimension; a LinearOperator operand acts on the vectorized
// distribution and yields a vector variable of the operator's row count.
func (rv *RandomVariable) RMatMul(x interface{}) (*RandomVariable, error) {
	switch classify(x) {
	case kindScalar:
		return rv.Mul(x)
	case kindArray:
		v := asVec(x)
		if len(rv.shape) <= 1 {
			if v.Len() != rv.Size() {
				return nil, &linop.ShapeError{Op: "dot product", Expected: rv.Size(), Actual: v.Len()}
			}
			d, err := rv.dist.AffineTransform(linop.NewMatrix(rowMat(v)), nil)
			return result(nil, d, err)
		}
		m, n := rv.shape[0], rv.shape[1]
		if v.Len() != m {
			return nil, &linop.ShapeError{Op: "matmul", Expected: m, Actual: v.Len()}
		}
		op := linop.NewKronecker(rowMat(v), utils.Eye(n))
		d, err := rv.dist.AffineTransform(op, nil)
		return result([]int{n}, d, err)
	case kindMatrix:
		a := asMatrix(x)
		p, q := a.Dims()
		if len(rv.shape) <= 1 {
			if q != rv.Size() {
				return nil, &linop.ShapeError{Op: "matmul", Expected: rv.Size(), Actual: q}
			}
			d, err := rv.dist.AffineTransform(linop.NewMatrix(a), nil)
			return result([]int{p}, d, err)
		}
		m, n := rv.shape[0], rv.shape[1]
		if q != m {
			return nil, &linop.ShapeError{Op: "matmul", Expected: m, Actual: q}
		}
		op := linop.NewKronecker(a, utils.Eye(n))
		d, err := rv.dist.AffineTransform(op, nil)
		return result([]int{p, n}, d, err)
	case kindOperator:
		op := x.(linop.LinearOperator)
		rows, cols := op.Dims()
		if cols != rv.Size() {
			return nil, &linop.ShapeError{Op: "operator matmul", Expected: rv.Size(), Actual: cols}
		}
		d, err := rv.dist.AffineTransform(op, nil)
		return result([]int{rows}, d, err)
	default:
		return nil, &UnsupportedOperandError{Op: "matmul", Operand: x}
	}
}

func (rv *RandomVariable) checkMatrixShape(op string, m *mat.Dense) error {
	r, c := m.Dims()
	if len(rv.shape) != 2 || rv.shape[0] != r || rv.shape[1] != c {
		return &linop.ShapeError{Op: op, Expected: rv.Size(), Actual: r * c}
	}
	return nil
}
