package linop

import (
	"gonum.org/v1/gonum/mat"
)

var (
	matrix *Matrix
	_      LinearOperator = matrix // Check that Matrix respects the LinearOperator interface.
)

// Matrix is a dense matrix used as a linear operator.
type Matrix struct {
	a *mat.Dense
}

// NewMatrix wraps a copy of a as a linear operator.
func NewMatrix(a mat.Matrix) *Matrix {
	out := mat.DenseCopyOf(a)
	return &Matrix{a: out}
}

func (m *Matrix) Dims() (rows, cols int) {
	return m.a.Dims()
}

func (m *Matrix) Apply(x *mat.VecDense) (*mat.VecDense, error) {
	rows, cols := m.a.Dims()
	if err := checkApplyDim("matrix apply", cols, x); err != nil {
		return nil, err
	}
	out := mat.NewVecDense(rows, nil)
	out.MulVec(m.a, x)
	return out, nil
}

func (m *Matrix) T() LinearOperator {
	return NewMatrix(m.a.T())
}

func (m *Matrix) Dense() *mat.Dense {
	return mat.DenseCopyOf(m.a)
}

var _ LinearOperator = (*Identity)(nil)

// Identity is the identity map on vectors of a fixed length.
type Identity struct {
	n int
}

func NewIdentity(n int) *Identity {
	return &Identity{n: n}
}

func (id *Identity) Dims() (rows, cols int) {
	return id.n, id.n
}

func (id *Identity) Apply(x *mat.VecDense) (*mat.VecDense, error) {
	if err := checkApplyDim("identity apply", id.n, x); err != nil {
		return nil, err
	}
	out := mat.NewVecDense(id.n, nil)
	out.CopyVec(x)
	return out, nil
}

func (id *Identity) T() LinearOperator {
	return id
}

func (id *Identity) Dense() *mat.Dense {
	out := mat.NewDense(id.n, id.n, nil)
	for i := 0; i < id.n; i++ {
		out.Set(i, i, 1)
	}
	return out
}
