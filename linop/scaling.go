package linop

import (
	"gonum.org/v1/gonum/mat"
)

var _ LinearOperator = (*Scaling)(nil)

// Scaling is a diagonal operator: it multiplies each entry of a vector
// by the corresponding diagonal factor.
type Scaling struct {
	d *mat.VecDense
}

// NewScaling builds a diagonal operator from a vector of factors.
func NewScaling(d *mat.VecDense) *Scaling {
	out := mat.NewVecDense(d.Len(), nil)
	out.CopyVec(d)
	return &Scaling{d: out}
}

// NewUniformScaling builds alpha times the identity on vectors of
// length n.
func NewUniformScaling(alpha float64, n int) *Scaling {
	d := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		d.SetVec(i, alpha)
	}
	return &Scaling{d: d}
}

func (s *Scaling) Dims() (rows, cols int) {
	return s.d.Len(), s.d.Len()
}

func (s *Scaling) Apply(x *mat.VecDense) (*mat.VecDense, error) {
	if err := checkApplyDim("scaling apply", s.d.Len(), x); err != nil {
		return nil, err
	}
	out := mat.NewVecDense(x.Len(), nil)
	out.MulElemVec(s.d, x)
	return out, nil
}

func (s *Scaling) T() LinearOperator {
	return s
}

func (s *Scaling) Dense() *mat.Dense {
	n := s.d.Len()
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		out.Set(i, i, s.d.AtVec(i))
	}
	return out
}

var _ LinearOperator = (*scaled)(nil)

// scaled is c times another operator. It preserves the structure of the
// wrapped operator instead of materializing it.
type scaled struct {
	c  float64
	op LinearOperator
}

// Scale returns the operator c times op.
func Scale(c float64, op LinearOperator) LinearOperator {
	return &scaled{c: c, op: op}
}

func (s *scaled) Dims() (rows, cols int) {
	return s.op.Dims()
}

func (s *scaled) Apply(x *mat.VecDense) (*mat.VecDense, error) {
	out, err := s.op.Apply(x)
	if err != nil {
		return nil, err
	}
	out.ScaleVec(s.c, out)
	return out, nil
}

func (s *scaled) T() LinearOperator {
	return &scaled{c: s.c, op: s.op.T()}
}

func (s *scaled) Dense() *mat.Dense {
	out := s.op.Dense()
	out.Scale(s.c, out)
	return out
}

var _ LinearOperator = (*sum)(nil)

// sum is the pointwise sum of two operators of equal dimensions.
type sum struct {
	first  LinearOperator
	second LinearOperator
}

// Add returns the operator first + second. The dimensions must match.
func Add(first, second LinearOperator) (LinearOperator, error) {
	r1, c1 := first.Dims()
	r2, c2 := second.Dims()
	if r1 != r2 {
		return nil, &ShapeError{Op: "operator sum rows", Expected: r1, Actual: r2}
	}
	if c1 != c2 {
		return nil, &ShapeError{Op: "operator sum cols", Expected: c1, Actual: c2}
	}
	return &sum{first: first, second: second}, nil
}

func (s *sum) Dims() (rows, cols int) {
	return s.first.Dims()
}

func (s *sum) Apply(x *mat.VecDense) (*mat.VecDense, error) {
	y1, err := s.first.Apply(x)
	if err != nil {
		return nil, err
	}
	y2, err := s.second.Apply(x)
	if err != nil {
		return nil, err
	}
	y1.AddVec(y1, y2)
	return y1, nil
}

func (s *sum) T() LinearOperator {
	return &sum{first: s.first.T(), second: s.second.T()}
}

func (s *sum) Dense() *mat.Dense {
	out := s.first.Dense()
	out.Add(out, s.second.Dense())
	return out
}
