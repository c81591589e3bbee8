package linop

import (
	"gonum.org/v1/gonum/mat"

	"github.com/statkit/prob/utils"
)

var _ LinearOperator = (*Kronecker)(nil)

// Kronecker is the Kronecker product A ⊗ B as a linear operator. The
// action on a vector uses the identity (A ⊗ B) vec(X) = vec(A X Bᵀ)
// with row-major vectorization, so the product matrix is never built.
type Kronecker struct {
	a *mat.Dense
	b *mat.Dense
}

func NewKronecker(a, b mat.Matrix) *Kronecker {
	return &Kronecker{a: mat.DenseCopyOf(a), b: mat.DenseCopyOf(b)}
}

func (k *Kronecker) Dims() (rows, cols int) {
	ra, ca := k.a.Dims()
	rb, cb := k.b.Dims()
	return ra * rb, ca * cb
}

func (k *Kronecker) Apply(x *mat.VecDense) (*mat.VecDense, error) {
	_, ca := k.a.Dims()
	_, cb := k.b.Dims()
	if err := checkApplyDim("kronecker apply", ca*cb, x); err != nil {
		return nil, err
	}
	// vec(A X Bᵀ), X reshaped from x.
	X := utils.Unvec(x, ca, cb)
	var Y mat.Dense
	Y.Product(k.a, X, k.b.T())
	return utils.Vec(&Y), nil
}

func (k *Kronecker) T() LinearOperator {
	return NewKronecker(k.a.T(), k.b.T())
}

func (k *Kronecker) Dense() *mat.Dense {
	return kron(k.a, k.b)
}

var _ LinearOperator = (*SymmetricKronecker)(nil)

// SymmetricKronecker is the symmetrized Kronecker product A ⊗ₛ B of two
// square matrices of equal size n, acting on vectors of length n² as
// (A ⊗ₛ B) vec(X) = ½ vec(A X Bᵀ + B X Aᵀ). Applying it costs O(n³)
// rather than the O(n⁴) of materializing the n²-by-n² matrix.
type SymmetricKronecker struct {
	a *mat.Dense
	b *mat.Dense
	n int
}

func NewSymmetricKronecker(a, b mat.Matrix) (*SymmetricKronecker, error) {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ra != ca {
		return nil, &ShapeError{Op: "symmetric kronecker factor A", Expected: ra, Actual: ca}
	}
	if rb != cb {
		return nil, &ShapeError{Op: "symmetric kronecker factor B", Expected: rb, Actual: cb}
	}
	if rb != ra {
		return nil, &ShapeError{Op: "symmetric kronecker factor B", Expected: ra, Actual: rb}
	}
	return &SymmetricKronecker{a: mat.DenseCopyOf(a), b: mat.DenseCopyOf(b), n: ra}, nil
}

func (k *SymmetricKronecker) Dims() (rows, cols int) {
	return k.n * k.n, k.n * k.n
}

func (k *SymmetricKronecker) Apply(x *mat.VecDense) (*mat.VecDense, error) {
	if err := checkApplyDim("symmetric kronecker apply", k.n*k.n, x); err != nil {
		return nil, err
	}
	X := utils.Unvec(x, k.n, k.n)
	var Y1, Y2 mat.Dense
	Y1.Product(k.a, X, k.b.T())
	Y2.Product(k.b, X, k.a.T())
	Y1.Add(&Y1, &Y2)
	Y1.Scale(0.5, &Y1)
	return utils.Vec(&Y1), nil
}

// The symmetrized product is its own transpose.
func (k *SymmetricKronecker) T() LinearOperator {
	return k
}

func (k *SymmetricKronecker) Dense() *mat.Dense {
	out := kron(k.a, k.b)
	out.Add(out, kron(k.b, k.a))
	out.Scale(0.5, out)
	return out
}

// kron builds the dense Kronecker product of two matrices.
func kron(a, b *mat.Dense) *mat.Dense {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	out := mat.NewDense(ra*rb, ca*cb, nil)
	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			aij := a.At(i, j)
			for p := 0; p < rb; p++ {
				for q := 0; q < cb; q++ {
					out.Set(i*rb+p, j*cb+q, aij*b.At(p, q))
				}
			}
		}
	}
	return out
}
