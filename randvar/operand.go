package randvar

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/statkit/prob/linop"
	"github.com/statkit/prob/utils"
)

// operandKind enumerates the operand kinds every arithmetic operation
// dispatches on. Keeping the classification in one place makes the
// supported combinations an explicit table rather than type assertions
// scattered across call sites.
type operandKind int

const (
	kindInvalid operandKind = iota
	kindScalar
	kindArray
	kindMatrix
	kindOperator
	kindRandVar
)

func classify(x interface{}) operandKind {
	switch x.(type) {
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return kindScalar
	case []float64, *mat.VecDense:
		return kindArray
	case *mat.Dense:
		return kindMatrix
	case *RandomVariable:
		return kindRandVar
	case linop.LinearOperator:
		return kindOperator
	case mat.Matrix:
		return kindMatrix
	default:
		return kindInvalid
	}
}

// UnsupportedOperandError reports an arithmetic operation invoked with
// an operand kind outside the dispatch table.
type UnsupportedOperandError struct {
	Op      string
	Operand interface{}
}

func (e *UnsupportedOperandError) Error() string {
	return fmt.Sprintf("unsupported operand type %T for %s", e.Operand, e.Op)
}

func asScalar(x interface{}) float64 {
	s, err := utils.AsFloat(x)
	if err != nil {
		panic("randvar: operand classified as scalar but not coercible")
	}
	return s
}

func asVec(x interface{}) *mat.VecDense {
	switch v := x.(type) {
	case []float64:
		out := mat.NewVecDense(len(v), nil)
		for i, val := range v {
			out.SetVec(i, val)
		}
		return out
	case *mat.VecDense:
		out := mat.NewVecDense(v.Len(), nil)
		out.CopyVec(v)
		return out
	default:
		panic("randvar: operand classified as array but not a vector")
	}
}

func asMatrix(x interface{}) *mat.Dense {
	m, ok := x.(mat.Matrix)
	if !ok {
		panic("randvar: operand classified as matrix but not a mat.Matrix")
	}
	return mat.DenseCopyOf(m)
}

// constVec is a length-n vector with every entry equal to s.
func constVec(s float64, n int) *mat.VecDense {
	out := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		out.SetVec(i, s)
	}
	return out
}
