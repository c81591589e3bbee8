package utils

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// Default tolerances for approximate equality.
const (
	DefaultRelTol = 1e-9
	DefaultAbsTol = 1e-12
)

// TypeCoercionError reports a value that cannot be interpreted as a
// float64. If the failure happened downstream, Cause holds the
// underlying error and is exposed through Unwrap.
type TypeCoercionError struct {
	Arg   string
	Value interface{}
	Cause error
}

func (e *TypeCoercionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot cast %s (%T) to float64: %v", e.Arg, e.Value, e.Cause)
	}
	return fmt.Sprintf("cannot cast %s (%T) to float64", e.Arg, e.Value)
}

func (e *TypeCoercionError) Unwrap() error {
	return e.Cause
}

// AsFloat coerces a numeric value to float64. Non-finite values (NaN,
// ±Inf) are accepted as-is.
func AsFloat(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	default:
		return 0, &TypeCoercionError{Arg: "value", Value: value}
	}
}

// Identity matrix.
func Eye(n int) *mat.Dense {
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		out.Set(i, i, 1)
	}
	return out
}

// Vec flattens a matrix into a vector, row-major.
func Vec(a mat.Matrix) *mat.VecDense {
	r, c := a.Dims()
	out := mat.NewVecDense(r*c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.SetVec(i*c+j, a.At(i, j))
		}
	}
	return out
}

// Unvec reshapes a vector of length r*c into an r-by-c matrix,
// row-major. It is the inverse of Vec.
func Unvec(v mat.Vector, r, c int) *mat.Dense {
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, v.AtVec(i*c+j))
		}
	}
	return out
}

// Close reports whether two scalars agree within the given relative and
// absolute tolerances.
func Close(a, b, relTol, absTol float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, absTol, relTol)
}

// AllClose reports whether two matrices have the same dimensions and
// agree entrywise within the given tolerances.
func AllClose(a, b mat.Matrix, relTol, absTol float64) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			if !Close(a.At(i, j), b.At(i, j), relTol, absTol) {
				return false
			}
		}
	}
	return true
}
