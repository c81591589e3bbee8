package randvar

import (
	"gonum.org/v1/gonum/mat"

	"github.com/statkit/prob/dist"
	"github.com/statkit/prob/linop"
	"github.com/statkit/prob/utils"
)

// AsRandomVariable coerces a constant into a degenerate random variable:
// a Normal with the value as mean and zero covariance. Numbers, float
// slices, gonum vectors and matrices are accepted; non-finite scalars
// (NaN, ±Inf) are valid degenerate means. A random variable passes
// through unchanged. Anything else fails with a TypeCoercionError.
func AsRandomVariable(value interface{}) (*RandomVariable, error) {
	switch v := value.(type) {
	case *RandomVariable:
		return v, nil
	case []float64:
		if len(v) == 0 {
			return nil, &linop.ShapeError{Op: "coerce array", Expected: 1, Actual: 0}
		}
		return New([]int{len(v)}, dist.Dirac(asVec(v)))
	case *mat.VecDense:
		if v.Len() == 0 {
			return nil, &linop.ShapeError{Op: "coerce vector", Expected: 1, Actual: 0}
		}
		return New([]int{v.Len()}, dist.Dirac(asVec(v)))
	case *mat.Dense:
		r, c := v.Dims()
		return New([]int{r, c}, dist.Dirac(utils.Vec(v)))
	default:
		s, err := utils.AsFloat(value)
		if err != nil {
			return nil, err
		}
		return New(nil, dist.Dirac(mat.NewVecDense(1, []float64{s})))
	}
}
