// Package obs provides observation operators: bridges between
// caller-supplied objective functions and the scalar observations the
// probabilistic layer consumes.
package obs

import (
	"github.com/statkit/prob/utils"
)

// FunctionEvaluation observes a (possibly noisy) evaluation of an
// objective function at the given action. The value returned by fun is
// cast to float64; if the cast is impossible, the error is a
// TypeCoercionError naming the observation and wrapping the original
// cast failure.
func FunctionEvaluation(fun func(action float64) interface{}, action float64) (float64, error) {
	observation := fun(action)
	out, err := utils.AsFloat(observation)
	if err != nil {
		return 0, &utils.TypeCoercionError{
			Arg:   "observation returned by fun",
			Value: observation,
			Cause: err,
		}
	}
	return out, nil
}
