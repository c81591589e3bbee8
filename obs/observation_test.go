package obs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/statkit/prob/obs"
	"github.com/statkit/prob/utils"
)

func TestFunctionEvaluation(t *testing.T) {
	quadratic := func(x float64) interface{} {
		return 2*x*x - 3*x + 1
	}

	y, err := obs.FunctionEvaluation(quadratic, 2)
	require.NoError(t, err)
	require.InDelta(t, 3, y, 1e-12)
}

func TestFunctionEvaluationIntegerObservation(t *testing.T) {
	y, err := obs.FunctionEvaluation(func(x float64) interface{} { return int(7) }, 0)
	require.NoError(t, err)
	require.Equal(t, 7.0, y)
}

func TestFunctionEvaluationNonNumeric(t *testing.T) {
	_, err := obs.FunctionEvaluation(func(x float64) interface{} { return "oops" }, 1)

	var coercionErr *utils.TypeCoercionError
	require.ErrorAs(t, err, &coercionErr)
	require.Contains(t, err.Error(), "cannot cast")
	require.Contains(t, err.Error(), "float64")
	// The original cast failure is preserved as the cause.
	require.NotNil(t, coercionErr.Cause)
}
