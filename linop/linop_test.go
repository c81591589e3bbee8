package linop_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/statkit/prob/linop"
	"github.com/statkit/prob/utils"
)

func applyDense(t *testing.T, op linop.LinearOperator, x *mat.VecDense) *mat.VecDense {
	t.Helper()
	rows, _ := op.Dims()
	out := mat.NewVecDense(rows, nil)
	out.MulVec(op.Dense(), x)
	return out
}

func TestMatrixApply(t *testing.T) {
	a := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	op := linop.NewMatrix(a)

	rows, cols := op.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)

	y, err := op.Apply(mat.NewVecDense(3, []float64{1, 0, -1}))
	require.NoError(t, err)
	require.InDelta(t, -2, y.AtVec(0), 1e-12)
	require.InDelta(t, -2, y.AtVec(1), 1e-12)
}

func TestMatrixApplyShapeError(t *testing.T) {
	op := linop.NewMatrix(mat.NewDense(2, 3, nil))
	_, err := op.Apply(mat.NewVecDense(2, nil))

	var shapeErr *linop.ShapeError
	require.ErrorAs(t, err, &shapeErr)
	require.Equal(t, 3, shapeErr.Expected)
	require.Equal(t, 2, shapeErr.Actual)
}

func TestMatrixTranspose(t *testing.T) {
	a := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	op := linop.NewMatrix(a).T()

	rows, cols := op.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 2, cols)
	var want mat.Dense
	want.CloneFrom(a.T())
	require.True(t, utils.AllClose(op.Dense(), &want, utils.DefaultRelTol, utils.DefaultAbsTol))
}

func TestIdentity(t *testing.T) {
	id := linop.NewIdentity(3)
	x := mat.NewVecDense(3, []float64{1, -2, 4})

	y, err := id.Apply(x)
	require.NoError(t, err)
	require.True(t, mat.EqualApprox(x, y, 0))
	require.Same(t, linop.LinearOperator(id), id.T())
	require.True(t, utils.AllClose(id.Dense(), utils.Eye(3), 0, 0))
}

func TestScaling(t *testing.T) {
	s := linop.NewScaling(mat.NewVecDense(2, []float64{2, -3}))

	y, err := s.Apply(mat.NewVecDense(2, []float64{1, 1}))
	require.NoError(t, err)
	require.Equal(t, 2.0, y.AtVec(0))
	require.Equal(t, -3.0, y.AtVec(1))
	require.Equal(t, 2.0, s.Dense().At(0, 0))
	require.Equal(t, 0.0, s.Dense().At(0, 1))
}

func TestUniformScaling(t *testing.T) {
	s := linop.NewUniformScaling(0, 3)
	y, err := s.Apply(mat.NewVecDense(3, []float64{1, 2, 3}))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.Equal(t, 0.0, y.AtVec(i))
	}
}

func TestScale(t *testing.T) {
	op := linop.Scale(2, linop.NewMatrix(mat.NewDense(2, 2, []float64{1, 0, 0, 1})))
	x := mat.NewVecDense(2, []float64{3, -1})

	y, err := op.Apply(x)
	require.NoError(t, err)
	require.Equal(t, 6.0, y.AtVec(0))
	require.Equal(t, -2.0, y.AtVec(1))
	want := utils.Eye(2)
	want.Scale(2, want)
	require.True(t, utils.AllClose(op.Dense(), want, utils.DefaultRelTol, utils.DefaultAbsTol))
}

func TestAdd(t *testing.T) {
	a := linop.NewMatrix(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	b := linop.NewUniformScaling(10, 2)

	op, err := linop.Add(a, b)
	require.NoError(t, err)
	x := mat.NewVecDense(2, []float64{1, 1})
	y, err := op.Apply(x)
	require.NoError(t, err)
	require.True(t, mat.EqualApprox(y, applyDense(t, op, x), 1e-12))

	_, err = linop.Add(a, linop.NewIdentity(3))
	var shapeErr *linop.ShapeError
	require.True(t, errors.As(err, &shapeErr))
}

func TestKroneckerApplyMatchesDense(t *testing.T) {
	a := mat.NewDense(2, 3, []float64{1, -2, 0.5, 3, 1, -1})
	b := mat.NewDense(2, 2, []float64{2, 1, 0, -1})
	op := linop.NewKronecker(a, b)

	rows, cols := op.Dims()
	require.Equal(t, 4, rows)
	require.Equal(t, 6, cols)

	x := mat.NewVecDense(6, []float64{1, 2, 3, 4, 5, 6})
	y, err := op.Apply(x)
	require.NoError(t, err)
	require.True(t, mat.EqualApprox(y, applyDense(t, op, x), 1e-12))
}

func TestKroneckerTranspose(t *testing.T) {
	a := mat.NewDense(2, 3, []float64{1, -2, 0.5, 3, 1, -1})
	b := mat.NewDense(2, 2, []float64{2, 1, 0, -1})
	op := linop.NewKronecker(a, b).T()

	var want mat.Dense
	want.CloneFrom(linop.NewKronecker(a, b).Dense().T())
	require.True(t, utils.AllClose(op.Dense(), &want, utils.DefaultRelTol, utils.DefaultAbsTol))
}

func TestSymmetricKroneckerApplyMatchesDense(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 0.3, 0.3, 2})
	b := mat.NewDense(2, 2, []float64{1, 1, 1, 1})
	op, err := linop.NewSymmetricKronecker(a, b)
	require.NoError(t, err)

	rows, cols := op.Dims()
	require.Equal(t, 4, rows)
	require.Equal(t, 4, cols)

	x := mat.NewVecDense(4, []float64{1, -4, 0.5, 2})
	y, err := op.Apply(x)
	require.NoError(t, err)
	require.True(t, mat.EqualApprox(y, applyDense(t, op, x), 1e-12))
}

func TestSymmetricKroneckerSelfTranspose(t *testing.T) {
	op, err := linop.NewSymmetricKronecker(utils.Eye(2), mat.NewDense(2, 2, []float64{1, 1, 1, 1}))
	require.NoError(t, err)
	require.Same(t, linop.LinearOperator(op), op.T())
}

func TestSymmetricKroneckerRejectsNonSquare(t *testing.T) {
	var shapeErr *linop.ShapeError

	_, err := linop.NewSymmetricKronecker(mat.NewDense(2, 3, nil), utils.Eye(2))
	require.True(t, errors.As(err, &shapeErr))

	_, err = linop.NewSymmetricKronecker(utils.Eye(2), utils.Eye(3))
	require.True(t, errors.As(err, &shapeErr))
}
