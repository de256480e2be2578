package decomp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// lineData lies exactly on the direction (1, 1) in its first two features
// with a little uncorrelated spread on the third.
func lineData() *mat.Dense {
	return mat.NewDense(6, 3, []float64{
		-3, -3, 0.1,
		-2, -2, -0.1,
		-1, -1, 0,
		1, 1, 0,
		2, 2, -0.1,
		3, 3, 0.1,
	})
}

func TestPCAFit(t *testing.T) {
	pca := NewPCA(2)
	require.NoError(t, pca.Fit(lineData()))

	assert.Equal(t, 2, pca.NComponents())
	assert.InDeltaSlice(t, []float64{0, 0, 0}, pca.Means, 1e-12)

	pc1 := pca.Component(0)
	require.Len(t, pc1, 3)
	assert.InDelta(t, 1/math.Sqrt2, math.Abs(pc1[0]), 1e-9)
	assert.InDelta(t, 1/math.Sqrt2, math.Abs(pc1[1]), 1e-9)
	assert.InDelta(t, 0, pc1[2], 1e-9)

	for _, c := range pca.Components {
		assert.InDelta(t, 1, floats.Norm(c, 2), 1e-9)
	}

	ev := pca.ExplainedVariance()
	require.Len(t, ev, 2)
	assert.Greater(t, ev[0], ev[1])

	ratio := pca.ExplainedVarianceRatio()
	assert.Greater(t, ratio[0], 0.99)
	assert.LessOrEqual(t, floats.Sum(ratio), 1+1e-9)
}

func TestPCATransform(t *testing.T) {
	X := lineData()
	pca := NewPCA(2)
	reduced, err := pca.FitTransform(X)
	require.NoError(t, err)

	r, c := reduced.Dims()
	assert.Equal(t, 6, r)
	assert.Equal(t, 2, c)

	// Projection onto PC1 preserves the distance along the line.
	assert.InDelta(t, 3*math.Sqrt2, math.Abs(reduced.At(0, 0)), 1e-9)
	assert.InDelta(t, 0.1, math.Abs(reduced.At(0, 1)), 1e-9)
	assert.InDelta(t, 0, reduced.At(2, 1), 1e-9)
}

func TestPCAErrors(t *testing.T) {
	t.Run("not fitted", func(t *testing.T) {
		_, err := NewPCA(2).Transform(lineData())
		assert.ErrorIs(t, err, ErrNotFitted)
	})

	t.Run("zero components", func(t *testing.T) {
		assert.Error(t, NewPCA(0).Fit(lineData()))
	})

	t.Run("more components than features", func(t *testing.T) {
		err := NewPCA(4).Fit(lineData())
		assert.ErrorIs(t, err, ErrTooFewComponents)
	})

	t.Run("feature count mismatch", func(t *testing.T) {
		pca := NewPCA(1)
		require.NoError(t, pca.Fit(lineData()))
		_, err := pca.Transform(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
		assert.ErrorIs(t, err, ErrShapeMismatch)
	})
}

func TestPCASatisfiesInterfaces(t *testing.T) {
	var _ Decomposition = (*PCA)(nil)
	var _ Variancer = (*PCA)(nil)
	var _ Decomposition = Loadings(nil)
}
