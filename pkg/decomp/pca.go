package decomp

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// PCA keeps the top K principal components of a dataset. The decomposition
// itself is computed by gonum's stat.PC; this type only holds the result in
// Decomposition form and projects new data onto it.
type PCA struct {
	K          int
	Means      []float64
	Components [][]float64 // K x p, each a unit vector
	Explained  []float64   // variance along each retained component

	totalVar float64
}

// NewPCA creates and returns a new PCA model keeping k components.
func NewPCA(k int) *PCA {
	return &PCA{K: k}
}

// Fit computes the principal components of X (rows = observations).
// Components are ordered by decreasing explained variance.
func (pca *PCA) Fit(X mat.Matrix) error {
	n, d := X.Dims()
	if n == 0 || d == 0 {
		return errors.New("decomp: input data cannot be empty")
	}
	if pca.K < 1 {
		return fmt.Errorf("decomp: component count must be positive, got %d", pca.K)
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(X, nil); !ok {
		return errors.New("decomp: principal component analysis did not converge")
	}
	vars := pc.VarsTo(nil)
	if pca.K > len(vars) {
		return fmt.Errorf("%w: asked for %d, data supports at most %d", ErrTooFewComponents, pca.K, len(vars))
	}
	var vecs mat.Dense
	pc.VectorsTo(&vecs)

	pca.Means = make([]float64, d)
	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, X)
		pca.Means[j] = stat.Mean(col, nil)
	}

	// The columns of vecs are the directions; store them as rows.
	pca.Components = make([][]float64, pca.K)
	for k := 0; k < pca.K; k++ {
		pca.Components[k] = mat.Col(nil, k, &vecs)
	}
	pca.Explained = append([]float64(nil), vars[:pca.K]...)
	pca.totalVar = floats.Sum(vars)
	return nil
}

// Transform projects X onto the retained components after centering it with
// the means seen during Fit.
func (pca *PCA) Transform(X mat.Matrix) (*mat.Dense, error) {
	if pca.Components == nil {
		return nil, ErrNotFitted
	}
	n, d := X.Dims()
	if n == 0 {
		return nil, errors.New("decomp: input data cannot be empty")
	}
	if d != len(pca.Means) {
		return nil, fmt.Errorf("%w: model has %d features, input has %d", ErrShapeMismatch, len(pca.Means), d)
	}

	centered := mat.NewDense(n, d, nil)
	centered.Apply(func(i, j int, v float64) float64 {
		return v - pca.Means[j]
	}, X)

	comps := mat.NewDense(pca.K, d, nil)
	for k, c := range pca.Components {
		comps.SetRow(k, c)
	}

	var out mat.Dense
	out.Mul(centered, comps.T())
	return &out, nil
}

// FitTransform fits the model on X and returns X projected onto it.
func (pca *PCA) FitTransform(X mat.Matrix) (*mat.Dense, error) {
	if err := pca.Fit(X); err != nil {
		return nil, err
	}
	return pca.Transform(X)
}

// NComponents returns the number of retained components.
func (pca *PCA) NComponents() int { return len(pca.Components) }

// Component returns the loadings of the i-th retained component.
func (pca *PCA) Component(i int) []float64 { return pca.Components[i] }

// ExplainedVariance returns the variance along each retained component.
func (pca *PCA) ExplainedVariance() []float64 {
	return append([]float64(nil), pca.Explained...)
}

// ExplainedVarianceRatio returns the share of the total variance captured by
// each retained component.
func (pca *PCA) ExplainedVarianceRatio() []float64 {
	out := make([]float64, len(pca.Explained))
	if pca.totalVar == 0 {
		return out
	}
	copy(out, pca.Explained)
	floats.Scale(1/pca.totalVar, out)
	return out
}
