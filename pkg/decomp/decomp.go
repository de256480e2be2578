// Package decomp describes fitted linear decompositions (PCA and friends) in
// the shape the table and biplot helpers consume them.
package decomp

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when a component vector does not have one
	// coefficient per original feature.
	ErrShapeMismatch = errors.New("decomp: component width does not match feature count")

	// ErrTooFewComponents is returned when an operation needs more retained
	// components than the decomposition has.
	ErrTooFewComponents = errors.New("decomp: too few components")

	// ErrNotFitted is returned by PCA methods called before Fit.
	ErrNotFitted = errors.New("decomp: model is not fitted")
)

// Decomposition is a fitted linear dimensionality reduction.
// Component(i) is the loading vector of the i-th component and has one
// coefficient per original feature.
type Decomposition interface {
	NComponents() int
	Component(i int) []float64
}

// Variancer is implemented by decompositions that know how much variance
// each retained component explains.
type Variancer interface {
	ExplainedVarianceRatio() []float64
}

// Loadings is a Decomposition given directly as component vectors, one per
// row, kept in caller order.
type Loadings [][]float64

// NComponents returns the number of component vectors.
func (l Loadings) NComponents() int { return len(l) }

// Component returns the i-th component vector.
func (l Loadings) Component(i int) []float64 { return l[i] }

// CheckWidth returns ErrShapeMismatch unless every component of d has
// exactly features coefficients.
func CheckWidth(d Decomposition, features int) error {
	for i := 0; i < d.NComponents(); i++ {
		if w := len(d.Component(i)); w != features {
			return fmt.Errorf("%w: PC%d has %d coefficients, dataset has %d features",
				ErrShapeMismatch, i+1, w, features)
		}
	}
	return nil
}

// Projections returns, for every original feature, its coordinates on the
// first two components. This is the transpose of the first two rows of the
// component matrix.
func Projections(d Decomposition) ([][2]float64, error) {
	if n := d.NComponents(); n < 2 {
		return nil, fmt.Errorf("%w: need 2 for a plane projection, have %d", ErrTooFewComponents, n)
	}
	pc1, pc2 := d.Component(0), d.Component(1)
	if len(pc1) != len(pc2) {
		return nil, fmt.Errorf("%w: PC1 has %d coefficients, PC2 has %d",
			ErrShapeMismatch, len(pc1), len(pc2))
	}

	out := make([][2]float64, len(pc1))
	for i := range pc1 {
		out[i] = [2]float64{pc1[i], pc2[i]}
	}
	return out, nil
}
