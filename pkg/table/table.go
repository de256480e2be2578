// Package table labels PCA loadings: rows are principal components
// ("PC1", "PC2", ...) and columns are the original feature names.
package table

import (
	"fmt"
	"strconv"

	"github.com/nikolay-shenkov/PCA-demonstration/pkg/decomp"
)

// Features is the part of an original dataset the table needs.
type Features interface {
	FeatureNames() []string
}

// ComponentTable is a labeled matrix of component loadings. It owns copies of
// its labels and values and is not modified after construction.
type ComponentTable struct {
	Index   []string // PC labels, in decomposition order
	Columns []string // original feature names
	Data    [][]float64
}

// Components organizes the components of d into a table labeled with the
// feature names of original. Components keep the order d lists them in and
// coefficients are copied without any transformation.
func Components(d decomp.Decomposition, original Features) (*ComponentTable, error) {
	names := original.FeatureNames()
	if err := decomp.CheckWidth(d, len(names)); err != nil {
		return nil, fmt.Errorf("components table: %w", err)
	}

	n := d.NComponents()
	t := &ComponentTable{
		Index:   PCLabels(n),
		Columns: append([]string{}, names...),
		Data:    make([][]float64, n),
	}
	for i := 0; i < n; i++ {
		t.Data[i] = append([]float64{}, d.Component(i)...)
	}
	return t, nil
}

// PCLabels returns "PC1".."PCn".
func PCLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = "PC" + strconv.Itoa(i+1)
	}
	return labels
}

// Dims returns the number of components and features.
func (t *ComponentTable) Dims() (rows, cols int) { return len(t.Index), len(t.Columns) }

// At returns the loading of feature j on component i.
func (t *ComponentTable) At(i, j int) float64 { return t.Data[i][j] }

// Row returns the loadings of the component labeled label, e.g. "PC2".
func (t *ComponentTable) Row(label string) ([]float64, bool) {
	for i, l := range t.Index {
		if l == label {
			return append([]float64{}, t.Data[i]...), true
		}
	}
	return nil, false
}

// Column returns the loadings of the named feature on every component.
func (t *ComponentTable) Column(name string) ([]float64, bool) {
	for j, c := range t.Columns {
		if c != name {
			continue
		}
		col := make([]float64, len(t.Data))
		for i, row := range t.Data {
			col[i] = row[j]
		}
		return col, true
	}
	return nil, false
}
