package data

import "gonum.org/v1/gonum/mat"

// Frame is a labeled numeric dataset: rows are observations and columns are
// named features.
type Frame struct {
	Columns []string
	Values  *mat.Dense // nil when the frame has no rows or no columns
	Labels  []float64  // split-off label column, if any
}

// NewFrame returns a frame over values, which must have one column per name.
func NewFrame(columns []string, values *mat.Dense) *Frame {
	return &Frame{Columns: columns, Values: values}
}

// FeatureNames returns the column names in order.
func (f *Frame) FeatureNames() []string { return f.Columns }

// Dims returns the number of observations and features.
func (f *Frame) Dims() (rows, cols int) {
	if f.Values == nil {
		return 0, len(f.Columns)
	}
	rows, _ = f.Values.Dims()
	return rows, len(f.Columns)
}
