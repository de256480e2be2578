package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/nikolay-shenkov/PCA-demonstration/pkg/decomp"
)

// ExplainedVarianceColumn is the single column of an ExplainedVariance table.
const ExplainedVarianceColumn = "Explained Variance"

// ExplainedVariance returns a one-column table with the share of variance
// each component of v explains, labeled like the components table.
func ExplainedVariance(v decomp.Variancer) *ComponentTable {
	ratios := v.ExplainedVarianceRatio()
	t := &ComponentTable{
		Index:   PCLabels(len(ratios)),
		Columns: []string{ExplainedVarianceColumn},
		Data:    make([][]float64, len(ratios)),
	}
	for i, r := range ratios {
		t.Data[i] = []float64{r}
	}
	return t
}

// String renders the table with aligned columns, four decimals per cell.
func (t *ComponentTable) String() string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprint(tw, "\t")
	for _, c := range t.Columns {
		fmt.Fprintf(tw, "%s\t", c)
	}
	fmt.Fprintln(tw)
	for i, label := range t.Index {
		fmt.Fprintf(tw, "%s\t", label)
		for _, v := range t.Data[i] {
			fmt.Fprintf(tw, "%.4f\t", v)
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
	return sb.String()
}

// WriteCSV writes the table as CSV: a header row with an empty index cell
// followed by the column names, then one row per component. Values are
// written at full precision.
func (t *ComponentTable) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := append([]string{""}, t.Columns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, label := range t.Index {
		record := make([]string, 0, len(t.Data[i])+1)
		record = append(record, label)
		for _, v := range t.Data[i] {
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write %s: %w", label, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
