// Package data loads the original, labeled datasets that get reduced and
// plotted.
package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// NoLabel tells ReadCSV that every column is a feature.
const NoLabel = -1

func isMissing(s string) bool { return s == "" || s == "NA" || s == "NaN" }

// LoadCSV reads the CSV file at path. See ReadCSV.
func LoadCSV(path string, labelCol int) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadCSV(file, labelCol)
}

// ReadCSV reads a CSV stream whose first record holds the feature names.
// labelCol is the index of a label column to split off, or NoLabel.
//
// Missing feature cells ("", "NA", "NaN") are replaced by the mean of their
// column. Records that cannot be read or hold non-numeric cells are skipped.
func ReadCSV(r io.Reader, labelCol int) (*Frame, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("data: csv has no header")
	}
	if err != nil {
		return nil, fmt.Errorf("data: read header: %w", err)
	}
	if labelCol < NoLabel || labelCol >= len(header) {
		return nil, fmt.Errorf("data: label column %d out of range for %d columns", labelCol, len(header))
	}

	var columns []string
	for i, h := range header {
		if i != labelCol {
			columns = append(columns, h)
		}
	}
	reader.ReuseRecord = true

	var (
		rows   [][]float64
		labels []float64
		record int
	)
	for {
		rec, err := reader.Read()
		record++
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Warn("skipping record due to read error", "record", record, "err", err)
			continue
		}

		x := make([]float64, 0, len(columns))
		var y float64
		valid := true
		for i, s := range rec {
			if i != labelCol && isMissing(s) {
				x = append(x, math.NaN())
				continue
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				slog.Warn("skipping record due to parsing error", "record", record, "column", header[i], "value", s)
				valid = false
				break
			}
			if i == labelCol {
				y = v
			} else {
				x = append(x, v)
			}
		}
		if !valid {
			continue
		}
		rows = append(rows, x)
		if labelCol != NoLabel {
			labels = append(labels, y)
		}
	}

	imputeMean(rows, columns)

	f := &Frame{Columns: columns, Labels: labels}
	if len(rows) > 0 && len(columns) > 0 {
		f.Values = mat.NewDense(len(rows), len(columns), nil)
		for i, row := range rows {
			f.Values.SetRow(i, row)
		}
	}
	return f, nil
}

// imputeMean replaces NaN cells with the mean of the present values in
// their column, or 0 when the column has none.
func imputeMean(rows [][]float64, columns []string) {
	for j, name := range columns {
		var present []float64
		missing := 0
		for _, row := range rows {
			if math.IsNaN(row[j]) {
				missing++
			} else {
				present = append(present, row[j])
			}
		}
		if missing == 0 {
			continue
		}

		mean := 0.0
		if len(present) > 0 {
			mean = stat.Mean(present, nil)
		}
		for _, row := range rows {
			if math.IsNaN(row[j]) {
				row[j] = mean
			}
		}
		slog.Info("imputed missing values", "column", name, "count", missing, "mean", mean)
	}
}
