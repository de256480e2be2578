package data

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMain(m *testing.M) {
	// Skipped and imputed records are logged; keep test output clean.
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	os.Exit(m.Run())
}

func TestReadCSV(t *testing.T) {
	in := "Fresh,Milk,Grocery\n1,2,3\n4,5,6\n"

	f, err := ReadCSV(strings.NewReader(in), NoLabel)
	require.NoError(t, err)

	assert.Equal(t, []string{"Fresh", "Milk", "Grocery"}, f.FeatureNames())
	rows, cols := f.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.True(t, mat.Equal(mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}), f.Values))
	assert.Nil(t, f.Labels)
}

func TestReadCSVLabelColumn(t *testing.T) {
	in := "a,label,b\n1,0,2\n3,1,4\n"

	f, err := ReadCSV(strings.NewReader(in), 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, f.Columns)
	assert.Equal(t, []float64{0, 1}, f.Labels)
	assert.Equal(t, []float64{3, 4}, mat.Row(nil, 1, f.Values))
}

func TestReadCSVImputesMissing(t *testing.T) {
	in := "a,b,c\n1,NA,\n3,4,\n,8,\n"

	f, err := ReadCSV(strings.NewReader(in), NoLabel)
	require.NoError(t, err)

	want := mat.NewDense(3, 3, []float64{
		1, 6, 0,
		3, 4, 0,
		2, 8, 0,
	})
	assert.True(t, mat.Equal(want, f.Values), "got %v", mat.Formatted(f.Values))
}

func TestReadCSVSkipsBadRecords(t *testing.T) {
	in := "a,b\n1,2\nx,3\n4,5,6\n7,8\n"

	f, err := ReadCSV(strings.NewReader(in), NoLabel)
	require.NoError(t, err)

	assert.True(t, mat.Equal(mat.NewDense(2, 2, []float64{1, 2, 7, 8}), f.Values))
}

func TestReadCSVHeaderOnly(t *testing.T) {
	f, err := ReadCSV(strings.NewReader("a,b\n"), NoLabel)
	require.NoError(t, err)

	assert.Nil(t, f.Values)
	rows, cols := f.Dims()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 2, cols)
}

func TestReadCSVErrors(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		labelCol int
	}{
		{name: "empty input", in: "", labelCol: NoLabel},
		{name: "label past last column", in: "a,b\n1,2\n", labelCol: 2},
		{name: "negative label", in: "a,b\n1,2\n", labelCol: -2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tc.in), tc.labelCol)
			assert.Error(t, err)
		})
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wholesale.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y\n1.5,-2\n"), 0o644))

	f, err := LoadCSV(path, NoLabel)
	require.NoError(t, err)
	assert.Equal(t, -2.0, f.Values.At(0, 1))

	_, err = LoadCSV(filepath.Join(t.TempDir(), "nope.csv"), NoLabel)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
