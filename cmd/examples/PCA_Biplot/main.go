package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/nikolay-shenkov/PCA-demonstration/pkg/biplot"
	"github.com/nikolay-shenkov/PCA-demonstration/pkg/data"
	"github.com/nikolay-shenkov/PCA-demonstration/pkg/decomp"
	"github.com/nikolay-shenkov/PCA-demonstration/pkg/pipeline"
	"github.com/nikolay-shenkov/PCA-demonstration/pkg/stats"
	"github.com/nikolay-shenkov/PCA-demonstration/pkg/table"
)

//
// ---------------------- CLI FLAGS DOCUMENTATION ----------------------
//
// --input       : Path to input CSV with a header row. Empty = synthetic data
// --label-col   : Index of a label column to drop (0-based). -1 if none
// --components  : Number of principal components to keep (>= 2 for the biplot)
// --standardize : Scale every feature to zero mean, unit variance before PCA
// --config      : TOML file with biplot options (arrow_size, text_pos, figure_size)
// --output      : Where to save the biplot. Format follows the extension
// --table-csv   : Optional path to also write the components table as CSV
// --seed        : Seed for the synthetic dataset
// --v           : Verbose (debug) logging
//
// Example:
//   go run main.go --input customers.csv --components 4 --output biplot.svg
//
// ---------------------------------------------------------------------
//

// wholesaleFeatures are the columns of the synthetic dataset.
var wholesaleFeatures = []string{"Fresh", "Milk", "Grocery", "Frozen", "Detergents_Paper", "Delicatessen"}

// generateWholesaleData creates n customers whose spending is driven by two
// hidden factors (retail vs. restaurant buying) plus noise.
func generateWholesaleData(rng *rand.Rand, n int) *data.Frame {
	loadings := [][2]float64{
		{0.2, 0.9},  // Fresh
		{0.8, 0.2},  // Milk
		{0.9, 0.1},  // Grocery
		{0.1, 0.7},  // Frozen
		{0.9, -0.1}, // Detergents_Paper
		{0.4, 0.5},  // Delicatessen
	}
	X := mat.NewDense(n, len(wholesaleFeatures), nil)
	for i := 0; i < n; i++ {
		retail, restaurant := rng.NormFloat64(), rng.NormFloat64()
		for j, l := range loadings {
			X.Set(i, j, l[0]*retail+l[1]*restaurant+0.3*rng.NormFloat64())
		}
	}
	return data.NewFrame(wholesaleFeatures, X)
}

func main() {
	// ---- CLI Flags ----
	inputPath := flag.String("input", "", "Path to input CSV file (empty = synthetic data)")
	labelCol := flag.Int("label-col", data.NoLabel, "Index of label column (-1 if no labels)")
	nComponents := flag.Int("components", 2, "Number of principal components to keep")
	standardize := flag.Bool("standardize", true, "Standardize features before PCA")
	configPath := flag.String("config", "", "TOML file with biplot options")
	outputPath := flag.String("output", "biplot.png", "Path to save the biplot")
	tableCSV := flag.String("table-csv", "", "Path to save the components table as CSV")
	seed := flag.Int64("seed", 42, "Seed for synthetic data")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// ---- Load data ----
	var frame *data.Frame
	if *inputPath == "" {
		frame = generateWholesaleData(rand.New(rand.NewSource(*seed)), 440)
		slog.Info("generated synthetic data", "rows", 440, "features", len(wholesaleFeatures))
	} else {
		var err error
		frame, err = data.LoadCSV(*inputPath, *labelCol)
		if err != nil {
			log.Fatalf("Error loading CSV file: %v", err)
		}
	}
	rows, cols := frame.Dims()
	if rows == 0 || cols == 0 {
		log.Fatalf("Dataset has no usable rows or features")
	}
	slog.Info("loaded data", "rows", rows, "features", cols)

	opts := biplot.DefaultOptions()
	if *configPath != "" {
		var err error
		opts, err = biplot.LoadOptions(*configPath)
		if err != nil {
			log.Fatalf("Error loading biplot options: %v", err)
		}
	}

	// ---- Decomposition ----
	pca := decomp.NewPCA(*nComponents)
	var steps []pipeline.Transformer
	if *standardize {
		steps = append(steps, stats.NewStandardScaler())
	}
	steps = append(steps, pca)

	reduced, err := pipeline.NewPipeline(steps...).FitTransform(frame.Values)
	if err != nil {
		log.Fatalf("Error fitting PCA: %v", err)
	}

	// ---- Components table ----
	components, err := table.Components(pca, frame)
	if err != nil {
		log.Fatalf("Error building components table: %v", err)
	}
	fmt.Println("Principal components:")
	fmt.Println(components)
	fmt.Println("Explained variance:")
	fmt.Println(table.ExplainedVariance(pca))

	if *tableCSV != "" {
		f, err := os.Create(*tableCSV)
		if err != nil {
			log.Fatalf("Error creating table file: %v", err)
		}
		if err := components.WriteCSV(f); err != nil {
			f.Close()
			log.Fatalf("Error writing table: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("Error closing table file: %v", err)
		}
		fmt.Println("Components table saved to:", *tableCSV)
	}

	// ---- Biplot ----
	bp, err := biplot.Render(frame, reduced, pca, opts)
	if err != nil {
		log.Fatalf("Error rendering biplot: %v", err)
	}
	if err := bp.Save(*outputPath); err != nil {
		log.Fatalf("Error saving biplot: %v", err)
	}
	fmt.Println("Biplot saved to:", *outputPath)
}
