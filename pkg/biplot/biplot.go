// Package biplot draws reduced PCA data together with the projections of
// the original features onto the first two principal components.
package biplot

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/nikolay-shenkov/PCA-demonstration/pkg/decomp"
)

// Title is the title every biplot is drawn with.
const Title = "PC plane with original feature projections."

var (
	pointColor  = color.NRGBA{B: 255, A: 128}
	pointRadius = vg.Points(math.Sqrt(70) / 2)

	arrowColor      = color.RGBA{R: 255, A: 255}
	arrowWidth      = vg.Points(1)
	arrowHeadWidth  = 0.1
	arrowHeadLength = 0.2

	labelColor    = color.Black
	labelFontSize = vg.Points(18)
	axisFontSize  = vg.Points(14)
	titleFontSize = vg.Points(16)
)

// Features is the part of an original dataset the biplot needs.
type Features interface {
	FeatureNames() []string
}

// Biplot is a rendered figure. The caller owns it and may add plotters to
// Plot before saving it.
type Biplot struct {
	Plot   *plot.Plot
	Points *plotter.Scatter
	Arrows *Arrows
	Labels *plotter.Labels

	Width, Height vg.Length
}

// Render produces a biplot: a scatter of the first two columns of reduced
// plus one labeled arrow per feature of original, pointing along the
// feature's loadings on the first two components of d.
//
// Render needs at least two components in both d and reduced and fails with
// decomp.ErrTooFewComponents otherwise.
func Render(original Features, reduced mat.Matrix, d decomp.Decomposition, opts Options) (*Biplot, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	names := original.FeatureNames()
	proj, err := decomp.Projections(d)
	if err != nil {
		return nil, fmt.Errorf("biplot: %w", err)
	}
	if len(proj) != len(names) {
		return nil, fmt.Errorf("biplot: %w: components have %d coefficients, dataset has %d features",
			decomp.ErrShapeMismatch, len(proj), len(names))
	}

	rows, cols := reduced.Dims()
	if cols < 2 {
		return nil, fmt.Errorf("biplot: %w: reduced data has %d columns, need 2", decomp.ErrTooFewComponents, cols)
	}

	p := plot.New()
	p.Title.Text = Title
	p.Title.TextStyle.Font.Size = titleFontSize
	p.X.Label.Text = "PC 1"
	p.X.Label.TextStyle.Font.Size = axisFontSize
	p.Y.Label.Text = "PC 2"
	p.Y.Label.TextStyle.Font.Size = axisFontSize

	// Scatter plot of the reduced data.
	pts := make(plotter.XYs, rows)
	for i := range pts {
		pts[i].X = reduced.At(i, 0)
		pts[i].Y = reduced.At(i, 1)
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("biplot: scatter: %w", err)
	}
	s.GlyphStyle = draw.GlyphStyle{
		Color:  pointColor,
		Radius: pointRadius,
		Shape:  draw.CircleGlyph{},
	}

	// Projections of the original features, scaled so they are easier to see.
	tips := make(plotter.XYs, len(proj))
	at := make(plotter.XYs, len(proj))
	for i, v := range proj {
		tips[i] = plotter.XY{X: opts.ArrowSize * v[0], Y: opts.ArrowSize * v[1]}
		at[i] = plotter.XY{X: v[0] * opts.TextPos, Y: v[1] * opts.TextPos}
	}

	arrows, err := NewArrows(tips)
	if err != nil {
		return nil, fmt.Errorf("biplot: arrows: %w", err)
	}
	arrows.Color = arrowColor
	arrows.Width = arrowWidth
	arrows.HeadWidth = arrowHeadWidth
	arrows.HeadLength = arrowHeadLength

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    at,
		Labels: append([]string{}, names...),
	})
	if err != nil {
		return nil, fmt.Errorf("biplot: labels: %w", err)
	}
	for i := range labels.TextStyle {
		sty := &labels.TextStyle[i]
		sty.Color = labelColor
		sty.Font.Size = labelFontSize
		sty.XAlign = text.XCenter
		sty.YAlign = text.YCenter
	}

	p.Add(s, arrows, labels)

	slog.Debug("biplot rendered", "points", rows, "features", len(names))

	return &Biplot{
		Plot:   p,
		Points: s,
		Arrows: arrows,
		Labels: labels,
		Width:  vg.Length(opts.FigureSize[0]) * vg.Inch,
		Height: vg.Length(opts.FigureSize[1]) * vg.Inch,
	}, nil
}

// Save writes the figure to path. The image format is taken from the file
// extension (png, svg, pdf, ...).
func (b *Biplot) Save(path string) error {
	return b.Plot.Save(b.Width, b.Height, path)
}

// Encode writes the figure to w in the given image format.
func (b *Biplot) Encode(w io.Writer, format string) error {
	wt, err := b.Plot.WriterTo(b.Width, b.Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
