package biplot

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Arrows implements the plot.Plotter interface, drawing one straight arrow
// from a common origin to each tip. The head is part of the arrow's length,
// so its point sits exactly on the tip.
type Arrows struct {
	Origin plotter.XY
	Tips   plotter.XYs

	// LineStyle is the style of the shaft. Its color also fills the head.
	draw.LineStyle

	// HeadWidth and HeadLength are in data units.
	HeadWidth, HeadLength float64
}

// NewArrows returns arrows from the origin to each point of tips.
func NewArrows(tips plotter.XYer) (*Arrows, error) {
	xys, err := plotter.CopyXYs(tips)
	if err != nil {
		return nil, err
	}
	return &Arrows{
		Tips:      xys,
		LineStyle: plotter.DefaultLineStyle,
	}, nil
}

// Plot implements the plot.Plotter interface.
func (a *Arrows) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	pt := func(x, y float64) vg.Point { return vg.Point{X: trX(x), Y: trY(y)} }

	for _, tip := range a.Tips {
		dx, dy := tip.X-a.Origin.X, tip.Y-a.Origin.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		ux, uy := dx/length, dy/length

		hl := math.Min(a.HeadLength, length)
		hw := a.HeadWidth / 2
		bx, by := tip.X-ux*hl, tip.Y-uy*hl

		shaft := []vg.Point{pt(a.Origin.X, a.Origin.Y), pt(bx, by)}
		c.StrokeLines(a.LineStyle, c.ClipLinesXY(shaft)...)

		if hl == 0 || hw == 0 {
			continue
		}
		head := []vg.Point{
			pt(tip.X, tip.Y),
			pt(bx-uy*hw, by+ux*hw),
			pt(bx+uy*hw, by-ux*hw),
		}
		c.FillPolygon(a.Color, c.ClipPolygonXY(head))
	}
}

// DataRange implements the plot.DataRanger interface. The range always
// includes the origin.
func (a *Arrows) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = a.Origin.X, a.Origin.X
	ymin, ymax = a.Origin.Y, a.Origin.Y
	for _, tip := range a.Tips {
		xmin = math.Min(xmin, tip.X)
		xmax = math.Max(xmax, tip.X)
		ymin = math.Min(ymin, tip.Y)
		ymax = math.Max(ymax, tip.Y)
	}
	return xmin, xmax, ymin, ymax
}
