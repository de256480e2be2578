package biplot

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Options holds the tunable scale factors of a biplot. A zero field means
// "use the default".
type Options struct {
	// ArrowSize scales a feature's projection to get its arrow tip.
	ArrowSize float64 `toml:"arrow_size"`
	// TextPos scales a feature's projection to place its label.
	TextPos float64 `toml:"text_pos"`
	// FigureSize is the width and height of the figure, in inches.
	FigureSize [2]float64 `toml:"figure_size"`
}

// DefaultOptions returns arrows at twice the projection, labels at 2.5
// times, on a 12x6 inch figure.
func DefaultOptions() Options {
	return Options{
		ArrowSize:  2.0,
		TextPos:    2.5,
		FigureSize: [2]float64{12, 6},
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.ArrowSize == 0 {
		o.ArrowSize = def.ArrowSize
	}
	if o.TextPos == 0 {
		o.TextPos = def.TextPos
	}
	if o.FigureSize[0] == 0 {
		o.FigureSize[0] = def.FigureSize[0]
	}
	if o.FigureSize[1] == 0 {
		o.FigureSize[1] = def.FigureSize[1]
	}
	return o
}

// Validate reports options no figure can be drawn with.
func (o Options) Validate() error {
	if o.FigureSize[0] < 0 || o.FigureSize[1] < 0 {
		return fmt.Errorf("biplot: figure size must be positive, got %gx%g", o.FigureSize[0], o.FigureSize[1])
	}
	return nil
}

// ParseOptions decodes TOML on top of the defaults, so keys left out keep
// their default values.
func ParseOptions(b []byte) (Options, error) {
	o := DefaultOptions()
	if err := toml.Unmarshal(b, &o); err != nil {
		return Options{}, fmt.Errorf("biplot: parse options: %w", err)
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// LoadOptions reads options from a TOML file.
func LoadOptions(path string) (Options, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("biplot: %w", err)
	}
	return ParseOptions(b)
}

// WriteTOML writes o as TOML, in the form LoadOptions reads.
func (o Options) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(o)
}
