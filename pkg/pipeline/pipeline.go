// Package pipeline chains fit/transform steps such as scaling followed by a
// decomposition.
package pipeline

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Transformer is a step that learns from data and then maps it.
type Transformer interface {
	Fit(X mat.Matrix) error
	Transform(X mat.Matrix) (*mat.Dense, error)
}

// Pipeline chains multiple transformers.
type Pipeline struct {
	steps []Transformer
}

func NewPipeline(steps ...Transformer) *Pipeline {
	return &Pipeline{steps: steps}
}

// Fit fits every step on the output of the step before it.
func (p *Pipeline) Fit(X mat.Matrix) error {
	_, err := p.FitTransform(X)
	return err
}

// FitTransform fits every step in order and returns the output of the last.
func (p *Pipeline) FitTransform(X mat.Matrix) (*mat.Dense, error) {
	out := mat.DenseCopyOf(X)
	for i, step := range p.steps {
		if err := step.Fit(out); err != nil {
			return nil, fmt.Errorf("pipeline: fit step %d: %w", i, err)
		}
		next, err := step.Transform(out)
		if err != nil {
			return nil, fmt.Errorf("pipeline: transform step %d: %w", i, err)
		}
		out = next
	}
	return out, nil
}

// Transform runs X through the fitted steps.
func (p *Pipeline) Transform(X mat.Matrix) (*mat.Dense, error) {
	out := mat.DenseCopyOf(X)
	for i, step := range p.steps {
		next, err := step.Transform(out)
		if err != nil {
			return nil, fmt.Errorf("pipeline: transform step %d: %w", i, err)
		}
		out = next
	}
	return out, nil
}
