package content

import "fmt"

// Pipeline chains together a set of transformers, failing fast if any
// transformer in the chain errors. The zero value is the identity.
type Pipeline struct {
	stages []Transformer
}

// NewPipeline builds a [Pipeline] applying stages in order.
func NewPipeline(stages ...Transformer) (Pipeline, error) {
	for idx, stage := range stages {
		if stage == nil {
			return Pipeline{}, fmt.Errorf("pipeline stage %d: %w", idx, ErrNilTransformer)
		}
	}
	return Pipeline{stages: append([]Transformer(nil), stages...)}, nil
}

// Len returns the number of stages.
func (p Pipeline) Len() int { return len(p.stages) }

// Transform satisfies [Transformer].
func (p Pipeline) Transform(document string) (string, error) {
	var err error
	for _, stage := range p.stages {
		document, err = stage.Transform(document)
		if err != nil {
			return "", err
		}
	}
	return document, nil
}
