package nn

import (
	"github.com/born-ml/simnet/internal/tensor"
)

// Parameter represents a trainable weight tensor.
//
// Parameters are owned by the Context that created them. Layers, and every
// model those layers take part in, hold references into that arena, so a
// layer reused by several models updates all of them at once.
type Parameter struct {
	name   string         // Fully qualified name, e.g. "encoding/kernel"
	layer  string         // Owning layer
	tensor *tensor.Tensor // The parameter tensor
}

// NewParameter creates a standalone parameter that no Context owns.
// Layer weights are created by the layers themselves.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return &Parameter{name: name, tensor: t}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Layer returns the name of the layer owning the parameter.
func (p *Parameter) Layer() string {
	return p.layer
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}

// Shape returns the parameter shape.
func (p *Parameter) Shape() tensor.Shape {
	return p.tensor.Shape()
}

// NumElements returns the number of scalars in the parameter.
func (p *Parameter) NumElements() int {
	return p.tensor.NumElements()
}

// countParams sums the sizes of params.
func countParams(params []*Parameter) int {
	n := 0
	for _, p := range params {
		n += p.NumElements()
	}
	return n
}
