// Package nn implements the declarative layer-graph API: layers are created
// in a Context, called on Nodes to wire a graph, and wrapped into Models.
//
// Per-sample shapes exclude the batch dimension. Image nodes are
// channels-first [C, H, W]; vectors are [F].
package nn

import (
	"fmt"

	"github.com/born-ml/simnet/internal/tensor"
)

// Layer is the common interface of every graph component.
//
// Models are layers too: calling a model on new nodes re-uses its layers
// and therefore its weights.
type Layer interface {
	// Name returns the unique layer name within its Context.
	Name() string

	// Kind returns the layer type, e.g. "Conv2D".
	Kind() string

	// OutputShape infers the per-sample output shape from input shapes.
	OutputShape(inputs []tensor.Shape) (tensor.Shape, error)

	// Forward computes the batched output for batched inputs.
	Forward(inputs []*tensor.Tensor) (*tensor.Tensor, error)

	// Parameters returns the trainable parameters of the layer.
	Parameters() []*Parameter
}

// Node is a symbolic tensor: the output of one layer call.
type Node struct {
	ctx    *Context
	id     int
	layer  Layer
	inputs []*Node
	shape  tensor.Shape
}

// Shape returns the per-sample output shape of the node.
func (n *Node) Shape() tensor.Shape {
	if n == nil {
		return nil
	}
	return n.shape
}

// Layer returns the layer whose call produced the node.
func (n *Node) Layer() Layer {
	return n.layer
}

// Inputs returns the nodes the layer was called on.
func (n *Node) Inputs() []*Node {
	return n.inputs
}

// Activation selects the element-wise function applied after a layer.
type Activation string

// Supported activations.
const (
	Linear Activation = ""
	ReLU   Activation = "relu"
)

func (a Activation) validate() error {
	switch a {
	case Linear, ReLU:
		return nil
	}
	return fmt.Errorf("%w: unknown activation %q", ErrInvalidConfig, string(a))
}

func (a Activation) apply(b tensor.Backend, x *tensor.Tensor) {
	if a == ReLU {
		b.ReLU(x)
	}
}

// Padding selects the convolution border policy.
type Padding string

// Supported paddings.
const (
	// PaddingValid applies no padding.
	PaddingValid Padding = "valid"
	// PaddingSame pads so that out = ceil(in / stride). When the total
	// padding is odd, the extra row/column goes to the bottom/right.
	PaddingSame Padding = "same"
)

// layerBase holds the state shared by every layer.
type layerBase struct {
	ctx      *Context
	name     string
	inShapes []tensor.Shape // fixed by the first call
}

func newLayerBase(ctx *Context, name, prefix string) layerBase {
	return layerBase{ctx: ctx, name: ctx.register(name, prefix)}
}

// Name returns the layer name.
func (b *layerBase) Name() string {
	return b.name
}

// Parameters returns no parameters; weighted layers override it.
func (b *layerBase) Parameters() []*Parameter {
	return nil
}

func (b *layerBase) base() *layerBase {
	return b
}

// build allocates weights for the first input shapes. No-op by default.
func (b *layerBase) build([]tensor.Shape) {}

// callable is a layer that can be wired into a graph.
type callable interface {
	Layer
	base() *layerBase
	build(inputs []tensor.Shape)
}

// call wires l into the graph on inputs, building its weights on first use.
func (c *Context) call(l callable, inputs []*Node) *Node {
	if c.err != nil {
		return nil
	}
	b := l.base()
	if len(inputs) == 0 {
		c.fail(fmt.Errorf("layer %q: %w: called without inputs", b.name, ErrInvalidConfig))
		return nil
	}

	shapes := make([]tensor.Shape, len(inputs))
	for i, in := range inputs {
		if in == nil {
			c.fail(fmt.Errorf("layer %q: %w: input %d is nil", b.name, ErrInvalidConfig, i))
			return nil
		}
		if in.ctx != c {
			c.fail(fmt.Errorf("layer %q: %w", b.name, ErrForeignNode))
			return nil
		}
		shapes[i] = in.shape
	}

	if b.inShapes != nil {
		if len(b.inShapes) != len(shapes) {
			c.fail(fmt.Errorf("layer %q: %w: expected %d inputs, got %d", b.name, ErrShapeMismatch, len(b.inShapes), len(shapes)))
			return nil
		}
		for i := range shapes {
			if !shapes[i].Equal(b.inShapes[i]) {
				c.fail(&ShapeError{Layer: b.name, Expected: b.inShapes[i], Actual: shapes[i], Details: "layer already built for a different input"})
				return nil
			}
		}
	}

	out, err := l.OutputShape(shapes)
	if err != nil {
		c.fail(err)
		return nil
	}

	if b.inShapes == nil {
		l.build(shapes)
		b.inShapes = shapes
		c.logger.Debug("layer built",
			"layer", b.name,
			"kind", l.Kind(),
			"output", out.Batched(),
			"params", countParams(l.Parameters()))
	}

	return c.newNode(l, inputs, out)
}

// expectRank checks that a layer called on a single input received rank r.
func expectRank(layer string, inputs []tensor.Shape, r int) error {
	if len(inputs) != 1 {
		return fmt.Errorf("layer %q: %w: expected 1 input, got %d", layer, ErrShapeMismatch, len(inputs))
	}
	if len(inputs[0]) != r {
		return &ShapeError{Layer: layer, Actual: inputs[0], Details: fmt.Sprintf("expected rank %d", r)}
	}
	return nil
}

// single unwraps the only batched input of a single-input layer.
func single(layer string, inputs []*tensor.Tensor) (*tensor.Tensor, error) {
	if len(inputs) != 1 {
		return nil, fmt.Errorf("layer %q: %w: expected 1 input, got %d", layer, ErrShapeMismatch, len(inputs))
	}
	return inputs[0], nil
}
