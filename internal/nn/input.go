package nn

import (
	"fmt"

	"github.com/born-ml/simnet/internal/tensor"
)

// InputLayer is the placeholder that starts a graph.
type InputLayer struct {
	layerBase
	shape tensor.Shape
}

// Input creates an input placeholder with the given per-sample shape and
// returns its node. An empty name is replaced by "input_N".
func Input(ctx *Context, name string, shape tensor.Shape) *Node {
	l := &InputLayer{layerBase: newLayerBase(ctx, name, "input"), shape: shape.Clone()}
	if ctx.err != nil {
		return nil
	}
	if err := shape.Validate(); err != nil {
		ctx.fail(fmt.Errorf("input %q: %w: %v", l.name, ErrInvalidConfig, err))
		return nil
	}
	l.inShapes = []tensor.Shape{}
	return ctx.newNode(l, nil, l.shape)
}

// ImageInput creates an image placeholder. The node shape is [C, H, W].
func ImageInput(ctx *Context, name string, shape tensor.ImageShape) *Node {
	if err := shape.Validate(); err != nil {
		ctx.fail(fmt.Errorf("input %q: %w: %v", name, ErrInvalidConfig, err))
		return nil
	}
	return Input(ctx, name, shape.Shape())
}

// Kind returns "InputLayer".
func (l *InputLayer) Kind() string {
	return "InputLayer"
}

// OutputShape returns the placeholder shape.
func (l *InputLayer) OutputShape([]tensor.Shape) (tensor.Shape, error) {
	return l.shape, nil
}

// Forward passes the fed tensor through.
func (l *InputLayer) Forward(inputs []*tensor.Tensor) (*tensor.Tensor, error) {
	return single(l.name, inputs)
}

func isInput(n *Node) bool {
	_, ok := n.layer.(*InputLayer)
	return ok
}
