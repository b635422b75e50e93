package nn

import (
	"fmt"

	"github.com/born-ml/simnet/internal/tensor"
)

// LambdaFunc computes a batched output from batched inputs.
type LambdaFunc func(inputs []*tensor.Tensor) (*tensor.Tensor, error)

// ShapeFunc infers a per-sample output shape from per-sample input shapes.
type ShapeFunc func(inputs []tensor.Shape) (tensor.Shape, error)

// Lambda wraps a parameter-free tensor function as a layer.
type Lambda struct {
	layerBase
	fn    LambdaFunc
	shape ShapeFunc
}

// NewLambda creates a lambda layer. shape is required: it both validates
// the inputs at wiring time and declares the output shape.
func NewLambda(ctx *Context, name string, fn LambdaFunc, shape ShapeFunc) *Lambda {
	l := &Lambda{layerBase: newLayerBase(ctx, name, "lambda"), fn: fn, shape: shape}
	if fn == nil || shape == nil {
		ctx.fail(fmt.Errorf("lambda %q: %w: function and shape function are required", l.name, ErrInvalidConfig))
	}
	return l
}

// Call wires the layer on inputs.
func (l *Lambda) Call(inputs ...*Node) *Node {
	return l.ctx.call(l, inputs)
}

// Kind returns "Lambda".
func (l *Lambda) Kind() string {
	return "Lambda"
}

// OutputShape delegates to the shape function.
func (l *Lambda) OutputShape(inputs []tensor.Shape) (tensor.Shape, error) {
	out, err := l.shape(inputs)
	if err != nil {
		return nil, fmt.Errorf("layer %q: %w", l.name, err)
	}
	return out, nil
}

// Forward delegates to the wrapped function.
func (l *Lambda) Forward(inputs []*tensor.Tensor) (*tensor.Tensor, error) {
	out, err := l.fn(inputs)
	if err != nil {
		return nil, fmt.Errorf("layer %q: %w", l.name, err)
	}
	return out, nil
}
