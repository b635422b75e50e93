package nn

import (
	"fmt"

	"github.com/born-ml/simnet/internal/tensor"
)

// Flatten collapses every per-sample dimension into one.
type Flatten struct {
	layerBase
}

// NewFlatten creates a flatten layer.
func NewFlatten(ctx *Context, name string) *Flatten {
	return &Flatten{layerBase: newLayerBase(ctx, name, "flatten")}
}

// Call wires the layer on x.
func (l *Flatten) Call(x *Node) *Node {
	return l.ctx.call(l, []*Node{x})
}

// Kind returns "Flatten".
func (l *Flatten) Kind() string {
	return "Flatten"
}

// OutputShape returns [prod(input)].
func (l *Flatten) OutputShape(inputs []tensor.Shape) (tensor.Shape, error) {
	if len(inputs) != 1 {
		return nil, fmt.Errorf("layer %q: %w: expected 1 input, got %d", l.name, ErrShapeMismatch, len(inputs))
	}
	return tensor.Shape{inputs[0].NumElements()}, nil
}

// Forward returns a [N, features] view of the input.
func (l *Flatten) Forward(inputs []*tensor.Tensor) (*tensor.Tensor, error) {
	x, err := single(l.name, inputs)
	if err != nil {
		return nil, err
	}
	return x.Reshape(x.Batch(), -1)
}

// Reshape gives the per-sample tensor a new shape. One dimension may be -1.
type Reshape struct {
	layerBase
	dims []int
}

// NewReshape creates a reshape layer targeting dims (without batch).
func NewReshape(ctx *Context, name string, dims ...int) *Reshape {
	l := &Reshape{layerBase: newLayerBase(ctx, name, "reshape"), dims: append([]int(nil), dims...)}
	if len(dims) == 0 {
		ctx.fail(fmt.Errorf("reshape %q: %w: no target dimensions", l.name, ErrInvalidConfig))
	}
	return l
}

// Call wires the layer on x.
func (l *Reshape) Call(x *Node) *Node {
	return l.ctx.call(l, []*Node{x})
}

// Kind returns "Reshape".
func (l *Reshape) Kind() string {
	return "Reshape"
}

// OutputShape resolves the target dimensions against the input size.
func (l *Reshape) OutputShape(inputs []tensor.Shape) (tensor.Shape, error) {
	if len(inputs) != 1 {
		return nil, fmt.Errorf("layer %q: %w: expected 1 input, got %d", l.name, ErrShapeMismatch, len(inputs))
	}
	shape, err := tensor.InferShape(inputs[0].NumElements(), l.dims)
	if err != nil {
		return nil, &ShapeError{Layer: l.name, Actual: inputs[0], Details: err.Error()}
	}
	return shape, nil
}

// Forward returns a reshaped view of the input.
func (l *Reshape) Forward(inputs []*tensor.Tensor) (*tensor.Tensor, error) {
	x, err := single(l.name, inputs)
	if err != nil {
		return nil, err
	}
	// inShapes was fixed by the first call, so the target is already resolved.
	target, err := l.OutputShape(l.inShapes)
	if err != nil {
		return nil, err
	}
	return x.Reshape(target.WithBatch(x.Batch())...)
}
