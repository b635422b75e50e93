package nn

import (
	"fmt"

	"github.com/born-ml/simnet/internal/tensor"
)

// MaxPooling2D takes the maximum over non-overlapping windows without padding.
//
// Input shape:  [channels, height, width]
// Output shape: [channels, (height-pool)/stride+1, (width-pool)/stride+1]
//
// MaxPooling2D has no learnable parameters.
type MaxPooling2D struct {
	layerBase
	pool   int
	stride int
}

// NewMaxPooling2D creates a pooling layer. A zero stride defaults to pool.
func NewMaxPooling2D(ctx *Context, name string, pool, stride int) *MaxPooling2D {
	if stride == 0 {
		stride = pool
	}
	l := &MaxPooling2D{layerBase: newLayerBase(ctx, name, "max_pooling2d"), pool: pool, stride: stride}
	if pool <= 0 || stride <= 0 {
		ctx.fail(fmt.Errorf("max_pooling2d %q: %w: pool %d stride %d", l.name, ErrInvalidConfig, pool, stride))
	}
	return l
}

// Call wires the layer on x.
func (l *MaxPooling2D) Call(x *Node) *Node {
	return l.ctx.call(l, []*Node{x})
}

// Kind returns "MaxPooling2D".
func (l *MaxPooling2D) Kind() string {
	return "MaxPooling2D"
}

// OutputShape computes the pooled shape.
func (l *MaxPooling2D) OutputShape(inputs []tensor.Shape) (tensor.Shape, error) {
	if err := expectRank(l.name, inputs, 3); err != nil {
		return nil, err
	}
	in := inputs[0]
	if in[1] < l.pool || in[2] < l.pool {
		return nil, &ShapeError{Layer: l.name, Actual: in,
			Details: fmt.Sprintf("input smaller than the %dx%d pooling window", l.pool, l.pool)}
	}
	return tensor.Shape{in[0], (in[1]-l.pool)/l.stride + 1, (in[2]-l.pool)/l.stride + 1}, nil
}

// Forward pools [N, C, H, W].
func (l *MaxPooling2D) Forward(inputs []*tensor.Tensor) (*tensor.Tensor, error) {
	x, err := single(l.name, inputs)
	if err != nil {
		return nil, err
	}
	return l.ctx.backend.MaxPool2D(x, l.pool, l.stride), nil
}
