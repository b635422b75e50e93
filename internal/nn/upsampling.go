package nn

import (
	"fmt"

	"github.com/born-ml/simnet/internal/tensor"
)

// UpSampling2D repeats rows and columns by an integer factor (nearest neighbour).
type UpSampling2D struct {
	layerBase
	size int
}

// NewUpSampling2D creates an upsampling layer. A zero size defaults to 2.
func NewUpSampling2D(ctx *Context, name string, size int) *UpSampling2D {
	if size == 0 {
		size = 2
	}
	l := &UpSampling2D{layerBase: newLayerBase(ctx, name, "up_sampling2d"), size: size}
	if size < 0 {
		ctx.fail(fmt.Errorf("up_sampling2d %q: %w: size %d", l.name, ErrInvalidConfig, size))
	}
	return l
}

// Call wires the layer on x.
func (l *UpSampling2D) Call(x *Node) *Node {
	return l.ctx.call(l, []*Node{x})
}

// Kind returns "UpSampling2D".
func (l *UpSampling2D) Kind() string {
	return "UpSampling2D"
}

// OutputShape scales height and width.
func (l *UpSampling2D) OutputShape(inputs []tensor.Shape) (tensor.Shape, error) {
	if err := expectRank(l.name, inputs, 3); err != nil {
		return nil, err
	}
	in := inputs[0]
	return tensor.Shape{in[0], in[1] * l.size, in[2] * l.size}, nil
}

// Forward upsamples [N, C, H, W].
func (l *UpSampling2D) Forward(inputs []*tensor.Tensor) (*tensor.Tensor, error) {
	x, err := single(l.name, inputs)
	if err != nil {
		return nil, err
	}
	return l.ctx.backend.Upsample2D(x, l.size), nil
}
