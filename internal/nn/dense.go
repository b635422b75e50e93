package nn

import (
	"fmt"

	"github.com/born-ml/simnet/internal/tensor"
)

// DenseConfig holds configuration for a fully connected layer.
type DenseConfig struct {
	Units      int        // Output features
	Activation Activation // Applied after the bias (default: Linear)
	NoBias     bool       // Disable the bias term
}

// Dense is a fully connected layer: y = x @ kernel + bias.
//
// Input shape:  [in_features]
// Kernel shape: [in_features, units]
// Output shape: [units]
type Dense struct {
	layerBase
	cfg DenseConfig

	kernel *Parameter
	bias   *Parameter
}

// NewDense creates a dense layer. Weights are allocated on the first call.
func NewDense(ctx *Context, name string, cfg DenseConfig) *Dense {
	l := &Dense{layerBase: newLayerBase(ctx, name, "dense"), cfg: cfg}
	if cfg.Units <= 0 {
		ctx.fail(fmt.Errorf("dense %q: %w: units %d", l.name, ErrInvalidConfig, cfg.Units))
	} else if err := cfg.Activation.validate(); err != nil {
		ctx.fail(fmt.Errorf("dense %q: %w", l.name, err))
	}
	return l
}

// Call wires the layer on x.
func (l *Dense) Call(x *Node) *Node {
	return l.ctx.call(l, []*Node{x})
}

// Kind returns "Dense".
func (l *Dense) Kind() string {
	return "Dense"
}

// OutputShape returns [units].
func (l *Dense) OutputShape(inputs []tensor.Shape) (tensor.Shape, error) {
	if err := expectRank(l.name, inputs, 1); err != nil {
		return nil, err
	}
	return tensor.Shape{l.cfg.Units}, nil
}

func (l *Dense) build(inputs []tensor.Shape) {
	in := inputs[0][0]
	l.kernel = l.ctx.newParameter(l.name, "kernel",
		glorotUniform(l.ctx.rng, in, l.cfg.Units, tensor.Shape{in, l.cfg.Units}))
	if !l.cfg.NoBias {
		l.bias = l.ctx.newParameter(l.name, "bias", tensor.Zeros(tensor.Shape{l.cfg.Units}))
	}
}

// Parameters returns the kernel and, if present, the bias.
func (l *Dense) Parameters() []*Parameter {
	switch {
	case l.kernel == nil:
		return nil
	case l.bias == nil:
		return []*Parameter{l.kernel}
	default:
		return []*Parameter{l.kernel, l.bias}
	}
}

// Forward maps [N, in_features] to [N, units].
func (l *Dense) Forward(inputs []*tensor.Tensor) (*tensor.Tensor, error) {
	x, err := single(l.name, inputs)
	if err != nil {
		return nil, err
	}
	if len(x.Shape()) != 2 {
		return nil, &ShapeError{Layer: l.name, Actual: x.Shape(), Details: "expected [N, features]"}
	}

	b := l.ctx.backend
	out := b.MatMul(x, l.kernel.Tensor())
	if l.bias != nil {
		b.BiasAdd(out, l.bias.Tensor())
	}
	l.cfg.Activation.apply(b, out)
	return out, nil
}
