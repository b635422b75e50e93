package nn

import (
	"fmt"

	"github.com/born-ml/simnet/internal/tensor"
)

// Conv2DConfig holds configuration for a 2D convolution.
type Conv2DConfig struct {
	Filters    int        // Number of output channels
	KernelSize int        // Square kernel size
	Stride     int        // Stride (default: 1)
	Padding    Padding    // Border policy (default: PaddingValid)
	Activation Activation // Applied after the bias (default: Linear)
	NoBias     bool       // Disable the bias term
}

// Conv2D is a 2D convolutional layer.
//
// Input shape:  [in_channels, height, width]
// Kernel shape: [filters, in_channels, kernel, kernel]
// Bias shape:   [filters]
// Output shape: [filters, out_h, out_w]
//
// Where, for PaddingSame, out = ceil(in / stride), and for PaddingValid,
// out = (in - kernel) / stride + 1.
//
// Kernels use Glorot-uniform initialization, biases start at zero.
type Conv2D struct {
	layerBase
	cfg Conv2DConfig

	kernel *Parameter
	bias   *Parameter
}

// NewConv2D creates a convolution layer. Weights are allocated on the first call.
func NewConv2D(ctx *Context, name string, cfg Conv2DConfig) *Conv2D {
	if cfg.Stride == 0 {
		cfg.Stride = 1
	}
	if cfg.Padding == "" {
		cfg.Padding = PaddingValid
	}
	l := &Conv2D{layerBase: newLayerBase(ctx, name, "conv2d"), cfg: cfg}

	switch {
	case cfg.Filters <= 0:
		ctx.fail(fmt.Errorf("conv2d %q: %w: filters %d", l.name, ErrInvalidConfig, cfg.Filters))
	case cfg.KernelSize <= 0:
		ctx.fail(fmt.Errorf("conv2d %q: %w: kernel size %d", l.name, ErrInvalidConfig, cfg.KernelSize))
	case cfg.Stride < 0:
		ctx.fail(fmt.Errorf("conv2d %q: %w: stride %d", l.name, ErrInvalidConfig, cfg.Stride))
	case cfg.Padding != PaddingSame && cfg.Padding != PaddingValid:
		ctx.fail(fmt.Errorf("conv2d %q: %w: padding %q", l.name, ErrInvalidConfig, string(cfg.Padding)))
	default:
		if err := cfg.Activation.validate(); err != nil {
			ctx.fail(fmt.Errorf("conv2d %q: %w", l.name, err))
		}
	}
	return l
}

// Call wires the layer on x.
func (l *Conv2D) Call(x *Node) *Node {
	return l.ctx.call(l, []*Node{x})
}

// Kind returns "Conv2D".
func (l *Conv2D) Kind() string {
	return "Conv2D"
}

// Config returns the layer configuration.
func (l *Conv2D) Config() Conv2DConfig {
	return l.cfg
}

// OutputShape computes [filters, out_h, out_w].
func (l *Conv2D) OutputShape(inputs []tensor.Shape) (tensor.Shape, error) {
	if err := expectRank(l.name, inputs, 3); err != nil {
		return nil, err
	}
	in := inputs[0]
	outH := convOutputSize(in[1], l.cfg.KernelSize, l.cfg.Stride, l.cfg.Padding)
	outW := convOutputSize(in[2], l.cfg.KernelSize, l.cfg.Stride, l.cfg.Padding)
	if outH <= 0 || outW <= 0 {
		return nil, &ShapeError{Layer: l.name, Actual: in,
			Details: fmt.Sprintf("kernel %d with stride %d leaves no output", l.cfg.KernelSize, l.cfg.Stride)}
	}
	return tensor.Shape{l.cfg.Filters, outH, outW}, nil
}

func (l *Conv2D) build(inputs []tensor.Shape) {
	inChannels := inputs[0][0]
	k := l.cfg.KernelSize
	fanIn := inChannels * k * k
	fanOut := l.cfg.Filters * k * k

	l.kernel = l.ctx.newParameter(l.name, "kernel",
		glorotUniform(l.ctx.rng, fanIn, fanOut, tensor.Shape{l.cfg.Filters, inChannels, k, k}))
	if !l.cfg.NoBias {
		l.bias = l.ctx.newParameter(l.name, "bias", tensor.Zeros(tensor.Shape{l.cfg.Filters}))
	}
}

// Parameters returns the kernel and, if present, the bias.
func (l *Conv2D) Parameters() []*Parameter {
	switch {
	case l.kernel == nil:
		return nil
	case l.bias == nil:
		return []*Parameter{l.kernel}
	default:
		return []*Parameter{l.kernel, l.bias}
	}
}

// Forward convolves [N, C, H, W] into [N, filters, out_h, out_w].
func (l *Conv2D) Forward(inputs []*tensor.Tensor) (*tensor.Tensor, error) {
	x, err := single(l.name, inputs)
	if err != nil {
		return nil, err
	}
	shape := x.Shape()
	if len(shape) != 4 {
		return nil, &ShapeError{Layer: l.name, Actual: shape, Details: "expected [N, C, H, W]"}
	}

	pad := tensor.Padding2D{}
	if l.cfg.Padding == PaddingSame {
		pad.Top, pad.Bottom = samePadding(shape[2], l.cfg.KernelSize, l.cfg.Stride)
		pad.Left, pad.Right = samePadding(shape[3], l.cfg.KernelSize, l.cfg.Stride)
	}

	b := l.ctx.backend
	out := b.Conv2D(x, l.kernel.Tensor(), l.cfg.Stride, pad)
	if l.bias != nil {
		b.BiasAdd(out, l.bias.Tensor())
	}
	l.cfg.Activation.apply(b, out)
	return out, nil
}

// convOutputSize returns the output length of one spatial dimension.
func convOutputSize(in, kernel, stride int, padding Padding) int {
	if padding == PaddingSame {
		return (in + stride - 1) / stride
	}
	if in < kernel {
		return 0
	}
	return (in-kernel)/stride + 1
}

// samePadding splits the padding "same" needs for one dimension.
//
//	out   = ceil(in / stride)
//	total = max((out-1)*stride + kernel - in, 0)
//
// The odd pixel, if any, goes after the input.
func samePadding(in, kernel, stride int) (before, after int) {
	out := (in + stride - 1) / stride
	total := max((out-1)*stride+kernel-in, 0)
	return total / 2, total - total/2
}
