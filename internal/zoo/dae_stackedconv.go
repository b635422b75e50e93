package zoo

import (
	"fmt"

	"github.com/born-ml/simnet/internal/nn"
	"github.com/born-ml/simnet/internal/tensor"
)

const (
	stackedKernelSize    = 3
	stackedFirstChannels = 64
	stackedEncodingUnits = 512
)

// BuildDAEStackedConv builds the autoencoder with paired strided
// convolutions and a dense bottleneck.
//
// n = log2(S)/2 encoder stages each apply two stride-2 convolutions of
// width 64*2^i. The 1x1 result is flattened into a 512-wide Dense
// "encoding", reshaped to 1x1 and decoded with paired UpSampling2D +
// convolution stages.
//
// S must be a power of four, at least 4, so the encoder ends at 1x1.
func BuildDAEStackedConv(ctx *nn.Context, shape tensor.ImageShape) (*nn.Model, error) {
	s, err := checkSquare(DAEStackedConv, shape)
	if err != nil {
		return nil, err
	}
	if s < 4 || !tensor.IsPowerOfTwo(s) || tensor.Log2(s)%2 != 0 {
		return nil, fmt.Errorf("%s: %w: side %d is not a power of four >= 4", DAEStackedConv, ErrInvalidImageShape, s)
	}

	n := tensor.Log2(s) / 2
	channels := make([]int, n)
	for i := range channels {
		channels[i] = stackedFirstChannels << i
	}

	conv := func(name string, filters, stride int) *nn.Conv2D {
		return nn.NewConv2D(ctx, name, nn.Conv2DConfig{
			Filters:    filters,
			KernelSize: stackedKernelSize,
			Stride:     stride,
			Padding:    nn.PaddingSame,
			Activation: nn.ReLU,
		})
	}
	up := func(x *nn.Node) *nn.Node {
		return nn.NewUpSampling2D(ctx, "", 2).Call(x)
	}

	in := nn.ImageInput(ctx, "dae_input", shape)
	x := in
	for i := range n {
		x = conv(fmt.Sprintf("dae_conv2D_%d", 2*i+1), channels[i], 2).Call(x)
		x = conv(fmt.Sprintf("dae_conv2D_%d", 2*i+2), channels[i], 2).Call(x)
	}

	x = nn.NewFlatten(ctx, "").Call(x)
	x = nn.NewDense(ctx, "encoding", nn.DenseConfig{Units: stackedEncodingUnits}).Call(x)
	x = nn.NewReshape(ctx, "", -1, 1, 1).Call(x)

	x = conv("dae_deconv2D_0", channels[n-1], 1).Call(up(x))
	for i := range n - 1 {
		x = conv(fmt.Sprintf("dae_deconv2D_%d", 2*i+1), channels[n-2-i], 1).Call(up(x))
		x = conv(fmt.Sprintf("dae_deconv2D_%d", 2*i+2), channels[n-2-i], 1).Call(up(x))
	}
	out := conv("dae_deconv2D_last", 3, 1).Call(up(x))

	return nn.NewModel(ctx, DAEStackedConv, []*nn.Node{in}, out)
}
