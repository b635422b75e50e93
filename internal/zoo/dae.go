package zoo

import (
	"fmt"

	"github.com/born-ml/simnet/internal/nn"
	"github.com/born-ml/simnet/internal/tensor"
)

const daeKernelSize = 4

// BuildDAE builds the single-bottleneck convolutional autoencoder.
//
// For an S x S input, n = log2(S) stride-2 convolutions with widths 8*2^i
// halve the resolution down to 1x1, the last one named "encoding". The
// decoder mirrors them with UpSampling2D + convolution stages and ends in a
// 3-channel reconstruction of size S x S.
//
// S must be a power of two, at least 2.
func BuildDAE(ctx *nn.Context, shape tensor.ImageShape) (*nn.Model, error) {
	s, err := checkSquare(DAE, shape)
	if err != nil {
		return nil, err
	}
	if s < 2 || !tensor.IsPowerOfTwo(s) {
		return nil, fmt.Errorf("%s: %w: side %d is not a power of two >= 2", DAE, ErrInvalidImageShape, s)
	}

	n := tensor.Log2(s)
	channels := make([]int, n)
	for i := range channels {
		channels[i] = 8 << i
	}

	conv := func(name string, filters, stride int) *nn.Conv2D {
		return nn.NewConv2D(ctx, name, nn.Conv2DConfig{
			Filters:    filters,
			KernelSize: daeKernelSize,
			Stride:     stride,
			Padding:    nn.PaddingSame,
			Activation: nn.ReLU,
		})
	}

	in := nn.ImageInput(ctx, "dae_input", shape)
	x := in
	for i := range n - 1 {
		x = conv(fmt.Sprintf("dae_conv2D_%d", i), channels[i], 2).Call(x)
	}
	x = conv("encoding", channels[n-1], 2).Call(x)

	for i := range n - 1 {
		x = nn.NewUpSampling2D(ctx, "", 2).Call(x)
		x = conv(fmt.Sprintf("dae_deconv2D_%d", i), channels[n-2-i], 1).Call(x)
	}
	x = nn.NewUpSampling2D(ctx, "", 2).Call(x)
	out := conv("dae_deconv2D_last", 3, 1).Call(x)

	return nn.NewModel(ctx, DAE, []*nn.Node{in}, out)
}
