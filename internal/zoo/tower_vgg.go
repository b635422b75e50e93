package zoo

import (
	"fmt"

	"github.com/born-ml/simnet/internal/nn"
	"github.com/born-ml/simnet/internal/tensor"
)

// VGGEmbeddingSize is the length of the VGG-style tower embedding.
const VGGEmbeddingSize = 2048

var vggChannels = []int{64, 128, 256, 256, 512, 512}

// BuildTowerVGG builds the VGG-style siamese tower: six stages of two
// stride-1 ReLU convolutions and a 2x2 max pooling, then a flatten.
//
// Two Dense layers of VGGEmbeddingSize units, "dense_1" and
// "dense_encoding", are both called on the flattened tensor. Only
// "dense_encoding" feeds the output: "dense_1" keeps its weights in the
// context but is pruned from the model, and NewModel logs a warning.
//
// Height and width must be at least 64 so that six poolings leave a pixel.
func BuildTowerVGG(ctx *nn.Context, shape tensor.ImageShape, prefix string) (*nn.Model, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", prefix, ErrInvalidImageShape, err)
	}
	if minSide := 1 << len(vggChannels); shape.Height < minSide || shape.Width < minSide {
		return nil, fmt.Errorf("%s: %w: %v is smaller than %dx%d", prefix, ErrInvalidImageShape, shape, minSide, minSide)
	}

	conv := func(name string, filters int) *nn.Conv2D {
		return nn.NewConv2D(ctx, name, nn.Conv2DConfig{
			Filters:    filters,
			KernelSize: 3,
			Padding:    nn.PaddingSame,
			Activation: nn.ReLU,
		})
	}

	in := nn.ImageInput(ctx, prefix+"_input", shape)
	x := in
	for i, c := range vggChannels {
		x = conv(fmt.Sprintf("%s_conv2D_%d_1", prefix, i), c).Call(x)
		x = conv(fmt.Sprintf("%s_conv2D_%d_2", prefix, i), c).Call(x)
		x = nn.NewMaxPooling2D(ctx, fmt.Sprintf("%s_pool_%d", prefix, i), 2, 2).Call(x)
	}
	x = nn.NewFlatten(ctx, "").Call(x)
	nn.NewDense(ctx, "dense_1", nn.DenseConfig{Units: VGGEmbeddingSize}).Call(x)
	out := nn.NewDense(ctx, "dense_encoding", nn.DenseConfig{Units: VGGEmbeddingSize}).Call(x)

	return nn.NewModel(ctx, prefix, []*nn.Node{in}, out)
}
