package zoo

import (
	"fmt"

	"github.com/born-ml/simnet/internal/nn"
	"github.com/born-ml/simnet/internal/tensor"
)

// EmbeddingSize is the length of the plain tower embedding.
const EmbeddingSize = 512

var towerChannels = []int{64, 64, 128, 128, 256, 256, 512, 512}

// BuildTower builds the plain siamese tower: eight stride-2 ReLU
// convolutions, a flatten and a linear Dense "dense_encoding" of
// EmbeddingSize units. Layers are named after prefix, which also names
// the model.
func BuildTower(ctx *nn.Context, shape tensor.ImageShape, prefix string) (*nn.Model, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", prefix, ErrInvalidImageShape, err)
	}

	in := nn.ImageInput(ctx, prefix+"_input", shape)
	x := in
	for i, c := range towerChannels {
		x = nn.NewConv2D(ctx, fmt.Sprintf("%s_conv2D_%d", prefix, i), nn.Conv2DConfig{
			Filters:    c,
			KernelSize: 3,
			Stride:     2,
			Padding:    nn.PaddingSame,
			Activation: nn.ReLU,
		}).Call(x)
	}
	x = nn.NewFlatten(ctx, "").Call(x)
	out := nn.NewDense(ctx, "dense_encoding", nn.DenseConfig{Units: EmbeddingSize}).Call(x)

	return nn.NewModel(ctx, prefix, []*nn.Node{in}, out)
}
