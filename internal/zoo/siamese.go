package zoo

import (
	"fmt"

	"github.com/born-ml/simnet/internal/nn"
	"github.com/born-ml/simnet/internal/tensor"
)

// BuildSiamese builds the pair model: two image inputs, the one tower
// called on each, and a Lambda computing their Euclidean distance.
//
// The tower must have been built in ctx for shape. Both branches reference
// the tower's parameters, so the pair and the tower share every weight.
// The output is [N, 1].
func BuildSiamese(ctx *nn.Context, shape tensor.ImageShape, tower *nn.Model, name string) (*nn.Model, error) {
	if tower == nil {
		return nil, fmt.Errorf("%s: %w: tower is required", name, nn.ErrInvalidConfig)
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", name, ErrInvalidImageShape, err)
	}

	inputA := nn.ImageInput(ctx, "", shape)
	inputB := nn.ImageInput(ctx, "", shape)

	embA := tower.Call(inputA)
	embB := tower.Call(inputB)

	distance := nn.NewEuclideanDistance(ctx, "").Call(embA, embB)

	return nn.NewModel(ctx, name, []*nn.Node{inputA, inputB}, distance)
}
