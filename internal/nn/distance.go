package nn

import (
	"fmt"

	"github.com/born-ml/simnet/internal/tensor"
)

// Epsilon is the numerical floor applied under square roots.
const Epsilon = 1e-7

// EuclideanDistance computes, per row,
//
//	sqrt(max(sum((a - b)², axis=1), Epsilon))
//
// for embeddings a, b of shape [N, F] and returns [N, 1]. The floor keeps
// the result, and its gradient, finite for identical embeddings.
func EuclideanDistance(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	diff, err := tensor.Sub(a, b)
	if err != nil {
		return nil, fmt.Errorf("euclidean distance: %w: %v", ErrShapeMismatch, err)
	}
	return tensor.Sqrt(tensor.MaximumScalar(tensor.SumAxis1(tensor.Square(diff)), Epsilon)), nil
}

// EuclideanDistanceShape is the ShapeFunc of EuclideanDistance: two equal
// input shapes map to [1].
func EuclideanDistanceShape(inputs []tensor.Shape) (tensor.Shape, error) {
	if len(inputs) != 2 {
		return nil, fmt.Errorf("%w: euclidean distance takes 2 inputs, got %d", ErrShapeMismatch, len(inputs))
	}
	if !inputs[0].Equal(inputs[1]) {
		return nil, fmt.Errorf("%w: euclidean distance of %v and %v", ErrShapeMismatch, []int(inputs[0]), []int(inputs[1]))
	}
	return tensor.Shape{1}, nil
}

// NewEuclideanDistance creates a Lambda layer computing EuclideanDistance
// between its two inputs.
func NewEuclideanDistance(ctx *Context, name string) *Lambda {
	return NewLambda(ctx, name, func(inputs []*tensor.Tensor) (*tensor.Tensor, error) {
		if len(inputs) != 2 {
			return nil, fmt.Errorf("%w: euclidean distance takes 2 inputs, got %d", ErrShapeMismatch, len(inputs))
		}
		return EuclideanDistance(inputs[0], inputs[1])
	}, EuclideanDistanceShape)
}
