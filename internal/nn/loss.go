package nn

import (
	"fmt"

	"github.com/born-ml/simnet/internal/tensor"
)

// Loss reduces targets and predictions to a scalar training objective.
type Loss interface {
	// Name returns the loss identifier, e.g. "mean_absolute_error".
	Name() string

	// Compute returns the loss for a batch.
	Compute(yTrue, yPred *tensor.Tensor) (float32, error)
}

// MeanAbsoluteError computes mean(|y_true - y_pred|) over every element.
//
// It is the reconstruction loss of the autoencoders.
type MeanAbsoluteError struct{}

// Name returns "mean_absolute_error".
func (MeanAbsoluteError) Name() string {
	return "mean_absolute_error"
}

// Compute returns the mean absolute error. Shapes must match.
func (MeanAbsoluteError) Compute(yTrue, yPred *tensor.Tensor) (float32, error) {
	diff, err := tensor.Sub(yTrue, yPred)
	if err != nil {
		return 0, fmt.Errorf("mean_absolute_error: %w: %v", ErrShapeMismatch, err)
	}
	return tensor.Mean(tensor.Abs(diff)), nil
}

// DefaultMargin is the contrastive-loss margin.
const DefaultMargin = 1.0

// ContrastiveLoss computes the Hadsell, Chopra and LeCun (2006) loss for a
// predicted distance d and a binary label y (1 = similar pair):
//
//	mean(y * d² + (1 - y) * max(margin - d, 0)²)
type ContrastiveLoss struct {
	Margin float32 // Margin for dissimilar pairs (default: 1)
}

// Name returns "contrastive".
func (ContrastiveLoss) Name() string {
	return "contrastive"
}

// Compute returns the contrastive loss. yTrue and yPred must hold the same
// number of elements, so [N] labels may be paired with [N, 1] distances.
func (c ContrastiveLoss) Compute(yTrue, yPred *tensor.Tensor) (float32, error) {
	if yTrue.NumElements() != yPred.NumElements() {
		return 0, fmt.Errorf("contrastive: %w: labels %v vs distances %v",
			ErrShapeMismatch, []int(yTrue.Shape()), []int(yPred.Shape()))
	}
	margin := c.Margin
	if margin == 0 {
		margin = DefaultMargin
	}

	y := yTrue.Data()
	d := yPred.Data()
	if len(d) == 0 {
		return 0, nil
	}
	var sum float64
	for i := range d {
		hinge := max(margin-d[i], 0)
		sum += float64(y[i]*d[i]*d[i] + (1-y[i])*hinge*hinge)
	}
	return float32(sum / float64(len(d))), nil
}
