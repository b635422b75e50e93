package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/simnet/internal/tensor"
)

func TestContrastiveLoss(t *testing.T) {
	tests := []struct {
		name string
		y, d float32
		want float32
	}{
		{"similar at zero distance", 1, 0, 0},
		{"dissimilar at zero distance", 0, 0, 1},
		{"similar at distance 2", 1, 2, 4},
		{"dissimilar beyond margin", 0, 1.5, 0},
		{"dissimilar inside margin", 0, 0.5, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ContrastiveLoss{}.Compute(
				tensor.Full(tensor.Shape{1}, tt.y),
				tensor.Full(tensor.Shape{1, 1}, tt.d))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestContrastiveLoss_MeanAndMargin(t *testing.T) {
	y := mustTensor(t, []float32{1, 0}, 2)
	d := mustTensor(t, []float32{1, 1}, 2, 1)

	got, err := ContrastiveLoss{}.Compute(y, d)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-6)

	got, err = ContrastiveLoss{Margin: 2}.Compute(y, d)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-6)

	_, err = ContrastiveLoss{}.Compute(y, tensor.Zeros(tensor.Shape{3, 1}))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestMeanAbsoluteError(t *testing.T) {
	got, err := MeanAbsoluteError{}.Compute(
		mustTensor(t, []float32{1, 2, 3, 4}, 2, 2),
		mustTensor(t, []float32{2, 2, 1, 4}, 2, 2))
	require.NoError(t, err)
	assert.InDelta(t, 0.75, got, 1e-6)

	_, err = MeanAbsoluteError{}.Compute(tensor.Zeros(tensor.Shape{2}), tensor.Zeros(tensor.Shape{3}))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestEuclideanDistance(t *testing.T) {
	a := mustTensor(t, []float32{1, 2, 3, 0, 0, 0}, 2, 3)
	b := mustTensor(t, []float32{1, 2, 3, 1, 2, 2}, 2, 3)

	d, err := EuclideanDistance(a, b)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 1}, d.Shape())

	// Identical rows hit the floor instead of zero.
	assert.GreaterOrEqual(t, d.Data()[0], float32(math.Sqrt(Epsilon))*0.9999)
	assert.Greater(t, d.Data()[0], float32(0))
	assert.InDelta(t, 3.0, d.Data()[1], 1e-6)

	_, err = EuclideanDistance(a, tensor.Zeros(tensor.Shape{2, 4}))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
