package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/simnet/internal/tensor"
)

func TestMaxPool2D(t *testing.T) {
	backend := New()

	data := make([]float32, 16)
	for i := range data {
		data[i] = float32(i + 1)
	}
	input := mustTensor(t, data, tensor.Shape{1, 1, 4, 4})

	output := backend.MaxPool2D(input, 2, 2)
	assert.Equal(t, tensor.Shape{1, 1, 2, 2}, output.Shape())
	assert.Equal(t, []float32{6, 8, 14, 16}, output.Data())
}

func TestMaxPool2D_OddInputFloors(t *testing.T) {
	backend := New()

	input := tensor.Full(tensor.Shape{2, 3, 5, 5}, -2)
	input.Set(-1, 1, 2, 3, 3)

	output := backend.MaxPool2D(input, 2, 2)
	assert.Equal(t, tensor.Shape{2, 3, 2, 2}, output.Shape())
	assert.Equal(t, float32(-1), output.At(1, 2, 1, 1))
	assert.Equal(t, float32(-2), output.At(0, 0, 0, 0))
}

func TestMaxPool2D_TooSmall(t *testing.T) {
	assert.Panics(t, func() { New().MaxPool2D(tensor.Zeros(tensor.Shape{1, 1, 1, 1}), 2, 2) })
}

func TestUpsample2D(t *testing.T) {
	backend := New()

	input := mustTensor(t, []float32{1, 2, 3, 4}, tensor.Shape{1, 1, 2, 2})
	output := backend.Upsample2D(input, 2)

	assert.Equal(t, tensor.Shape{1, 1, 4, 4}, output.Shape())
	assert.Equal(t, []float32{
		1, 1, 2, 2,
		1, 1, 2, 2,
		3, 3, 4, 4,
		3, 3, 4, 4,
	}, output.Data())
}
