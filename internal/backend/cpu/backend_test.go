package cpu

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/simnet/internal/parallel"
	"github.com/born-ml/simnet/internal/tensor"
)

var _ tensor.Backend = (*CPUBackend)(nil)

// randomTensor fills a tensor with values in [-1, 1).
func randomTensor(shape tensor.Shape, seed uint64) *tensor.Tensor {
	return tensor.Uniform(shape, -1, 1, rand.New(rand.NewPCG(seed, seed+1)))
}

func mustTensor(t *testing.T, data []float32, shape tensor.Shape) *tensor.Tensor {
	t.Helper()
	x, err := tensor.FromSlice(data, shape)
	require.NoError(t, err)
	return x
}

func TestBiasAdd(t *testing.T) {
	backend := New()

	x := tensor.Zeros(tensor.Shape{2, 3, 2, 2})
	bias := mustTensor(t, []float32{1, 2, 3}, tensor.Shape{3})
	backend.BiasAdd(x, bias)
	assert.Equal(t, float32(1), x.At(0, 0, 1, 1))
	assert.Equal(t, float32(2), x.At(1, 1, 0, 0))
	assert.Equal(t, float32(3), x.At(1, 2, 1, 0))

	dense := tensor.Zeros(tensor.Shape{2, 3})
	backend.BiasAdd(dense, bias)
	assert.Equal(t, []float32{1, 2, 3, 1, 2, 3}, dense.Data())

	assert.Panics(t, func() { backend.BiasAdd(dense, tensor.Zeros(tensor.Shape{2})) })
}

func TestReLU(t *testing.T) {
	x := mustTensor(t, []float32{-1, 0, 2, -0.5}, tensor.Shape{4})
	New().ReLU(x)
	assert.Equal(t, []float32{0, 0, 2, 0}, x.Data())
}

func TestMatMul(t *testing.T) {
	a := mustTensor(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	b := mustTensor(t, []float32{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})

	c := New().MatMul(a, b)
	assert.Equal(t, tensor.Shape{2, 2}, c.Shape())
	assert.Equal(t, []float32{58, 64, 139, 154}, c.Data())

	assert.Panics(t, func() { New().MatMul(a, a) })
}

func TestSequentialAndParallelAgree(t *testing.T) {
	input := randomTensor(tensor.Shape{5, 3, 9, 9}, 1)
	kernel := randomTensor(tensor.Shape{4, 3, 3, 3}, 2)
	pad := tensor.Padding2D{Top: 1, Bottom: 1, Left: 1, Right: 1}

	seq := NewWithConfig(parallel.Config{Enabled: false}).Conv2D(input, kernel, 2, pad)
	par := NewWithConfig(parallel.Config{Enabled: true, NumWorkers: 3, MinItems: 1}).Conv2D(input, kernel, 2, pad)
	assert.InDeltaSlice(t, seq.Data(), par.Data(), 1e-5)
}
