package tensor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5, 6}
	x, err := FromSlice(src, Shape{2, 3})
	require.NoError(t, err)

	src[0] = 100
	assert.Equal(t, float32(1), x.At(0, 0), "FromSlice must copy its input")
	assert.Equal(t, float32(6), x.At(1, 2))

	_, err = FromSlice(src, Shape{4, 2})
	assert.Error(t, err)
}

func TestSetAt(t *testing.T) {
	x := Zeros(Shape{2, 3, 4, 5})
	x.Set(7, 1, 2, 3, 4)
	assert.Equal(t, float32(7), x.At(1, 2, 3, 4))
	assert.Equal(t, float32(7), x.Data()[len(x.Data())-1])

	assert.Panics(t, func() { x.At(2, 0, 0, 0) })
	assert.Panics(t, func() { x.At(0, 0) })
}

func TestReshapeInfer(t *testing.T) {
	x := Zeros(Shape{2, 512})

	y, err := x.Reshape(2, -1, 1, 1)
	require.NoError(t, err)
	if diff := cmp.Diff(Shape{2, 512, 1, 1}, y.Shape()); diff != "" {
		t.Errorf("reshape mismatch (-want +got):\n%s", diff)
	}

	y.Data()[0] = 3
	assert.Equal(t, float32(3), x.At(0, 0), "reshape must share storage")

	_, err = x.Reshape(-1, -1)
	assert.Error(t, err)
	_, err = x.Reshape(3, -1)
	assert.Error(t, err)
	_, err = x.Reshape(2, 256)
	assert.Error(t, err)
}

func TestShapeHelpers(t *testing.T) {
	s := Shape{3, 8, 8}
	assert.Equal(t, 192, s.NumElements())
	assert.Equal(t, []int{64, 8, 1}, s.Strides())
	assert.Equal(t, Shape{5, 3, 8, 8}, s.WithBatch(5))
	assert.Equal(t, "(None, 3, 8, 8)", s.Batched())
	assert.Equal(t, 1, Shape{}.NumElements())
	assert.Error(t, Shape{3, 0}.Validate())

	img := ImageShape{Height: 256, Width: 256, Channels: 3}
	assert.Equal(t, Shape{3, 256, 256}, img.Shape())
	assert.Equal(t, "(256, 256, 3)", img.String())
	assert.NoError(t, img.Validate())
	assert.Error(t, ImageShape{Height: 8, Width: 8}.Validate())
}

func TestPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 256, 1024} {
		assert.True(t, IsPowerOfTwo(n), n)
	}
	for _, n := range []int{0, -4, 3, 6, 100, 255} {
		assert.False(t, IsPowerOfTwo(n), n)
	}
	assert.Equal(t, 8, Log2(256))
	assert.Equal(t, 0, Log2(1))
	assert.Equal(t, 6, Log2(100))
	assert.Panics(t, func() { Log2(0) })
}

func TestElementwiseOps(t *testing.T) {
	a, err := FromSlice([]float32{1, -2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	b, err := FromSlice([]float32{1, 2, 1, 2}, Shape{2, 2})
	require.NoError(t, err)

	d, err := Sub(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, -4, 2, 2}, d.Data())

	assert.Equal(t, []float32{0, 16, 4, 4}, Square(d).Data())
	assert.Equal(t, []float32{1, 2, 3, 4}, Abs(a).Data())
	assert.Equal(t, []float32{1, 0.5, 3, 4}, MaximumScalar(a, 0.5).Data())
	assert.InDelta(t, 2.0, Sqrt(Full(Shape{1}, 4)).Data()[0], 1e-6)

	sums := SumAxis1(Square(d))
	assert.Equal(t, Shape{2, 1}, sums.Shape())
	assert.Equal(t, []float32{16, 8}, sums.Data())

	assert.InDelta(t, 1.5, Mean(a), 1e-6)

	_, err = Sub(a, Zeros(Shape{4}))
	assert.Error(t, err)
}
