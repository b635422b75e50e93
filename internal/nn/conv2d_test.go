package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/simnet/internal/tensor"
)

// TestSamePadding checks the TensorFlow "same" split, where the odd pixel
// goes to the bottom/right.
func TestSamePadding(t *testing.T) {
	tests := []struct {
		in, kernel, stride int
		before, after      int
	}{
		{in: 8, kernel: 4, stride: 2, before: 1, after: 1},
		{in: 8, kernel: 3, stride: 2, before: 0, after: 1},
		{in: 8, kernel: 3, stride: 1, before: 1, after: 1},
		{in: 8, kernel: 4, stride: 1, before: 1, after: 2},
		{in: 1, kernel: 3, stride: 2, before: 1, after: 1},
		{in: 5, kernel: 1, stride: 2, before: 0, after: 0},
		{in: 7, kernel: 3, stride: 2, before: 1, after: 1},
	}
	for _, tt := range tests {
		before, after := samePadding(tt.in, tt.kernel, tt.stride)
		if before != tt.before || after != tt.after {
			t.Errorf("samePadding(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.in, tt.kernel, tt.stride, before, after, tt.before, tt.after)
		}
	}
}

func TestConvOutputSize(t *testing.T) {
	assert.Equal(t, 4, convOutputSize(8, 4, 2, PaddingSame))
	assert.Equal(t, 4, convOutputSize(7, 3, 2, PaddingSame))
	assert.Equal(t, 1, convOutputSize(1, 3, 2, PaddingSame))
	assert.Equal(t, 6, convOutputSize(8, 3, 1, PaddingValid))
	assert.Equal(t, 3, convOutputSize(8, 3, 2, PaddingValid))
	assert.Equal(t, 0, convOutputSize(2, 3, 1, PaddingValid))
}

func TestConv2D_Build(t *testing.T) {
	ctx := NewContext(ContextConfig{Seed: 1})
	in := ImageInput(ctx, "in", tensor.ImageShape{Height: 8, Width: 8, Channels: 3})
	conv := NewConv2D(ctx, "conv", Conv2DConfig{Filters: 6, KernelSize: 4, Stride: 2, Padding: PaddingSame, Activation: ReLU})

	assert.Nil(t, conv.Parameters(), "weights before the first call")
	out := conv.Call(in)
	require.NoError(t, ctx.Err())

	assert.Equal(t, tensor.Shape{6, 4, 4}, out.Shape())
	params := conv.Parameters()
	require.Len(t, params, 2)
	assert.Equal(t, "conv/kernel", params[0].Name())
	assert.Equal(t, tensor.Shape{6, 3, 4, 4}, params[0].Shape())
	assert.Equal(t, "conv/bias", params[1].Name())
	assert.Equal(t, tensor.Shape{6}, params[1].Shape())
	assert.Equal(t, "conv", params[0].Layer())

	// Glorot bound for fan_in 48 and fan_out 96.
	bound := float32(0.2042)
	for _, v := range params[0].Tensor().Data() {
		assert.LessOrEqual(t, v, bound)
		assert.GreaterOrEqual(t, v, -bound)
	}
	for _, v := range params[1].Tensor().Data() {
		assert.Equal(t, float32(0), v)
	}
}

func TestConv2D_NoBias(t *testing.T) {
	ctx := NewContext(ContextConfig{})
	in := Input(ctx, "", tensor.Shape{1, 4, 4})
	conv := NewConv2D(ctx, "", Conv2DConfig{Filters: 2, KernelSize: 3, NoBias: true})
	out := conv.Call(in)
	require.NoError(t, ctx.Err())

	assert.Equal(t, "conv2d_1", conv.Name())
	assert.Equal(t, tensor.Shape{2, 2, 2}, out.Shape())
	assert.Len(t, conv.Parameters(), 1)
}

// TestConv2D_ForwardValues tests a same-padded stride-2 convolution with
// known weights.
func TestConv2D_ForwardValues(t *testing.T) {
	ctx := NewContext(ContextConfig{})
	in := Input(ctx, "", tensor.Shape{1, 4, 4})
	conv := NewConv2D(ctx, "", Conv2DConfig{Filters: 1, KernelSize: 2, Stride: 2, Padding: PaddingSame, Activation: ReLU})
	out := conv.Call(in)
	model, err := NewModel(ctx, "m", []*Node{in}, out)
	require.NoError(t, err)

	// All-ones kernel sums each 2x2 window.
	copy(conv.kernel.Tensor().Data(), []float32{1, 1, 1, 1})
	conv.bias.Tensor().Data()[0] = -10

	x, err := tensor.FromSlice([]float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}, tensor.Shape{1, 1, 4, 4})
	require.NoError(t, err)

	y, err := model.Predict(x)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 1, 2, 2}, y.Shape())
	// Window sums 14, 22, 46, 54 minus 10.
	assert.Equal(t, []float32{4, 12, 36, 44}, y.Data())

	conv.bias.Tensor().Data()[0] = -20
	y, err = model.Predict(x)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 2, 26, 34}, y.Data(), "ReLU clamps negatives")
}

func TestConv2D_InvalidConfig(t *testing.T) {
	for name, cfg := range map[string]Conv2DConfig{
		"filters":    {KernelSize: 3},
		"kernel":     {Filters: 1},
		"stride":     {Filters: 1, KernelSize: 3, Stride: -1},
		"padding":    {Filters: 1, KernelSize: 3, Padding: "full"},
		"activation": {Filters: 1, KernelSize: 3, Activation: "gelu"},
	} {
		t.Run(name, func(t *testing.T) {
			ctx := NewContext(ContextConfig{})
			NewConv2D(ctx, "", cfg)
			assert.ErrorIs(t, ctx.Err(), ErrInvalidConfig)
		})
	}
}

func TestConv2D_RejectsWrongRank(t *testing.T) {
	ctx := NewContext(ContextConfig{})
	in := Input(ctx, "", tensor.Shape{16})
	out := NewConv2D(ctx, "c", Conv2DConfig{Filters: 1, KernelSize: 3}).Call(in)

	assert.Nil(t, out)
	var shapeErr *ShapeError
	require.ErrorAs(t, ctx.Err(), &shapeErr)
	assert.Equal(t, "c", shapeErr.Layer)
	assert.ErrorIs(t, ctx.Err(), ErrShapeMismatch)
}

func TestConv2D_ValidTooSmall(t *testing.T) {
	ctx := NewContext(ContextConfig{})
	in := Input(ctx, "", tensor.Shape{1, 2, 2})
	NewConv2D(ctx, "", Conv2DConfig{Filters: 1, KernelSize: 3}).Call(in)
	assert.ErrorIs(t, ctx.Err(), ErrShapeMismatch)
}
