package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/simnet/internal/nn"
	"github.com/born-ml/simnet/internal/optim"
	"github.com/born-ml/simnet/internal/tensor"
)

var _ nn.Optimizer = (*optim.Adam)(nil)

func scalarParam(t *testing.T, name string, v float32) *nn.Parameter {
	t.Helper()
	x, err := tensor.FromSlice([]float32{v}, tensor.Shape{1})
	require.NoError(t, err)
	return nn.NewParameter(name, x)
}

// TestAdam_FirstStep checks that the first bias-corrected step moves a
// parameter by lr in the direction opposite to the gradient sign.
func TestAdam_FirstStep(t *testing.T) {
	p := scalarParam(t, "x", 1.0)
	adam := optim.NewAdam([]*nn.Parameter{p}, optim.AdamConfig{LR: 0.1})

	err := adam.Step(map[*nn.Parameter]*tensor.Tensor{p: tensor.Full(tensor.Shape{1}, 0.5)})
	require.NoError(t, err)

	assert.InDelta(t, 0.9, p.Tensor().Data()[0], 1e-5)
	assert.Equal(t, 1, adam.Timestep())
}

func TestAdam_Converges(t *testing.T) {
	// Minimize (x - 3)² with the analytic gradient 2(x - 3).
	p := scalarParam(t, "x", 0)
	adam := optim.NewAdam([]*nn.Parameter{p}, optim.AdamConfig{LR: 0.1})

	for range 500 {
		x := p.Tensor().Data()[0]
		require.NoError(t, adam.Step(map[*nn.Parameter]*tensor.Tensor{p: tensor.Full(tensor.Shape{1}, 2*(x-3))}))
	}
	assert.InDelta(t, 3.0, p.Tensor().Data()[0], 0.05)
}

func TestAdam_SkipsMissingGradients(t *testing.T) {
	a := scalarParam(t, "a", 1)
	b := scalarParam(t, "b", 1)
	adam := optim.NewAdam([]*nn.Parameter{a, b}, optim.AdamConfig{})

	require.NoError(t, adam.Step(map[*nn.Parameter]*tensor.Tensor{a: tensor.Full(tensor.Shape{1}, 1)}))
	assert.Less(t, a.Tensor().Data()[0], float32(1))
	assert.Equal(t, float32(1), b.Tensor().Data()[0])
}

func TestAdam_RejectsBadGradientShape(t *testing.T) {
	p := scalarParam(t, "x", 1)
	adam := optim.NewAdam([]*nn.Parameter{p}, optim.AdamConfig{})

	err := adam.Step(map[*nn.Parameter]*tensor.Tensor{p: tensor.Zeros(tensor.Shape{2})})
	assert.Error(t, err)
	assert.Equal(t, float32(1), p.Tensor().Data()[0])
	assert.Equal(t, 0, adam.Timestep())
}

func TestAdam_Defaults(t *testing.T) {
	adam := optim.NewAdam(nil, optim.AdamConfig{})
	assert.InDelta(t, 0.001, adam.LearningRate(), 1e-9)
	assert.Equal(t, "adam", adam.Name())

	adam.SetLearningRate(2e-4)
	assert.InDelta(t, 2e-4, adam.LearningRate(), 1e-9)
}
