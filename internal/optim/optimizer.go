// Package optim implements optimization algorithms that apply externally
// computed gradients to nn parameters.
//
// Example usage:
//
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 2e-4})
//	if err := model.Compile(optimizer, nn.MeanAbsoluteError{}); err != nil {
//	    return err
//	}
//
//	// grads computed elsewhere, keyed by parameter name
//	err := model.ApplyGradients(grads)
package optim

import (
	"fmt"

	"github.com/born-ml/simnet/internal/nn"
	"github.com/born-ml/simnet/internal/tensor"
)

// Config is the base configuration for all optimizers.
type Config struct {
	LR float32 // Learning rate
}

// getGradient retrieves and checks the gradient for a parameter.
//
// Returns nil if no gradient is found (parameter took no part in the step).
func getGradient(param *nn.Parameter, grads map[*nn.Parameter]*tensor.Tensor) (*tensor.Tensor, error) {
	g, ok := grads[param]
	if !ok || g == nil {
		return nil, nil
	}
	if !g.Shape().Equal(param.Shape()) {
		return nil, fmt.Errorf("gradient for %q has shape %v, parameter has %v",
			param.Name(), []int(g.Shape()), []int(param.Shape()))
	}
	return g, nil
}
