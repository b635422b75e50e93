package nn

import (
	"fmt"

	"github.com/born-ml/simnet/internal/tensor"
)

// Optimizer applies externally computed gradients to parameters.
//
// Gradient computation is not part of this package; see internal/optim
// for the implementations.
type Optimizer interface {
	// Name returns the optimizer identifier, e.g. "adam".
	Name() string

	// LearningRate returns the current learning rate.
	LearningRate() float32

	// Step updates every parameter that has an entry in grads.
	Step(grads map[*Parameter]*tensor.Tensor) error
}

// Compile binds an optimizer and a loss to the model.
//
// Compiling a model again replaces both. A tower compiled on its own keeps
// its own optimizer state even when a pair model embedding it is compiled
// with another one; the parameter storage stays shared.
func (m *Model) Compile(optimizer Optimizer, loss Loss) error {
	if optimizer == nil || loss == nil {
		return fmt.Errorf("model %q: %w: optimizer and loss are required", m.name, ErrInvalidConfig)
	}
	m.optimizer = optimizer
	m.loss = loss
	m.ctx.logger.Debug("model compiled",
		"model", m.name,
		"optimizer", optimizer.Name(),
		"lr", optimizer.LearningRate(),
		"loss", loss.Name())
	return nil
}

// Compiled reports whether Compile has been called.
func (m *Model) Compiled() bool {
	return m.optimizer != nil
}

// Optimizer returns the bound optimizer, or nil before Compile.
func (m *Model) Optimizer() Optimizer {
	return m.optimizer
}

// Loss returns the bound loss, or nil before Compile.
func (m *Model) Loss() Loss {
	return m.loss
}

// Evaluate runs the model on inputs and scores the prediction against yTrue.
func (m *Model) Evaluate(yTrue *tensor.Tensor, inputs ...*tensor.Tensor) (float32, error) {
	if !m.Compiled() {
		return 0, fmt.Errorf("model %q: %w", m.name, ErrNotCompiled)
	}
	pred, err := m.Predict(inputs...)
	if err != nil {
		return 0, err
	}
	loss, err := m.loss.Compute(yTrue, pred)
	if err != nil {
		return 0, fmt.Errorf("model %q: %w", m.name, err)
	}
	return loss, nil
}

// ApplyGradients hands gradients, keyed by qualified parameter name, to the
// bound optimizer.
func (m *Model) ApplyGradients(grads map[string]*tensor.Tensor) error {
	if !m.Compiled() {
		return fmt.Errorf("model %q: %w", m.name, ErrNotCompiled)
	}

	byParam := make(map[*Parameter]*tensor.Tensor, len(grads))
	for name, g := range grads {
		p, ok := m.Parameter(name)
		if !ok {
			return fmt.Errorf("model %q: %w: unknown parameter %q", m.name, ErrInvalidConfig, name)
		}
		if !g.Shape().Equal(p.Shape()) {
			return &ShapeError{Layer: p.layer, Expected: p.Shape(), Actual: g.Shape(), Details: "gradient for " + name}
		}
		byParam[p] = g
	}
	return m.optimizer.Step(byParam)
}
