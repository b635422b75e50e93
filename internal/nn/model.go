package nn

import (
	"fmt"
	"slices"

	"github.com/born-ml/simnet/internal/tensor"
)

// Model is a named layer graph from input nodes to one output node.
//
// NewModel keeps only the nodes the output depends on: a layer whose
// output never reaches the model output is dropped (its weights stay in
// the Context arena) and reported with a warning.
//
// A Model is itself a Layer. Calling it on new nodes applies the same
// layers, with the same parameter storage, to those nodes:
//
//	tower, _ := nn.NewModel(ctx, "tower", []*nn.Node{in}, embedding)
//	a := tower.Call(inputA)
//	b := tower.Call(inputB) // shares every weight with a
type Model struct {
	layerBase
	inputs []*Node
	output *Node
	nodes  []*Node // reachable nodes in topological order, inputs included
	layers []Layer // distinct layers in order of first use

	optimizer Optimizer
	loss      Loss
}

// NewModel builds a model from inputs to output.
//
// It reports the Context's sticky error if graph construction failed, and
// ErrDisconnected if output depends on an input placeholder missing from
// inputs.
func NewModel(ctx *Context, name string, inputs []*Node, output *Node) (*Model, error) {
	m := &Model{layerBase: newLayerBase(ctx, name, "model")}
	if ctx.err != nil {
		return nil, ctx.err
	}
	if output == nil || len(inputs) == 0 {
		return nil, fmt.Errorf("model %q: %w: inputs and output are required", m.name, ErrInvalidConfig)
	}

	declared := make(map[*Node]bool, len(inputs))
	for i, in := range inputs {
		if in == nil || !isInput(in) {
			return nil, fmt.Errorf("model %q: %w: input %d is not an input placeholder", m.name, ErrInvalidConfig, i)
		}
		if in.ctx != ctx {
			return nil, fmt.Errorf("model %q: %w", m.name, ErrForeignNode)
		}
		declared[in] = true
	}
	if output.ctx != ctx {
		return nil, fmt.Errorf("model %q: %w", m.name, ErrForeignNode)
	}

	// Walk back from the output.
	reachable := make(map[*Node]bool)
	stack := []*Node{output}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if reachable[n] {
			continue
		}
		reachable[n] = true
		if isInput(n) && !declared[n] {
			return nil, fmt.Errorf("model %q: %w: output depends on input %q which is not a model input",
				m.name, ErrDisconnected, n.layer.Name())
		}
		stack = append(stack, n.inputs...)
	}

	// Node ids grow with creation and a node only references older nodes,
	// so id order is a topological order.
	for _, in := range inputs {
		reachable[in] = true
	}
	for _, n := range ctx.nodes {
		if reachable[n] {
			m.nodes = append(m.nodes, n)
		}
	}

	seen := make(map[Layer]bool)
	for _, n := range m.nodes {
		if !seen[n.layer] {
			seen[n.layer] = true
			m.layers = append(m.layers, n.layer)
		}
	}

	m.inputs = slices.Clone(inputs)
	m.output = output
	m.inShapes = m.InputShapes()

	for _, dead := range m.prunedLayers(ctx, reachable) {
		ctx.logger.Warn("layer output is not connected to the model output; layer pruned",
			"model", m.name, "layer", dead)
	}
	ctx.logger.Debug("model created",
		"model", m.name,
		"layers", len(m.layers),
		"params", m.CountParams())
	return m, nil
}

// prunedLayers lists layers called on this graph whose output was dropped.
func (m *Model) prunedLayers(ctx *Context, reachable map[*Node]bool) []string {
	var dead []string
	for _, n := range ctx.nodes {
		if reachable[n] || len(n.inputs) == 0 {
			continue
		}
		branch := true
		for _, in := range n.inputs {
			branch = branch && reachable[in]
		}
		if branch && !slices.Contains(m.layers, n.layer) {
			dead = append(dead, n.layer.Name())
		}
	}
	return dead
}

// Call applies the model to inputs, sharing its weights.
func (m *Model) Call(inputs ...*Node) *Node {
	return m.ctx.call(m, inputs)
}

// Kind returns "Model".
func (m *Model) Kind() string {
	return "Model"
}

// Inputs returns the input placeholders.
func (m *Model) Inputs() []*Node {
	return slices.Clone(m.inputs)
}

// Output returns the output node.
func (m *Model) Output() *Node {
	return m.output
}

// InputShapes returns the per-sample shape of each input.
func (m *Model) InputShapes() []tensor.Shape {
	shapes := make([]tensor.Shape, len(m.inputs))
	for i, in := range m.inputs {
		shapes[i] = in.shape
	}
	return shapes
}

// OutputShape checks inputs against the model inputs and returns the
// per-sample output shape.
func (m *Model) OutputShape(inputs []tensor.Shape) (tensor.Shape, error) {
	if len(inputs) != len(m.inputs) {
		return nil, fmt.Errorf("model %q: %w: expected %d inputs, got %d", m.name, ErrShapeMismatch, len(m.inputs), len(inputs))
	}
	for i, s := range inputs {
		if !s.Equal(m.inputs[i].shape) {
			return nil, &ShapeError{Layer: m.name, Expected: m.inputs[i].shape, Actual: s}
		}
	}
	return m.output.shape, nil
}

// Layers returns the distinct layers of the model, inputs included.
func (m *Model) Layers() []Layer {
	return slices.Clone(m.layers)
}

// Layer finds a direct layer of the model by name.
func (m *Model) Layer(name string) (Layer, bool) {
	for _, l := range m.layers {
		if l.Name() == name {
			return l, true
		}
	}
	return nil, false
}

// Parameters returns the model parameters, each exactly once even when
// a shared layer appears several times.
func (m *Model) Parameters() []*Parameter {
	var params []*Parameter
	seen := make(map[*Parameter]bool)
	for _, l := range m.layers {
		for _, p := range l.Parameters() {
			if !seen[p] {
				seen[p] = true
				params = append(params, p)
			}
		}
	}
	return params
}

// Parameter finds a model parameter by qualified name.
func (m *Model) Parameter(name string) (*Parameter, bool) {
	for _, p := range m.Parameters() {
		if p.name == name {
			return p, true
		}
	}
	return nil, false
}

// CountParams returns the number of trainable scalars.
func (m *Model) CountParams() int {
	return countParams(m.Parameters())
}

// Forward runs the graph on already validated batched inputs.
func (m *Model) Forward(inputs []*tensor.Tensor) (*tensor.Tensor, error) {
	if len(inputs) != len(m.inputs) {
		return nil, fmt.Errorf("model %q: %w: expected %d inputs, got %d", m.name, ErrShapeMismatch, len(m.inputs), len(inputs))
	}

	values := make(map[*Node]*tensor.Tensor, len(m.nodes))
	for i, in := range m.inputs {
		values[in] = inputs[i]
	}
	for _, n := range m.nodes {
		if _, fed := values[n]; fed {
			continue
		}
		args := make([]*tensor.Tensor, len(n.inputs))
		for i, in := range n.inputs {
			args[i] = values[in]
		}
		out, err := n.layer.Forward(args)
		if err != nil {
			return nil, fmt.Errorf("model %q: %w", m.name, err)
		}
		values[n] = out
	}
	return values[m.output], nil
}

// Predict validates batched inputs against the model inputs and runs the graph.
func (m *Model) Predict(inputs ...*tensor.Tensor) (*tensor.Tensor, error) {
	if len(inputs) != len(m.inputs) {
		return nil, fmt.Errorf("model %q: %w: expected %d inputs, got %d", m.name, ErrShapeMismatch, len(m.inputs), len(inputs))
	}
	batch := -1
	for i, x := range inputs {
		if x == nil {
			return nil, fmt.Errorf("model %q: %w: input %d is nil", m.name, ErrInvalidConfig, i)
		}
		shape := x.Shape()
		want := m.inputs[i].shape
		if len(shape) != len(want)+1 || !shape[1:].Equal(want) {
			return nil, &ShapeError{Layer: m.inputs[i].layer.Name(), Expected: want.WithBatch(batchOf(shape)), Actual: shape}
		}
		if batch >= 0 && shape[0] != batch {
			return nil, fmt.Errorf("model %q: %w: inputs have batch sizes %d and %d", m.name, ErrShapeMismatch, batch, shape[0])
		}
		batch = shape[0]
	}
	return m.Forward(inputs)
}

func batchOf(shape tensor.Shape) int {
	if len(shape) == 0 {
		return 1
	}
	return shape[0]
}
