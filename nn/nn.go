// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/simnet/internal/nn"
	"github.com/born-ml/simnet/tensor"
)

// Context is the computation context every layer is built in.
type Context = nn.Context

// ContextConfig holds configuration for a Context.
type ContextConfig = nn.ContextConfig

// NewContext creates a Context, filling unset fields with defaults.
func NewContext(cfg ContextConfig) *Context {
	return nn.NewContext(cfg)
}

// Layer is the common interface of every graph component.
type Layer = nn.Layer

// Node is the symbolic output of one layer call.
type Node = nn.Node

// Parameter represents a trainable weight tensor.
type Parameter = nn.Parameter

// NewParameter creates a standalone parameter.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, t)
}

// Activation selects the element-wise function applied after a layer.
type Activation = nn.Activation

// Supported activations.
const (
	Linear = nn.Linear
	ReLU   = nn.ReLU
)

// Padding selects the convolution border policy.
type Padding = nn.Padding

// Supported paddings.
const (
	PaddingValid = nn.PaddingValid
	PaddingSame  = nn.PaddingSame
)

// Input creates an input placeholder.
func Input(ctx *Context, name string, shape tensor.Shape) *Node {
	return nn.Input(ctx, name, shape)
}

// ImageInput creates an image placeholder of shape [C, H, W].
func ImageInput(ctx *Context, name string, shape tensor.ImageShape) *Node {
	return nn.ImageInput(ctx, name, shape)
}

// Conv2D represents a 2D convolutional layer.
type Conv2D = nn.Conv2D

// Conv2DConfig holds configuration for Conv2D.
type Conv2DConfig = nn.Conv2DConfig

// NewConv2D creates a convolution layer.
func NewConv2D(ctx *Context, name string, cfg Conv2DConfig) *Conv2D {
	return nn.NewConv2D(ctx, name, cfg)
}

// Dense represents a fully connected layer.
type Dense = nn.Dense

// DenseConfig holds configuration for Dense.
type DenseConfig = nn.DenseConfig

// NewDense creates a dense layer.
func NewDense(ctx *Context, name string, cfg DenseConfig) *Dense {
	return nn.NewDense(ctx, name, cfg)
}

// MaxPooling2D represents a 2D max pooling layer.
type MaxPooling2D = nn.MaxPooling2D

// NewMaxPooling2D creates a pooling layer. A zero stride defaults to pool.
func NewMaxPooling2D(ctx *Context, name string, pool, stride int) *MaxPooling2D {
	return nn.NewMaxPooling2D(ctx, name, pool, stride)
}

// UpSampling2D represents a nearest-neighbour upsampling layer.
type UpSampling2D = nn.UpSampling2D

// NewUpSampling2D creates an upsampling layer. A zero size defaults to 2.
func NewUpSampling2D(ctx *Context, name string, size int) *UpSampling2D {
	return nn.NewUpSampling2D(ctx, name, size)
}

// Flatten collapses the per-sample dimensions.
type Flatten = nn.Flatten

// NewFlatten creates a flatten layer.
func NewFlatten(ctx *Context, name string) *Flatten {
	return nn.NewFlatten(ctx, name)
}

// Reshape gives the per-sample tensor a new shape.
type Reshape = nn.Reshape

// NewReshape creates a reshape layer. One dimension may be -1.
func NewReshape(ctx *Context, name string, dims ...int) *Reshape {
	return nn.NewReshape(ctx, name, dims...)
}

// Lambda wraps a parameter-free tensor function as a layer.
type Lambda = nn.Lambda

// LambdaFunc computes a batched output from batched inputs.
type LambdaFunc = nn.LambdaFunc

// ShapeFunc infers a per-sample output shape.
type ShapeFunc = nn.ShapeFunc

// NewLambda creates a lambda layer.
func NewLambda(ctx *Context, name string, fn LambdaFunc, shape ShapeFunc) *Lambda {
	return nn.NewLambda(ctx, name, fn, shape)
}

// Model is a named layer graph.
type Model = nn.Model

// NewModel builds a model from inputs to output.
func NewModel(ctx *Context, name string, inputs []*Node, output *Node) (*Model, error) {
	return nn.NewModel(ctx, name, inputs, output)
}

// Optimizer applies externally computed gradients.
type Optimizer = nn.Optimizer
