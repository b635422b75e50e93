// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the declarative layer-graph API.
//
// # Overview
//
// Layers are created in a Context, called on Nodes to wire a graph and
// wrapped into Models:
//   - Layers: Input, Conv2D, Dense, MaxPooling2D, UpSampling2D, Flatten, Reshape, Lambda
//   - Losses: MeanAbsoluteError, ContrastiveLoss
//   - Distance: EuclideanDistance
//   - Model: prediction, compilation, summaries, weight sharing
//
// # Basic Usage
//
//	ctx := nn.NewContext(nn.ContextConfig{Seed: 1})
//	in := nn.ImageInput(ctx, "img", tensor.ImageShape{Height: 32, Width: 32, Channels: 3})
//	x := nn.NewConv2D(ctx, "conv", nn.Conv2DConfig{
//	    Filters: 16, KernelSize: 3, Stride: 2, Padding: nn.PaddingSame, Activation: nn.ReLU,
//	}).Call(in)
//	x = nn.NewFlatten(ctx, "").Call(x)
//	x = nn.NewDense(ctx, "embedding", nn.DenseConfig{Units: 64}).Call(x)
//
//	model, err := nn.NewModel(ctx, "encoder", []*nn.Node{in}, x)
//	if err != nil {
//	    return err
//	}
//	model.Summary(os.Stdout)
//
// # Weight sharing
//
// A Model is a Layer. Calling it on new nodes reuses its parameters:
//
//	a, b := nn.ImageInput(ctx, "", shape), nn.ImageInput(ctx, "", shape)
//	d := nn.NewEuclideanDistance(ctx, "").Call(model.Call(a), model.Call(b))
//	pair, err := nn.NewModel(ctx, "pair", []*nn.Node{a, b}, d)
package nn
