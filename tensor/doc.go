// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense float32 tensors used by simnet.
//
// # Overview
//
// Tensors are row-major and images are laid out NCHW:
//   - Shape: dimensions, per-sample shapes exclude the batch
//   - ImageShape: (height, width, channels) descriptor for image inputs
//   - Backend: the kernels a layer graph runs on
//
// # Basic Usage
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{1, 4})
//	img := tensor.ImageShape{Height: 256, Width: 256, Channels: 3}
//	batch := tensor.Zeros(img.Shape().WithBatch(8)) // [8, 3, 256, 256]
package tensor
