// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand/v2"

	"github.com/born-ml/simnet/internal/tensor"
)

// Tensor is a dense float32 tensor.
type Tensor = tensor.Tensor

// Shape represents tensor dimensions.
type Shape = tensor.Shape

// ImageShape describes an image input as (height, width, channels).
type ImageShape = tensor.ImageShape

// Backend is the kernel interface layer graphs execute on.
type Backend = tensor.Backend

// Device identifies where a backend runs.
type Device = tensor.Device

// Padding2D is the per-side padding of a 2D convolution.
type Padding2D = tensor.Padding2D

// CPU is the host device.
const CPU = tensor.CPU

// New wraps data, without copying, in a tensor of the given shape.
func New(data []float32, shape Shape) (*Tensor, error) {
	return tensor.New(data, shape)
}

// FromSlice copies data into a new tensor of the given shape.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Full creates a tensor filled with value.
func Full(shape Shape, value float32) *Tensor {
	return tensor.Full(shape, value)
}

// Uniform creates a tensor of samples from U(lo, hi).
func Uniform(shape Shape, lo, hi float32, rng *rand.Rand) *Tensor {
	return tensor.Uniform(shape, lo, hi, rng)
}
