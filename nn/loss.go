// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/simnet/internal/nn"
	"github.com/born-ml/simnet/tensor"
)

// Loss reduces targets and predictions to a scalar.
type Loss = nn.Loss

// MeanAbsoluteError computes mean(|y_true - y_pred|).
type MeanAbsoluteError = nn.MeanAbsoluteError

// ContrastiveLoss computes the contrastive loss of distances and labels.
type ContrastiveLoss = nn.ContrastiveLoss

// DefaultMargin is the contrastive-loss margin.
const DefaultMargin = nn.DefaultMargin

// Epsilon is the floor applied under square roots.
const Epsilon = nn.Epsilon

// EuclideanDistance computes sqrt(max(sum((a - b)², axis=1), Epsilon)).
func EuclideanDistance(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return nn.EuclideanDistance(a, b)
}

// NewEuclideanDistance creates a Lambda layer computing EuclideanDistance.
func NewEuclideanDistance(ctx *Context, name string) *Lambda {
	return nn.NewEuclideanDistance(ctx, name)
}

// Common errors.
var (
	ErrShapeMismatch = nn.ErrShapeMismatch
	ErrDuplicateName = nn.ErrDuplicateName
	ErrForeignNode   = nn.ErrForeignNode
	ErrInvalidConfig = nn.ErrInvalidConfig
	ErrDisconnected  = nn.ErrDisconnected
	ErrNotCompiled   = nn.ErrNotCompiled
)

// ShapeError describes a shape incompatibility.
type ShapeError = nn.ShapeError
