// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers that apply externally computed
// gradients to nn parameters.
//
//	opt := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 2e-4})
//	err := model.Compile(opt, nn.MeanAbsoluteError{})
package optim

import (
	"github.com/born-ml/simnet/internal/optim"
	"github.com/born-ml/simnet/nn"
)

// Config represents the base configuration for optimizers.
type Config = optim.Config

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// Compile-time check that Adam implements nn.Optimizer.
var _ nn.Optimizer = (*Adam)(nil)

// NewAdam creates a new Adam optimizer.
func NewAdam(params []*nn.Parameter, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}
