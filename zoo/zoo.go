// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package zoo builds the simnet architectures.
//
//	models, err := zoo.Make(zoo.Siamese, zoo.Config{Seed: 1})
//	if err != nil {
//	    return err
//	}
//	tower, pair := models.Tower, models.Model // share every weight
//
// Architectures: dae, dae_stackedconv, siamese, siamese_vgg19likeconvs.
package zoo

import (
	"github.com/born-ml/simnet/internal/zoo"
	"github.com/born-ml/simnet/nn"
	"github.com/born-ml/simnet/tensor"
)

// Architecture names accepted by Make.
const (
	DAE            = zoo.DAE
	DAEStackedConv = zoo.DAEStackedConv
	Siamese        = zoo.Siamese
	SiameseVGG     = zoo.SiameseVGG
)

// Embedding sizes of the siamese towers.
const (
	EmbeddingSize    = zoo.EmbeddingSize
	VGGEmbeddingSize = zoo.VGGEmbeddingSize
)

// Common errors.
var (
	ErrUnknownArchitecture = zoo.ErrUnknownArchitecture
	ErrInvalidImageShape   = zoo.ErrInvalidImageShape
)

// Config holds configuration for Make.
type Config = zoo.Config

// DefaultConfig returns the configuration Make uses for unset fields.
func DefaultConfig() Config {
	return zoo.DefaultConfig()
}

// Models is the result of Make.
type Models = zoo.Models

// Make builds and compiles the architecture called name.
func Make(name string, cfg Config) (*Models, error) {
	return zoo.Make(name, cfg)
}

// Architectures returns the names accepted by Make.
func Architectures() []string {
	return zoo.Architectures()
}

// LearningRate returns the Adam learning rate of an architecture.
func LearningRate(name string) (float32, error) {
	return zoo.LearningRate(name)
}

// BuildDAE builds the single-bottleneck autoencoder in ctx.
func BuildDAE(ctx *nn.Context, shape tensor.ImageShape) (*nn.Model, error) {
	return zoo.BuildDAE(ctx, shape)
}

// BuildDAEStackedConv builds the stacked-convolution autoencoder in ctx.
func BuildDAEStackedConv(ctx *nn.Context, shape tensor.ImageShape) (*nn.Model, error) {
	return zoo.BuildDAEStackedConv(ctx, shape)
}

// BuildTower builds the plain siamese tower in ctx.
func BuildTower(ctx *nn.Context, shape tensor.ImageShape, prefix string) (*nn.Model, error) {
	return zoo.BuildTower(ctx, shape, prefix)
}

// BuildTowerVGG builds the VGG-style siamese tower in ctx.
func BuildTowerVGG(ctx *nn.Context, shape tensor.ImageShape, prefix string) (*nn.Model, error) {
	return zoo.BuildTowerVGG(ctx, shape, prefix)
}

// BuildSiamese builds the weight-shared pair model around tower.
func BuildSiamese(ctx *nn.Context, shape tensor.ImageShape, tower *nn.Model, name string) (*nn.Model, error) {
	return zoo.BuildSiamese(ctx, shape, tower, name)
}
