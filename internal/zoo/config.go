// Package zoo builds the image-reconstruction and image-similarity
// architectures on top of the nn layer graph.
//
// Each builder constructs one fixed topology inside a caller supplied
// nn.Context. Make wires a builder to its optimizer and loss.
package zoo

import (
	"fmt"
	"log/slog"

	"github.com/born-ml/simnet/internal/tensor"
)

// Architecture names accepted by Make.
const (
	DAE            = "dae"
	DAEStackedConv = "dae_stackedconv"
	Siamese        = "siamese"
	SiameseVGG     = "siamese_vgg19likeconvs"
)

// Config holds configuration for Make.
type Config struct {
	ImageShape tensor.ImageShape // Input image (default: 256x256x3)
	Seed       uint64            // Weight-initialization seed
	Backend    tensor.Backend    // Kernel backend (default: CPU)
	Logger     *slog.Logger      // Logger (default: slog.Default())
}

// DefaultConfig returns the configuration Make uses for unset fields.
func DefaultConfig() Config {
	return Config{
		ImageShape: tensor.ImageShape{Height: 256, Width: 256, Channels: 3},
		Logger:     slog.Default(),
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.ImageShape == (tensor.ImageShape{}) {
		c.ImageShape = def.ImageShape
	}
	if c.Logger == nil {
		c.Logger = def.Logger
	}
	return c
}

// checkSquare validates shape and returns its side length.
func checkSquare(arch string, shape tensor.ImageShape) (int, error) {
	if err := shape.Validate(); err != nil {
		return 0, fmt.Errorf("%s: %w: %v", arch, ErrInvalidImageShape, err)
	}
	if !shape.Square() {
		return 0, fmt.Errorf("%s: %w: %v is not square", arch, ErrInvalidImageShape, shape)
	}
	return shape.Height, nil
}
