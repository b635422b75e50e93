package nn

import (
	"errors"
	"fmt"

	"github.com/born-ml/simnet/internal/tensor"
)

// Common errors.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrDuplicateName = errors.New("duplicate layer name")
	ErrForeignNode   = errors.New("node belongs to a different context")
	ErrInvalidConfig = errors.New("invalid layer configuration")
	ErrDisconnected  = errors.New("graph disconnected")
	ErrNotCompiled   = errors.New("model is not compiled")
)

// ShapeError provides detailed information about a shape incompatibility
// found while wiring or running a layer.
type ShapeError struct {
	Layer    string       // Layer that rejected its input
	Expected tensor.Shape // Shape the layer expected, if known
	Actual   tensor.Shape // Shape it received
	Details  string       // Additional details
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Expected != nil {
		return fmt.Sprintf("layer %q: expected input %v, got %v: %s", e.Layer, []int(e.Expected), []int(e.Actual), e.Details)
	}
	return fmt.Sprintf("layer %q: input %v: %s", e.Layer, []int(e.Actual), e.Details)
}

// Unwrap lets errors.Is match ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}
