package tensor

import (
	"fmt"
	"math/bits"
)

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides calculates row-major strides for the shape.
// stride[i] = product of all dimensions after i.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// WithBatch returns the shape prefixed with a leading batch dimension.
func (s Shape) WithBatch(n int) Shape {
	out := make(Shape, 0, len(s)+1)
	out = append(out, n)
	return append(out, s...)
}

// Batched renders a per-sample shape with an unknown batch dimension,
// e.g. (None, 3, 8, 8).
func (s Shape) Batched() string {
	out := "(None"
	for _, d := range s {
		out += fmt.Sprintf(", %d", d)
	}
	return out + ")"
}

// ImageShape describes an image input as (height, width, channels).
//
// Tensors built from an ImageShape use the channels-first layout
// [channels, height, width] per sample.
type ImageShape struct {
	Height   int
	Width    int
	Channels int
}

// Shape returns the per-sample channels-first tensor shape.
func (s ImageShape) Shape() Shape {
	return Shape{s.Channels, s.Height, s.Width}
}

// Validate checks that every dimension is positive.
func (s ImageShape) Validate() error {
	if s.Height <= 0 || s.Width <= 0 || s.Channels <= 0 {
		return fmt.Errorf("invalid image shape %v: all dimensions must be > 0", s)
	}
	return nil
}

// Square reports whether height equals width.
func (s ImageShape) Square() bool {
	return s.Height == s.Width
}

// String returns the shape as (H, W, C).
func (s ImageShape) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.Height, s.Width, s.Channels)
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns floor(log2(n)) for n > 0.
func Log2(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("log2: non-positive argument %d", n))
	}
	return bits.Len(uint(n)) - 1
}
