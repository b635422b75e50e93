package tensor

import (
	"fmt"
	"math/rand/v2"
)

// Tensor is a dense float32 tensor stored in row-major order.
//
// Image tensors use the [batch, channels, height, width] layout.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{2, 3, 8, 8})
//	t.Set(1, 0, 0, 4, 4)
type Tensor struct {
	shape   Shape
	strides []int
	data    []float32
}

// New creates a tensor that takes ownership of data.
func New(data []float32, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", []int(shape), shape.NumElements(), len(data))
	}
	return &Tensor{
		shape:   shape.Clone(),
		strides: shape.Strides(),
		data:    data,
	}, nil
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	buf := make([]float32, len(data))
	copy(buf, data)
	return New(buf, shape)
}

// Zeros creates a zero-filled tensor.
// Panics if the shape is invalid.
func Zeros(shape Shape) *Tensor {
	t, err := New(make([]float32, shape.NumElements()), shape)
	if err != nil {
		panic(fmt.Sprintf("zeros: %v", err))
	}
	return t
}

// Full creates a tensor with every element set to value.
func Full(shape Shape, value float32) *Tensor {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Uniform creates a tensor with values drawn from U(lo, hi) using rng.
func Uniform(shape Shape, lo, hi float32, rng *rand.Rand) *Tensor {
	t := Zeros(shape)
	span := float64(hi - lo)
	for i := range t.data {
		t.data[i] = lo + float32(rng.Float64()*span)
	}
	return t
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// Data returns the underlying storage.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor) Data() []float32 {
	return t.data
}

// offset computes the flat index of indices, panicking when out of bounds.
func (t *Tensor) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}
	off := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		off += idx * t.strides[i]
	}
	return off
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) At(indices ...int) float32 {
	return t.data[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) Set(value float32, indices ...int) {
	t.data[t.offset(indices)] = value
}

// Reshape returns a view with a new shape over the same storage.
// One dimension may be -1, in which case it is inferred.
func (t *Tensor) Reshape(dims ...int) (*Tensor, error) {
	shape, err := InferShape(len(t.data), dims)
	if err != nil {
		return nil, err
	}
	return &Tensor{shape: shape, strides: shape.Strides(), data: t.data}, nil
}

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	data := make([]float32, len(t.data))
	copy(data, t.data)
	return &Tensor{shape: t.shape.Clone(), strides: t.shape.Strides(), data: data}
}

// Batch returns the size of the leading dimension.
func (t *Tensor) Batch() int {
	if len(t.shape) == 0 {
		return 1
	}
	return t.shape[0]
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor[float32]%v", []int(t.shape))
}

// InferShape resolves a single -1 entry in dims against n elements.
func InferShape(n int, dims []int) (Shape, error) {
	shape := make(Shape, len(dims))
	infer := -1
	known := 1
	for i, d := range dims {
		switch {
		case d == -1:
			if infer >= 0 {
				return nil, fmt.Errorf("reshape %v: only one dimension can be -1", dims)
			}
			infer = i
		case d <= 0:
			return nil, fmt.Errorf("reshape %v: invalid dimension %d", dims, d)
		default:
			known *= d
		}
		shape[i] = d
	}
	if infer >= 0 {
		if known == 0 || n%known != 0 {
			return nil, fmt.Errorf("reshape %v: cannot infer dimension for %d elements", dims, n)
		}
		shape[infer] = n / known
	}
	if shape.NumElements() != n {
		return nil, fmt.Errorf("reshape %v: %d elements do not fit shape %v", dims, n, []int(shape))
	}
	return shape, nil
}
