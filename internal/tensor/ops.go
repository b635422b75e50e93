package tensor

import (
	"fmt"
	"math"
)

// Element-wise helpers used by losses and distance functions.
// They allocate their result and never modify their arguments.

// Sub returns a - b. Shapes must match.
func Sub(a, b *Tensor) (*Tensor, error) {
	if !a.shape.Equal(b.shape) {
		return nil, fmt.Errorf("sub: shape mismatch %v vs %v", []int(a.shape), []int(b.shape))
	}
	out := Zeros(a.shape)
	for i := range a.data {
		out.data[i] = a.data[i] - b.data[i]
	}
	return out, nil
}

// Square returns x².
func Square(x *Tensor) *Tensor {
	return apply(x, func(v float32) float32 { return v * v })
}

// Abs returns |x|.
func Abs(x *Tensor) *Tensor {
	return apply(x, func(v float32) float32 {
		if v < 0 {
			return -v
		}
		return v
	})
}

// Sqrt returns the element-wise square root.
func Sqrt(x *Tensor) *Tensor {
	return apply(x, func(v float32) float32 { return float32(math.Sqrt(float64(v))) })
}

// MaximumScalar returns max(x, s) element-wise.
func MaximumScalar(x *Tensor, s float32) *Tensor {
	return apply(x, func(v float32) float32 { return max(v, s) })
}

// SumAxis1 reduces a [N, ...] tensor to [N, 1] by summing everything but
// the leading dimension.
func SumAxis1(x *Tensor) *Tensor {
	n := x.Batch()
	out := Zeros(Shape{n, 1})
	row := len(x.data) / n
	for i := 0; i < n; i++ {
		var sum float32
		for _, v := range x.data[i*row : (i+1)*row] {
			sum += v
		}
		out.data[i] = sum
	}
	return out
}

// Mean returns the mean of all elements.
func Mean(x *Tensor) float32 {
	if len(x.data) == 0 {
		return 0
	}
	var sum float64
	for _, v := range x.data {
		sum += float64(v)
	}
	return float32(sum / float64(len(x.data)))
}

func apply(x *Tensor, f func(float32) float32) *Tensor {
	out := Zeros(x.shape)
	for i, v := range x.data {
		out.data[i] = f(v)
	}
	return out
}
