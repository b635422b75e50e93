package tensor

// Device represents the compute device for tensor operations.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	default:
		return "Unknown"
	}
}

// Padding2D holds explicit zero padding for the four edges of an image.
type Padding2D struct {
	Top, Bottom, Left, Right int
}

// Backend executes the heavy kernels a layer graph needs.
//
// Implementations panic on malformed arguments: the graph layer checks
// shapes before dispatching.
type Backend interface {
	// Name returns the backend name.
	Name() string

	// Device returns the compute device.
	Device() Device

	// Conv2D convolves input [N, C_in, H, W] with kernel
	// [C_out, C_in, K_h, K_w] and returns [N, C_out, H_out, W_out].
	Conv2D(input, kernel *Tensor, stride int, pad Padding2D) *Tensor

	// MaxPool2D applies max pooling with a square window.
	MaxPool2D(input *Tensor, size, stride int) *Tensor

	// Upsample2D repeats every pixel factor times along height and width.
	Upsample2D(input *Tensor, factor int) *Tensor

	// MatMul multiplies a [M, K] by b [K, N].
	MatMul(a, b *Tensor) *Tensor

	// BiasAdd adds bias [C] along dimension 1 of x, in place.
	BiasAdd(x, bias *Tensor)

	// ReLU applies max(x, 0) in place.
	ReLU(x *Tensor)
}
