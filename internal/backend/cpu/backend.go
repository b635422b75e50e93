// Package cpu implements the CPU backend, with gonum BLAS for matrix products.
package cpu

import (
	"fmt"

	"github.com/born-ml/simnet/internal/parallel"
	"github.com/born-ml/simnet/internal/tensor"
)

// CPUBackend implements tensor kernels on CPU.
type CPUBackend struct {
	device   tensor.Device
	parallel parallel.Config
}

// New creates a new CPU backend splitting batch work across all CPUs.
func New() *CPUBackend {
	return &CPUBackend{
		device:   tensor.CPU,
		parallel: parallel.DefaultConfig(),
	}
}

// NewWithConfig creates a CPU backend with explicit parallelism settings.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{device: tensor.CPU, parallel: cfg}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// BiasAdd adds bias [C] along dimension 1 of x, in place.
// x may be [N, C] or [N, C, ...].
func (cpu *CPUBackend) BiasAdd(x, bias *tensor.Tensor) {
	shape := x.Shape()
	if len(shape) < 2 {
		panic(fmt.Sprintf("bias_add: expected at least 2D input, got %dD", len(shape)))
	}
	C := shape[1]
	if bias.NumElements() != C {
		panic(fmt.Sprintf("bias_add: bias has %d elements, input has %d channels", bias.NumElements(), C))
	}

	inner := 1
	for _, d := range shape[2:] {
		inner *= d
	}
	data := x.Data()
	b := bias.Data()
	for n := 0; n < shape[0]; n++ {
		for c := 0; c < C; c++ {
			plane := data[(n*C+c)*inner : (n*C+c+1)*inner]
			for i := range plane {
				plane[i] += b[c]
			}
		}
	}
}

// ReLU applies max(x, 0) in place.
func (cpu *CPUBackend) ReLU(x *tensor.Tensor) {
	data := x.Data()
	for i, v := range data {
		if v < 0 {
			data[i] = 0
		}
	}
}

// forBatch runs f for every sample index, in parallel when configured.
func (cpu *CPUBackend) forBatch(n int, f func(i int)) {
	parallel.For(n, f, cpu.parallel)
}
