package cpu

import (
	"fmt"

	"github.com/born-ml/simnet/internal/tensor"
)

// Upsample2D performs nearest-neighbour upsampling.
//
// Input shape:  [batch, channels, height, width]
// Output shape: [batch, channels, height*factor, width*factor]
//
// Every input pixel is repeated into a factor x factor block.
func (cpu *CPUBackend) Upsample2D(input *tensor.Tensor, factor int) *tensor.Tensor {
	inputShape := input.Shape()
	if len(inputShape) != 4 {
		panic(fmt.Sprintf("upsample2d: expected 4D input [N,C,H,W], got %dD", len(inputShape)))
	}
	if factor <= 0 {
		panic(fmt.Sprintf("upsample2d: invalid factor %d", factor))
	}

	N, C, H, W := inputShape[0], inputShape[1], inputShape[2], inputShape[3]
	HOut, WOut := H*factor, W*factor
	output := tensor.Zeros(tensor.Shape{N, C, HOut, WOut})
	in := input.Data()
	out := output.Data()

	cpu.forBatch(N, func(n int) {
		for c := 0; c < C; c++ {
			src := in[(n*C+c)*H*W : (n*C+c+1)*H*W]
			dst := out[(n*C+c)*HOut*WOut : (n*C+c+1)*HOut*WOut]
			for h := 0; h < HOut; h++ {
				srcRow := src[(h/factor)*W : (h/factor+1)*W]
				dstRow := dst[h*WOut : (h+1)*WOut]
				for w := range dstRow {
					dstRow[w] = srcRow[w/factor]
				}
			}
		}
	})

	return output
}
