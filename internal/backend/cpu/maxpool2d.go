package cpu

import (
	"fmt"

	"github.com/born-ml/simnet/internal/tensor"
)

// MaxPool2D performs 2D max pooling without padding.
//
// Input shape:  [batch, channels, height, width]
// Output shape: [batch, channels, out_height, out_width]
//
// Where:
//
//	out_height = (height - size) / stride + 1
//	out_width = (width - size) / stride + 1
//
// Example (2x2 pool, stride=2):
//
//	Input: [[1,2,3,4],    Output: [[6,8],
//	        [5,6,7,8],             [14,16]]
//	        [9,10,11,12],
//	        [13,14,15,16]]
func (cpu *CPUBackend) MaxPool2D(input *tensor.Tensor, size, stride int) *tensor.Tensor {
	inputShape := input.Shape()
	if len(inputShape) != 4 {
		panic(fmt.Sprintf("maxpool2d: expected 4D input [N,C,H,W], got %dD", len(inputShape)))
	}
	if size <= 0 {
		panic(fmt.Sprintf("maxpool2d: invalid kernel size %d", size))
	}
	if stride <= 0 {
		panic(fmt.Sprintf("maxpool2d: invalid stride %d", stride))
	}

	N, C, H, W := inputShape[0], inputShape[1], inputShape[2], inputShape[3]
	HOut := (H-size)/stride + 1
	WOut := (W-size)/stride + 1
	if H < size || W < size {
		panic(fmt.Sprintf("maxpool2d: invalid output dimensions %dx%d (kernel=%d, stride=%d, input=%dx%d)",
			HOut, WOut, size, stride, H, W))
	}

	output := tensor.Zeros(tensor.Shape{N, C, HOut, WOut})
	in := input.Data()
	out := output.Data()

	cpu.forBatch(N, func(n int) {
		for c := 0; c < C; c++ {
			plane := in[(n*C+c)*H*W : (n*C+c+1)*H*W]
			dst := out[(n*C+c)*HOut*WOut : (n*C+c+1)*HOut*WOut]
			for outH := 0; outH < HOut; outH++ {
				hStart := outH * stride
				for outW := 0; outW < WOut; outW++ {
					wStart := outW * stride
					maxVal := plane[hStart*W+wStart]
					for kh := 0; kh < size; kh++ {
						row := plane[(hStart+kh)*W : (hStart+kh+1)*W]
						for kw := 0; kw < size; kw++ {
							if v := row[wStart+kw]; v > maxVal {
								maxVal = v
							}
						}
					}
					dst[outH*WOut+outW] = maxVal
				}
			}
		}
	})

	return output
}
