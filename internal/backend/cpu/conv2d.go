package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"

	"github.com/born-ml/simnet/internal/tensor"
)

// Conv2D performs 2D convolution using the im2col algorithm.
//
// Input shape:  [batch, in_channels, height, width]
// Kernel shape: [out_channels, in_channels, kernel_h, kernel_w]
// Output shape: [batch, out_channels, out_h, out_w]
//
// Where:
//
//	out_h = (height + pad.Top + pad.Bottom - kernel_h) / stride + 1
//	out_w = (width + pad.Left + pad.Right - kernel_w) / stride + 1
//
// Padding may be asymmetric, which is what "same" padding needs for even
// kernels or strided convolutions.
//
// Per sample:
//  1. Im2col: [C_in, H, W] -> col [H_out*W_out, C_in*K_h*K_w]
//  2. Sgemm: kernel [C_out, C_in*K_h*K_w] x colᵀ -> [C_out, H_out*W_out]
//
// The gemm result is already the NCHW layout of that sample, so it is
// written straight into the output. Samples run in parallel.
func (cpu *CPUBackend) Conv2D(input, kernel *tensor.Tensor, stride int, pad tensor.Padding2D) *tensor.Tensor {
	inputShape := input.Shape()
	kernelShape := kernel.Shape()

	if len(inputShape) != 4 {
		panic(fmt.Sprintf("conv2d: input must be 4D [N,C,H,W], got %dD", len(inputShape)))
	}
	if len(kernelShape) != 4 {
		panic(fmt.Sprintf("conv2d: kernel must be 4D [C_out,C_in,K_h,K_w], got %dD", len(kernelShape)))
	}
	if stride <= 0 {
		panic(fmt.Sprintf("conv2d: invalid stride %d", stride))
	}

	N, CIn, H, W := inputShape[0], inputShape[1], inputShape[2], inputShape[3]
	COut, CInK, KH, KW := kernelShape[0], kernelShape[1], kernelShape[2], kernelShape[3]

	if CIn != CInK {
		panic(fmt.Sprintf("conv2d: input channels %d != kernel channels %d", CIn, CInK))
	}

	HOut := (H+pad.Top+pad.Bottom-KH)/stride + 1
	WOut := (W+pad.Left+pad.Right-KW)/stride + 1
	if HOut <= 0 || WOut <= 0 {
		panic(fmt.Sprintf("conv2d: invalid output dimensions: out_h=%d, out_w=%d (check stride/padding)", HOut, WOut))
	}

	output := tensor.Zeros(tensor.Shape{N, COut, HOut, WOut})

	colWidth := CIn * KH * KW
	spatial := HOut * WOut
	k := blas32.General{Rows: COut, Cols: colWidth, Stride: colWidth, Data: kernel.Data()}
	in := input.Data()
	out := output.Data()

	cpu.forBatch(N, func(n int) {
		col := make([]float32, spatial*colWidth)
		im2col(col, in[n*CIn*H*W:(n+1)*CIn*H*W], CIn, H, W, KH, KW, HOut, WOut, stride, pad)

		blas32.Gemm(blas.NoTrans, blas.Trans, 1,
			k,
			blas32.General{Rows: spatial, Cols: colWidth, Stride: colWidth, Data: col},
			0,
			blas32.General{Rows: COut, Cols: spatial, Stride: spatial, Data: out[n*COut*spatial : (n+1)*COut*spatial]},
		)
	})

	return output
}

// im2col transforms one sample [C, H, W] into a column matrix
// [H_out*W_out, C*K_h*K_w]. Positions that fall in the padding read as zero.
func im2col(col, img []float32, C, H, W, KH, KW, HOut, WOut, stride int, pad tensor.Padding2D) {
	idx := 0
	for outH := 0; outH < HOut; outH++ {
		hStart := outH*stride - pad.Top
		for outW := 0; outW < WOut; outW++ {
			wStart := outW*stride - pad.Left
			for c := 0; c < C; c++ {
				plane := img[c*H*W : (c+1)*H*W]
				for kh := 0; kh < KH; kh++ {
					h := hStart + kh
					for kw := 0; kw < KW; kw++ {
						w := wStart + kw
						if h >= 0 && h < H && w >= 0 && w < W {
							col[idx] = plane[h*W+w]
						} else {
							col[idx] = 0
						}
						idx++
					}
				}
			}
		}
	}
}
