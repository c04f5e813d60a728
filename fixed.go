package gofft

import (
	"fmt"
	"math"
)

// fixed2Kernel is the hand-unrolled size-2 DFT: X0 = x0+x1, X1 = x0-x1.
type fixed2Kernel struct {
	sizeOps
}

func newFixed2Kernel() *fixed2Kernel { return &fixed2Kernel{sizeOps{n: 2}} }

func (k *fixed2Kernel) stridedSize() int { return 2 }

func (k *fixed2Kernel) transformStrided(src []complex128, srcOff, srcStride int, dst []complex128, dstOff, dstStride int, outerW []complex128, outerWStride int) {
	x0 := src[srcOff]
	x1 := src[srcOff+srcStride]
	if outerW != nil {
		x0 *= outerW[0]
		x1 *= outerW[outerWStride%len(outerW)]
	}
	dst[dstOff] = x0 + x1
	dst[dstOff+dstStride] = x0 - x1
}

func (k *fixed2Kernel) InPlaceForward(buf []complex128) error {
	if len(buf) != 2 {
		return &LengthError{Context: "Fixed2Kernel.InPlaceForward", Expected: 2, Got: len(buf)}
	}
	x0, x1 := buf[0], buf[1]
	buf[0] = x0 + x1
	buf[1] = x0 - x1
	return nil
}

func (k *fixed2Kernel) InPlaceInverse(buf []complex128) error { return inPlaceInverseVia(k, buf) }
func (k *fixed2Kernel) RealForward(reals []float64) ([]complex128, error) {
	return realForwardVia(k, reals)
}
func (k *fixed2Kernel) RealInverse(buf []complex128) ([]float64, error) { return realInverseVia(k, buf) }
func (k *fixed2Kernel) String() string                                  { return "Fixed2FFT()" }

// fixed3Kernel is the hand-unrolled size-3 DFT using the exact constants
// cos(2*pi/3) = -1/2 and sin(2*pi/3) = sqrt(3)/2.
type fixed3Kernel struct {
	sizeOps
}

const (
	fixed3Tx = -0.5
)

var fixed3Ty = math.Sqrt(3) / 2

func newFixed3Kernel() *fixed3Kernel { return &fixed3Kernel{sizeOps{n: 3}} }

func (k *fixed3Kernel) stridedSize() int { return 3 }

func (k *fixed3Kernel) transformStrided(src []complex128, srcOff, srcStride int, dst []complex128, dstOff, dstStride int, outerW []complex128, outerWStride int) {
	x0 := src[srcOff]
	x1 := src[srcOff+srcStride]
	x2 := src[srcOff+2*srcStride]
	if outerW != nil {
		x0 *= outerW[0]
		x1 *= outerW[(outerWStride)%len(outerW)]
		x2 *= outerW[(2*outerWStride)%len(outerW)]
	}
	x12 := x1 + x2
	dz := x1 - x2
	rot := complex(0, fixed3Ty) * dz
	base := x0 + complex(fixed3Tx, 0)*x12
	dst[dstOff] = x0 + x12
	dst[dstOff+dstStride] = base - rot
	dst[dstOff+2*dstStride] = base + rot
}

func (k *fixed3Kernel) InPlaceForward(buf []complex128) error {
	if len(buf) != 3 {
		return &LengthError{Context: "Fixed3Kernel.InPlaceForward", Expected: 3, Got: len(buf)}
	}
	scratch := [3]complex128{}
	k.transformStrided(buf, 0, 1, scratch[:], 0, 1, nil, 0)
	copy(buf, scratch[:])
	return nil
}

func (k *fixed3Kernel) InPlaceInverse(buf []complex128) error { return inPlaceInverseVia(k, buf) }
func (k *fixed3Kernel) RealForward(reals []float64) ([]complex128, error) {
	return realForwardVia(k, reals)
}
func (k *fixed3Kernel) RealInverse(buf []complex128) ([]float64, error) { return realInverseVia(k, buf) }
func (k *fixed3Kernel) String() string                                  { return "Fixed3FFT()" }

var _ fmt.Stringer = (*fixed2Kernel)(nil)
