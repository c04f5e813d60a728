package gofft

import "fmt"

// naiveKernel is the O(N^2) DFT base case. It supports strided operation
// and an optional outer twiddle vector, which is how CompositeKernel uses
// it as a leaf of the mixed-radix plan for small odd prime factors.
type naiveKernel struct {
	sizeOps
	w       *twiddleTable
	scratch []complex128
}

func newNaiveKernel(n int) *naiveKernel {
	return &naiveKernel{sizeOps: sizeOps{n: n}, w: newTwiddleTable(n), scratch: make([]complex128, n)}
}

func (k *naiveKernel) stridedSize() int { return k.n }

func (k *naiveKernel) transformStrided(src []complex128, srcOff, srcStride int, dst []complex128, dstOff, dstStride int, outerW []complex128, outerWStride int) {
	n := k.n
	for out := 0; out < n; out++ {
		var sum complex128
		for in := 0; in < n; in++ {
			x := src[srcOff+in*srcStride]
			if outerW != nil {
				x *= outerW[(in*outerWStride)%len(outerW)]
			}
			sum += x * k.w.at(out*in)
		}
		dst[dstOff+out*dstStride] = sum
	}
}

func (k *naiveKernel) InPlaceForward(buf []complex128) error {
	if len(buf) != k.n {
		return &LengthError{Context: "NaiveKernel.InPlaceForward", Expected: k.n, Got: len(buf)}
	}
	k.transformStrided(buf, 0, 1, k.scratch, 0, 1, nil, 0)
	copy(buf, k.scratch)
	return nil
}

func (k *naiveKernel) InPlaceInverse(buf []complex128) error { return inPlaceInverseVia(k, buf) }

func (k *naiveKernel) RealForward(reals []float64) ([]complex128, error) { return realForwardVia(k, reals) }

func (k *naiveKernel) RealInverse(buf []complex128) ([]float64, error) { return realInverseVia(k, buf) }

func (k *naiveKernel) String() string { return fmt.Sprintf("NaiveFFT(%d)", k.n) }
