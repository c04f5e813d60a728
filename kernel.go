package gofft

import "math"

// Kernel is the public contract every FFT kernel satisfies: a fixed size,
// in-place complex transforms, real-input convenience wrappers, and the
// frequency/index conversions. A Kernel is immutable after construction and
// is *not* safe for concurrent use — its scratch buffers are reused on
// every call.
type Kernel interface {
	// Size returns N, the transform length this kernel was built for.
	Size() int

	// InPlaceForward computes the DFT of buf in place. len(buf) must equal
	// Size(), or a *LengthError is returned.
	InPlaceForward(buf []complex128) error

	// InPlaceInverse runs the forward transform and then applies the
	// canonical inverse symmetry (scale by 1/N, reverse-swap i and N-i for
	// i in [1, N/2]).
	InPlaceInverse(buf []complex128) error

	// RealForward widens reals to complex (zero imaginary part), runs the
	// forward transform, and returns a new length-N complex buffer.
	// len(reals) must equal Size().
	RealForward(reals []float64) ([]complex128, error)

	// RealInverse runs the forward transform on the caller's buffer
	// (mutating it) and returns the length-N real sequence implied by
	// the inverse-DFT convention. Callers that need to keep buf untouched
	// must pass a copy.
	RealInverse(buf []complex128) ([]float64, error)

	// FrequencyOfIndex converts a bin index to a frequency given a sample
	// rate: k*sampleRate/N.
	FrequencyOfIndex(k int, sampleRate float64) float64

	// IndexOfFrequency is the inverse of FrequencyOfIndex, rounded to the
	// nearest bin.
	IndexOfFrequency(freq, sampleRate float64) int

	// String returns a human-readable description for diagnostics, e.g.
	// "Radix2FFT(1024)", "PrimeFFT(23, padded)".
	String() string
}

// stridedTransformer is the internal capability CompositeKernel uses to run
// a sub-kernel over a strided region of a ping-pong buffer, optionally
// pre-multiplying each input element by an outer twiddle vector. It is
// never exposed to callers of the public Kernel API.
type stridedTransformer interface {
	// stridedSize is the N this transformer handles.
	stridedSize() int

	// transformStrided reads n = stridedSize() elements from src starting
	// at srcOff with stride srcStride, optionally multiplying element k by
	// outerW[(k*outerWStride) % len(outerW)] before transforming, and
	// writes the result to dst at dstOff with stride dstStride. src and
	// dst must be distinct.
	transformStrided(src []complex128, srcOff, srcStride int, dst []complex128, dstOff, dstStride int, outerW []complex128, outerWStride int)
}

// sizeOps implements the Size/FrequencyOfIndex/IndexOfFrequency trio shared
// by every concrete kernel.
type sizeOps struct {
	n int
}

func (s sizeOps) Size() int { return s.n }

func (s sizeOps) FrequencyOfIndex(k int, sampleRate float64) float64 {
	return float64(k) * sampleRate / float64(s.n)
}

func (s sizeOps) IndexOfFrequency(freq, sampleRate float64) int {
	return int(math.Round(freq * float64(s.n) / sampleRate))
}

// inPlaceInverseVia implements the canonical forward-then-symmetry inverse
// shared by every kernel, in terms of that kernel's own InPlaceForward.
func inPlaceInverseVia(k Kernel, buf []complex128) error {
	if err := k.InPlaceForward(buf); err != nil {
		return err
	}
	n := k.Size()
	invN := complex(1.0/float64(n), 0)
	for i := range buf {
		buf[i] *= invN
	}
	for i := 1; i <= n/2; i++ {
		j := n - i
		if i != j {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
	return nil
}

// realForwardVia implements RealForward in terms of InPlaceForward.
func realForwardVia(k Kernel, reals []float64) ([]complex128, error) {
	n := k.Size()
	if len(reals) != n {
		return nil, &LengthError{Context: "RealForward", Expected: n, Got: len(reals)}
	}
	buf := make([]complex128, n)
	for i, r := range reals {
		buf[i] = complex(r, 0)
	}
	if err := k.InPlaceForward(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// realInverseVia implements RealInverse in terms of InPlaceForward, per the
// documented contract: runs forward on the caller's buffer (mutating it).
func realInverseVia(k Kernel, buf []complex128) ([]float64, error) {
	n := k.Size()
	if len(buf) != n {
		return nil, &LengthError{Context: "RealInverse", Expected: n, Got: len(buf)}
	}
	if err := k.InPlaceForward(buf); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	out[0] = real(buf[0]) / float64(n)
	for i := 1; i < n; i++ {
		out[i] = real(buf[n-i]) / float64(n)
	}
	return out, nil
}
