package gofft

import "math"

// FromReal widens x to a complex buffer with zero imaginary parts. If n is
// 0 or negative the result has length len(x); otherwise it is truncated or
// zero-padded to length n.
func FromReal(x []float64, n int) []complex128 {
	if n <= 0 {
		n = len(x)
	}
	out := make([]complex128, n)
	for i := 0; i < n && i < len(x); i++ {
		out[i] = complex(x[i], 0)
	}
	return out
}

// Real returns the real parts of x, discarding the imaginary parts.
func Real(x []complex128) []float64 {
	out := make([]float64, len(x))
	for i, c := range x {
		out[i] = real(c)
	}
	return out
}

// Magnitudes returns cmplx.Abs of every element of x.
func Magnitudes(x []complex128) []float64 {
	out := make([]float64, len(x))
	for i, c := range x {
		out[i] = math.Hypot(real(c), imag(c))
	}
	return out
}

// SquaredMagnitudes returns |x[i]|^2, cheaper than Magnitudes when the
// square root isn't needed (e.g. power spectra).
func SquaredMagnitudes(x []complex128) []float64 {
	out := make([]float64, len(x))
	for i, c := range x {
		out[i] = real(c)*real(c) + imag(c)*imag(c)
	}
	return out
}

// Multiply writes a[i] *= b[i] for every i. Returns a LengthError if a and b
// have different lengths.
func Multiply(a, b []complex128) error {
	if len(a) != len(b) {
		return &LengthError{Context: "Multiply", Expected: len(a), Got: len(b)}
	}
	for i := range a {
		a[i] *= b[i]
	}
	return nil
}

// DiscardConjugates returns the non-redundant half of a Hermitian-symmetric
// spectrum of length N: indices [0, N/2].
func DiscardConjugates(x []complex128) []complex128 {
	return x[:len(x)/2+1]
}

// CreateConjugates rebuilds a full length-outputLength spectrum from its
// non-redundant half by mirroring conjugates, per the parity of
// outputLength: outputLength must be 2*len(half)-2 (even) or 2*len(half)-1
// (odd), else a LengthError is returned.
func CreateConjugates(half []complex128, outputLength int) ([]complex128, error) {
	l := len(half)
	even := outputLength == 2*l-2
	odd := outputLength == 2*l-1
	if !even && !odd {
		return nil, &LengthError{Context: "CreateConjugates", Expected: 2*l - 2, Got: outputLength}
	}
	out := make([]complex128, outputLength)
	copy(out, half)
	for i := l; i < outputLength; i++ {
		out[i] = cmplxConj(half[outputLength-i])
	}
	return out, nil
}

func cmplxConj(c complex128) complex128 {
	return complex(real(c), -imag(c))
}
