package gofft

// Circular computes the length-`length` circular convolution of a and b:
// both are zero-padded to length via the Dispatcher, transformed, multiplied
// pointwise, and inverse-transformed. length may be any size the dispatcher
// accepts, not just a power of two.
func Circular(a, b []complex128, length int) ([]complex128, error) {
	k, err := FFT(length)
	if err != nil {
		return nil, err
	}

	fa := padComplex(a, length)
	fb := padComplex(b, length)

	if err := k.InPlaceForward(fa); err != nil {
		return nil, err
	}
	if err := k.InPlaceForward(fb); err != nil {
		return nil, err
	}
	if err := Multiply(fa, fb); err != nil {
		return nil, err
	}
	if err := k.InPlaceInverse(fa); err != nil {
		return nil, err
	}
	return fa, nil
}

// Linear computes the linear convolution of a and b per spec.md §6:
// a circular convolution at length 2*max(len(a), len(b)) (comfortably clear
// of the len(a)+len(b)-1 wraparound boundary, whatever size the dispatcher
// picks for it), truncated down to the true linear-convolution length.
func Linear(a, b []complex128) ([]complex128, error) {
	outLen := len(a) + len(b) - 1
	if outLen <= 0 {
		return nil, &LengthError{Context: "Linear", Expected: 1, Got: outLen}
	}
	m := len(a)
	if len(b) > m {
		m = len(b)
	}
	length := 2 * m
	out, err := Circular(a, b, length)
	if err != nil {
		return nil, err
	}
	return out[:outLen], nil
}

func padComplex(x []complex128, n int) []complex128 {
	out := make([]complex128, n)
	copy(out, x)
	return out
}
