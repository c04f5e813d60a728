package gofft

import "fmt"

// primeKernel implements Rader's algorithm: the DFT of prime length p is
// turned into a length-(p-1) cyclic convolution by walking the nonzero
// indices in the order of the powers of a primitive root mod p.
type primeKernel struct {
	sizeOps
	p       int64
	g       int64 // primitive root mod p
	gpow    []int // gpow[q] = g^q mod p, q in [0, L)
	ginvpow []int // ginvpow[q] = g^-q mod p, q in [0, L)
	b       []complex128
	padded  bool
	conv    convolver
	scratch []complex128
	a       []complex128 // reused across calls by transformStrided
	c       []complex128 // convolution result, reused across calls
}

// convolver computes, for p in [0, L): c[p] = sum_q a[q]*b[(q-p) mod L] — the
// cyclic correlation Rader's algorithm needs. It is satisfied by both the
// direct dispatcher path (exact, length L) and the zero-padded power-of-two
// path (linear convolution over a length >= 3L-2 buffer, trimmed back down
// to the L terms that matter). convolve writes its result into out and must
// not allocate; out has length L.
type convolver interface {
	convolve(a, b []complex128, out []complex128)
}

func newPrimeKernel(p int64) *primeKernel {
	n := int(p)
	l := n - 1
	g := primitiveRootOfPrime(p)
	ginv := multiplicativeInverseOfPrime(g, p)

	gpow := make([]int, l)
	ginvpow := make([]int, l)
	for q := 0; q < l; q++ {
		gpow[q] = int(expMod(g, int64(q), p))
		ginvpow[q] = int(expMod(ginv, int64(q), p))
	}

	w := newTwiddleTable(n)
	b := make([]complex128, l)
	for q := 0; q < l; q++ {
		b[q] = w.at(gpow[q])
	}

	padded := primePaddingHeuristic(p)
	var conv convolver
	if padded {
		conv = newPaddedConvolver(l, b)
	} else {
		conv = newExactConvolver(l, b)
	}

	return &primeKernel{
		sizeOps: sizeOps{n: n},
		p:       p,
		g:       g,
		gpow:    gpow,
		ginvpow: ginvpow,
		b:       b,
		padded:  padded,
		conv:    conv,
		scratch: make([]complex128, n),
		a:       make([]complex128, l),
		c:       make([]complex128, l),
	}
}

func (k *primeKernel) stridedSize() int { return k.n }

func (k *primeKernel) transformStrided(src []complex128, srcOff, srcStride int, dst []complex128, dstOff, dstStride int, outerW []complex128, outerWStride int) {
	n := k.n
	l := n - 1

	gather := func(i int) complex128 {
		x := src[srcOff+i*srcStride]
		if outerW != nil {
			x *= outerW[(i*outerWStride)%len(outerW)]
		}
		return x
	}

	var dc complex128
	a := k.a
	for i := 0; i < n; i++ {
		x := gather(i)
		dc += x
	}
	x0 := gather(0)
	for q := 0; q < l; q++ {
		a[q] = gather(k.gpow[q])
	}

	k.conv.convolve(a, k.b, k.c)
	c := k.c

	dst[dstOff] = dc
	for q := 0; q < l; q++ {
		dst[dstOff+k.ginvpow[q]*dstStride] = x0 + c[q]
	}
}

func (k *primeKernel) InPlaceForward(buf []complex128) error {
	if len(buf) != k.n {
		return &LengthError{Context: "PrimeKernel.InPlaceForward", Expected: k.n, Got: len(buf)}
	}
	k.transformStrided(buf, 0, 1, k.scratch, 0, 1, nil, 0)
	copy(buf, k.scratch)
	return nil
}

func (k *primeKernel) InPlaceInverse(buf []complex128) error { return inPlaceInverseVia(k, buf) }
func (k *primeKernel) RealForward(reals []float64) ([]complex128, error) {
	return realForwardVia(k, reals)
}
func (k *primeKernel) RealInverse(buf []complex128) ([]float64, error) { return realInverseVia(k, buf) }
func (k *primeKernel) String() string {
	if k.padded {
		return fmt.Sprintf("PrimeFFT(%d, padded)", k.n)
	}
	return fmt.Sprintf("PrimeFFT(%d)", k.n)
}

// exactConvolver runs an exact length-L circular convolution by dispatching
// to whatever kernel the rest of the package would choose for size L. Per
// spec.md §4.7, b's forward transform is precomputed once at construction;
// only a is transformed per call.
type exactConvolver struct {
	l  int
	k  Kernel
	fb []complex128 // FFT(bRev), precomputed at construction
	fa []complex128 // scratch reused per call
}

func newExactConvolver(l int, b []complex128) *exactConvolver {
	// newPrimeKernel (and, transitively, compositeSubKernel) runs during
	// selectKernel while dispatcher.mu is already held; FFT would re-lock it
	// on this goroutine and deadlock, so select directly instead.
	k := dispatchKernelUnguarded(l)
	// bRev[j] = b[(L-j) mod L] turns the correlation sum_q a[q]*b[(q-p) mod L]
	// into the plain circular convolution sum_q a[q]*bRev[(p-q) mod L].
	fb := make([]complex128, l)
	for j := 0; j < l; j++ {
		fb[j] = b[(l-j)%l]
	}
	must(k.InPlaceForward(fb))
	return &exactConvolver{l: l, k: k, fb: fb, fa: make([]complex128, l)}
}

func (e *exactConvolver) convolve(a, b []complex128, out []complex128) {
	l := e.l
	copy(e.fa, a)
	must(e.k.InPlaceForward(e.fa))
	for i := 0; i < l; i++ {
		out[i] = e.fa[i] * e.fb[i]
	}
	must(e.k.InPlaceInverse(out))
}

// paddedConvolver runs the same convolution as a zero-padded linear
// convolution over a power-of-two radix-2 kernel, trimming the wraparound
// region back down to the L terms Rader's algorithm needs. Used for primes
// whose p-1 is awkward to factor directly (see primePaddingHeuristic). Per
// spec.md §4.7, b's forward transform is precomputed once at construction;
// only a is transformed per call.
type paddedConvolver struct {
	l    int
	m    int
	rdx  *radix2Kernel
	fb   []complex128 // FFT(zero-padded brev2), precomputed at construction
	aPad []complex128 // scratch reused per call
}

func newPaddedConvolver(l int, b []complex128) *paddedConvolver {
	m := int(nextPowerOfTwo(int64(3*l - 2)))
	if m < 1 {
		m = 1
	}
	rdx, err := newRadix2Kernel(m)
	if err != nil {
		panic(err)
	}
	// brev2[i] = b[(L-1-i) mod L], length 2L-1. The linear convolution of a
	// (length L) with brev2, evaluated at index p+L-1, equals the cyclic
	// correlation c[p] = sum_q a[q]*b[(q-p) mod L] — see DESIGN.md.
	fb := make([]complex128, m)
	for i := 0; i < 2*l-1; i++ {
		fb[i] = b[((l-1-i)%l+l)%l]
	}
	must(rdx.InPlaceForward(fb))
	return &paddedConvolver{l: l, m: m, rdx: rdx, fb: fb, aPad: make([]complex128, m)}
}

func (p *paddedConvolver) convolve(a, b []complex128, out []complex128) {
	l, m := p.l, p.m
	for i := range p.aPad {
		p.aPad[i] = 0
	}
	copy(p.aPad, a)

	must(p.rdx.InPlaceForward(p.aPad))
	for i := 0; i < m; i++ {
		p.aPad[i] *= p.fb[i]
	}
	must(p.rdx.InPlaceInverse(p.aPad))

	copy(out, p.aPad[l-1:2*l-1])
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
