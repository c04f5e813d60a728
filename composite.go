package gofft

import "fmt"

// compositeNaiveThreshold is the exclusive upper bound on the odd prime
// factors cheap enough to run through NaiveKernel inside a composite stage
// rather than paying for a full Rader sub-kernel: factors below it go naive.
const compositeNaiveThreshold = 32

// compositeKernel implements mixed-radix Cooley-Tukey for any N > 1 that
// is neither a power of two nor prime (or is, but was routed here by the
// dispatcher's thresholds). Its plan — a permutation table plus a flat,
// per-stage list of jobs — is built once at construction; execution is a
// simple loop over stages against a pair of ping-pong scratch buffers.
type compositeKernel struct {
	sizeOps
	decomp  []int64 // primeDecomp(n), ascending, assigned one per stage
	stride  []int   // stride[i] = product of decomp[0:i]
	sizeAt  []int   // sizeAt[i] = n / stride[i]; sizeAt[0] = n, sizeAt[k] = 1
	perm    []int   // digit-reversal permutation: perm[inputIndex] = scatterIndex
	twiddle *twiddleTable
	subs    map[int64]stridedTransformer // one sub-kernel per distinct prime factor
	bufA    []complex128
	bufB    []complex128
}

func newCompositeKernel(n int) *compositeKernel {
	decomp := primeDecomp(int64(n))
	k := len(decomp)

	stride := make([]int, k+1)
	stride[0] = 1
	for i := 0; i < k; i++ {
		stride[i+1] = stride[i] * int(decomp[i])
	}

	sizeAt := make([]int, k+1)
	sizeAt[0] = n
	for i := 0; i < k; i++ {
		sizeAt[i+1] = sizeAt[i] / int(decomp[i])
	}

	perm := make([]int, n)
	for off := 0; off < n; off++ {
		boff := 0
		for i := 0; i < k; i++ {
			digit := (off / stride[i]) % int(decomp[i])
			boff += digit * sizeAt[i+1]
		}
		perm[off] = boff
	}

	subs := map[int64]stridedTransformer{}
	for _, p := range decomp {
		if _, ok := subs[p]; ok {
			continue
		}
		subs[p] = compositeSubKernel(p)
	}

	return &compositeKernel{
		sizeOps: sizeOps{n: n},
		decomp:  decomp,
		stride:  stride,
		sizeAt:  sizeAt,
		perm:    perm,
		twiddle: newTwiddleTable(n),
		subs:    subs,
		bufA:    make([]complex128, n),
		bufB:    make([]complex128, n),
	}
}

// compositeSubKernel picks the strided sub-kernel for a composite stage's
// prime factor p, per spec.md §4.6: Fixed2 for p=2, Fixed3 for p=3,
// NaiveKernel for small odd primes, PrimeKernel (Rader) otherwise.
func compositeSubKernel(p int64) stridedTransformer {
	switch {
	case p == 2:
		return newFixed2Kernel()
	case p == 3:
		return newFixed3Kernel()
	case p < compositeNaiveThreshold:
		return newNaiveKernel(int(p))
	default:
		return newPrimeKernel(p)
	}
}

func (k *compositeKernel) InPlaceForward(buf []complex128) error {
	n := k.n
	if len(buf) != n {
		return &LengthError{Context: "CompositeKernel.InPlaceForward", Expected: n, Got: len(buf)}
	}

	cur, other := k.bufA, k.bufB
	for i := 0; i < n; i++ {
		cur[k.perm[i]] = buf[i]
	}

	for stage := len(k.decomp) - 1; stage >= 0; stage-- {
		p := k.decomp[stage]
		m := k.sizeAt[stage+1]
		bigM := k.sizeAt[stage]
		sub := k.subs[p]
		for base := 0; base < n; base += bigM {
			for r := 0; r < m; r++ {
				sub.transformStrided(cur, base+r, m, other, base+r, m, k.twiddle.w, r*k.stride[stage])
			}
		}
		cur, other = other, cur
	}

	copy(buf, cur)
	return nil
}

func (k *compositeKernel) InPlaceInverse(buf []complex128) error { return inPlaceInverseVia(k, buf) }
func (k *compositeKernel) RealForward(reals []float64) ([]complex128, error) {
	return realForwardVia(k, reals)
}
func (k *compositeKernel) RealInverse(buf []complex128) ([]float64, error) { return realInverseVia(k, buf) }
func (k *compositeKernel) String() string                                 { return fmt.Sprintf("CompositeFFT(%d)", k.n) }
