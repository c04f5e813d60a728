package gofft

import "math"

// twiddleTable holds W[k] = exp(-2*pi*i*k/N) for k = 0..N-1, the one
// canonical shape every kernel derives its (possibly half- or
// quarter-length) index arithmetic from.
type twiddleTable struct {
	n int
	w []complex128
}

// newTwiddleTable computes the first half of the table directly and fills
// the second half by conjugate symmetry: W[N-k] = conj(W[k]).
func newTwiddleTable(n int) *twiddleTable {
	w := make([]complex128, n)
	half := n/2 + 1
	for k := 0; k < half; k++ {
		s, c := math.Sincos(-2.0 * math.Pi * float64(k) / float64(n))
		w[k] = complex(c, s)
	}
	for k := half; k < n; k++ {
		w[k] = complex(real(w[n-k]), -imag(w[n-k]))
	}
	return &twiddleTable{n: n, w: w}
}

// at returns W[k mod n].
func (t *twiddleTable) at(k int) complex128 {
	k %= t.n
	if k < 0 {
		k += t.n
	}
	return t.w[k]
}

// twiddleFactors exposes the size-N root-of-unity table as a plain slice,
// per the exported number-theory helper surface in spec.md §6.
func twiddleFactors(n int) []complex128 {
	t := newTwiddleTable(n)
	out := make([]complex128, n)
	copy(out, t.w)
	return out
}
