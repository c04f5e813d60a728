package gofft

import (
	"math/big"
	"math/bits"
	"sync"
)

// nativeModExpLimit is the modulus above which expMod's native uint64
// square-and-multiply loop is no longer safe from overflow in its
// intermediate products and the math/big fallback takes over.
// sqrt(2^63) rounds to roughly 3.037e9; staying well under it keeps every
// mulmod product addressable in 128 bits via bits.Mul64/bits.Div64.
const nativeModExpLimit = 3037000000

// isPowerOfTwo reports whether x is a positive power of two.
func isPowerOfTwo(x int64) bool {
	return x > 0 && x&(x-1) == 0
}

// nextPowerOfTwo returns the smallest power of two >= x (x > 0).
func nextPowerOfTwo(x int64) int64 {
	if x <= 1 {
		return 1
	}
	return 1 << uint(bits.Len64(uint64(x-1)))
}

// highestBit returns the index of the single set bit of x, which must be a
// power of two.
func highestBit(x int64) int {
	return bits.Len64(uint64(x)) - 1
}

// trailingZeros returns the number of trailing zero bits of x (x > 0).
func trailingZeros(x int64) int {
	return bits.TrailingZeros64(uint64(x))
}

// mulMod64 computes a*b mod m without overflowing, for m fitting in a
// non-negative int64.
func mulMod64(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi%m, lo, m)
	return rem
}

// expModNative computes g^k mod n using native uint64 arithmetic. Only
// safe for n < nativeModExpLimit.
func expModNative(g, k, n int64) int64 {
	if n == 1 {
		return 0
	}
	result := uint64(1)
	base := uint64(((g % n) + n) % n)
	mod := uint64(n)
	for e := uint64(k); e > 0; e >>= 1 {
		if e&1 == 1 {
			result = mulMod64(result, base, mod)
		}
		base = mulMod64(base, base, mod)
	}
	return int64(result)
}

// expMod computes g^k mod n, falling back to arbitrary-precision modular
// exponentiation once n exceeds the range where native 64-bit mulmod can be
// trusted not to overflow.
func expMod(g, k, n int64) int64 {
	if n <= 0 {
		return 0
	}
	if n < nativeModExpLimit {
		return expModNative(g, k, n)
	}
	bg := big.NewInt(g)
	bk := big.NewInt(k)
	bn := big.NewInt(n)
	return bg.Exp(bg, bk, bn).Int64()
}

// smallPrimes covers the fast path: hard-coded primes up to ~10^4, used to
// short-circuit trial division before falling back to Miller-Rabin for
// anything the fast path doesn't resolve.
var smallPrimes = sieveSmallPrimes(10000)

func sieveSmallPrimes(limit int) []int64 {
	composite := make([]bool, limit+1)
	var out []int64
	for i := 2; i <= limit; i++ {
		if composite[i] {
			continue
		}
		out = append(out, int64(i))
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}
	return out
}

// millerRabinWitnesses is the fixed witness set that makes Miller-Rabin
// deterministic for all n < 3,825,123,056,546,413,051.
var millerRabinWitnesses = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

func millerRabinPasses(n int64, a int64) bool {
	d := n - 1
	r := 0
	for d%2 == 0 {
		d /= 2
		r++
	}
	x := bigExpMod(a, d, n)
	if x == 1 || x == n-1 {
		return true
	}
	for i := 0; i < r-1; i++ {
		x = mulModBig(x, x, n)
		if x == n-1 {
			return true
		}
		if x == 1 {
			return false
		}
	}
	return false
}

// mulModBig and bigExpMod route through math/big for the
// Miller-Rabin witness loop so it stays correct for n up to the full
// deterministic bound, well above nativeModExpLimit.
func mulModBig(a, b, m int64) int64 {
	r := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
	r.Mod(r, big.NewInt(m))
	return r.Int64()
}

func bigExpMod(g, k, n int64) int64 {
	return big.NewInt(g).Exp(big.NewInt(g), big.NewInt(k), big.NewInt(n)).Int64()
}

// isPrime reports whether n is prime, using a hard-coded small-value fast
// path followed by deterministic Miller-Rabin.
func isPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for _, p := range smallPrimes {
		if p*p > n {
			return true
		}
		if n%p == 0 {
			return n == p
		}
	}
	for _, a := range millerRabinWitnesses {
		if a >= n {
			continue
		}
		if !millerRabinPasses(n, a) {
			return false
		}
	}
	return true
}

// primesCache is a process-wide, lazily-extended, monotonically growing
// list of primes starting 2, 3, 5, 7, ...
type primesCache struct {
	mu     sync.Mutex
	primes []int64
}

var globalPrimes = &primesCache{primes: append([]int64(nil), smallPrimes...)}

// extendTo grows the cache, under lock, until it holds at least n entries.
func (c *primesCache) extendTo(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.primes) >= n {
		return
	}
	candidate := c.primes[len(c.primes)-1] + 2
	for len(c.primes) < n {
		if isPrime(candidate) {
			c.primes = append(c.primes, candidate)
		}
		candidate += 2
	}
}

// getPrime returns the i-th prime (0-indexed: getPrime(0) == 2), growing the
// cache on demand.
func (c *primesCache) getPrime(i int) int64 {
	c.extendTo(i + 1)
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.primes[i]
}

// primesUpTo returns a snapshot of the cached primes <= bound, extending the
// cache if necessary. Callers pass floor(sqrt(n)) to trial-divide n.
func (c *primesCache) primesUpTo(bound int64) []int64 {
	c.mu.Lock()
	if len(c.primes) > 0 && c.primes[len(c.primes)-1] >= bound {
		out := make([]int64, 0, len(c.primes))
		for _, p := range c.primes {
			if p > bound {
				break
			}
			out = append(out, p)
		}
		c.mu.Unlock()
		return out
	}
	c.mu.Unlock()

	i := 64
	for {
		c.extendTo(i)
		c.mu.Lock()
		last := c.primes[len(c.primes)-1]
		if last >= bound || int64(len(c.primes)) > bound {
			out := make([]int64, 0, len(c.primes))
			for _, p := range c.primes {
				if p > bound {
					break
				}
				out = append(out, p)
			}
			c.mu.Unlock()
			return out
		}
		c.mu.Unlock()
		i *= 2
	}
}

// primeDecomp returns the prime factorization of n (n > 1) with
// multiplicity, in ascending order. Trial-divides only up to sqrt(n) using
// the primes cache; any residue greater than 1 left over is itself prime
// and is appended as the final (possibly large) factor.
func primeDecomp(n int64) []int64 {
	var factors []int64
	if n <= 1 {
		return factors
	}
	remaining := n
	for remaining > 1 {
		bound := isqrt(remaining)
		if bound < 2 {
			break
		}
		candidates := globalPrimes.primesUpTo(bound)
		divided := false
		for _, p := range candidates {
			if p*p > remaining {
				break
			}
			for remaining%p == 0 {
				factors = append(factors, p)
				remaining /= p
				divided = true
			}
		}
		if !divided {
			break
		}
	}
	if remaining > 1 {
		factors = append(factors, remaining)
	}
	return factors
}

// isqrt returns floor(sqrt(n)) for n >= 0.
func isqrt(n int64) int64 {
	if n < 2 {
		return n
	}
	x := int64(1) << uint((bits.Len64(uint64(n))+1)/2)
	for {
		y := (x + n/x) / 2
		if y >= x {
			return x
		}
		x = y
	}
}

// primeFactors returns the unique prime factors of n, ascending.
func primeFactors(n int64) []int64 {
	decomp := primeDecomp(n)
	var out []int64
	for i, p := range decomp {
		if i == 0 || p != decomp[i-1] {
			out = append(out, p)
		}
	}
	return out
}

// largestPrimeFactor returns the largest prime factor of n (n > 1).
func largestPrimeFactor(n int64) int64 {
	decomp := primeDecomp(n)
	if len(decomp) == 0 {
		return n
	}
	return decomp[len(decomp)-1]
}

// largestPrimeFactorIsAbove reports whether n's largest prime factor
// exceeds k, short-circuiting as soon as any partial residue exceeds k.
func largestPrimeFactorIsAbove(n, k int64) bool {
	remaining := n
	for remaining > 1 {
		bound := isqrt(remaining)
		if bound < 2 {
			return remaining > k
		}
		candidates := globalPrimes.primesUpTo(bound)
		divided := false
		for _, p := range candidates {
			if p*p > remaining {
				break
			}
			if remaining%p == 0 {
				for remaining%p == 0 {
					remaining /= p
				}
				if p > k {
					return true
				}
				divided = true
			}
		}
		if !divided {
			return remaining > k
		}
	}
	return false
}

// primePaddingHeuristicExceptions lists odd primes for which Rader padding
// is forced to true regardless of the largest-prime-factor heuristic.
var primePaddingHeuristicExceptions = map[int64]bool{31: true, 61: true, 101: true, 241: true, 251: true}

// primePaddingHeuristic decides whether PrimeKernel should zero-pad its
// (p-1)-length convolution up to a power of two rather than run it
// unpadded at length p-1.
func primePaddingHeuristic(p int64) bool {
	if primePaddingHeuristicExceptions[p] {
		return true
	}
	return largestPrimeFactorIsAbove(p-1, 5)
}

// primitiveRootOfPrime returns the smallest g >= 2 that generates the
// multiplicative group mod p. Assumes p is an odd prime.
func primitiveRootOfPrime(p int64) int64 {
	factors := primeFactors(p - 1)
	for g := int64(2); g < p; g++ {
		isRoot := true
		for _, q := range factors {
			if expMod(g, (p-1)/q, p) == 1 {
				isRoot = false
				break
			}
		}
		if isRoot {
			return g
		}
	}
	return 0
}

// multiplicativeInverseOfPrime returns x^-1 mod p via Fermat's little
// theorem. Assumes p is prime and 0 < x < p.
func multiplicativeInverseOfPrime(x, p int64) int64 {
	return expMod(x, p-2, p)
}
