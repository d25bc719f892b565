package util

import (
	"math/big"

	"github.com/bits-and-blooms/bitset"
)

// IsPrime reports whether n is a prime number. The Baillie-PSW test done
// by ProbablyPrime is exact for inputs below 2⁶⁴.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	return big.NewInt(int64(n)).ProbablyPrime(0)
}

// GCD returns the non-negative greatest common divisor of a and b.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// ExtendedGCD returns g = gcd(a, b) together with Bézout coefficients u, v
// such that au + bv = g. For non-negative a and b, g is non-negative.
func ExtendedGCD(a, b int) (g, u, v int) {
	u1, u3 := 1, a
	v1, v3 := 0, b
	for v3 != 0 {
		q := u3 / v3
		u1, v1 = v1, u1-q*v1
		u3, v3 = v3, u3-q*v3
	}
	g, u = u3, u1
	if b != 0 {
		v = (g - a*u) / b
	} else {
		v = 0
	}
	return g, u, v
}

// Factor is a prime power p^n in a factorisation.
type Factor struct {
	P int
	N int
}

// Factorize returns the prime factorisation of n > 1 in increasing order of
// primes. It returns nil for n < 2.
func Factorize(n int) []Factor {
	var fs []Factor
	if n < 2 {
		return fs
	}
	for p := 2; p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		f := Factor{P: p}
		for n%p == 0 {
			n /= p
			f.N++
		}
		fs = append(fs, f)
	}
	if n > 1 {
		fs = append(fs, Factor{P: n, N: 1})
	}
	return fs
}

// Radical returns the product of the distinct primes dividing n, or 1 for
// n < 2.
func Radical(n int) int {
	r := 1
	for _, f := range Factorize(n) {
		r *= f.P
	}
	return r
}

// IsPermutation reports whether v is a permutation of 0, 1, ..., len(v)-1.
func IsPermutation(v []int) bool {
	seen := bitset.New(uint(len(v)))
	for _, x := range v {
		if x < 0 || x >= len(v) || seen.Test(uint(x)) {
			return false
		}
		seen.Set(uint(x))
	}
	return true
}

// Identity returns the identity permutation 0, 1, ..., n-1.
func Identity(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = i
	}
	return v
}
