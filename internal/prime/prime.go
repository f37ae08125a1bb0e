// Package prime implements a deterministic Miller-Rabin primality test
// covering the full 64-bit unsigned range.
package prime

import "math/bits"

// witnesses is sufficient to certify primality for every n < 2^64.
var witnesses = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsPrime reports whether n is prime.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	if n == 3 {
		return true
	}

	// Write n-1 = 2^s * d with d odd.
	d := n - 1
	s := 0
	for d%2 == 0 {
		d /= 2
		s++
	}

	for _, a := range witnesses {
		if a >= n {
			continue
		}
		if !passes(n, a, d, s) {
			return false
		}
	}
	return true
}

// passes runs a single Miller-Rabin round for witness a.
func passes(n, a, d uint64, s int) bool {
	x := powMod(a, d, n)
	if x == 1 || x == n-1 {
		return true
	}
	for r := 1; r < s; r++ {
		x = mulMod(x, x, n)
		if x == n-1 {
			return true
		}
	}
	return false
}

// powMod returns base^exp mod m by square-and-multiply.
func powMod(base, exp, m uint64) uint64 {
	result := uint64(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, m)
		}
		base = mulMod(base, base, m)
		exp >>= 1
	}
	return result
}

// mulMod returns a*b mod m through the 128-bit intermediate product, so
// the multiplication cannot overflow. Requires a, b < m.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}
