package prime

import "testing"

func TestIsPrimeSmall(t *testing.T) {
	primes := map[uint64]bool{
		2: true, 3: true, 5: true, 7: true, 11: true, 13: true,
		17: true, 19: true, 23: true, 29: true, 31: true, 37: true,
		41: true, 43: true, 47: true, 53: true, 59: true, 61: true,
		67: true, 71: true, 73: true, 79: true, 83: true, 89: true,
		97: true, 101: true, 103: true,
	}
	for n := uint64(0); n <= 104; n++ {
		if got := IsPrime(n); got != primes[n] {
			t.Errorf("IsPrime(%d) = %v, want %v", n, got, primes[n])
		}
	}
}

func TestIsPrimeLarge(t *testing.T) {
	cases := []struct {
		n    uint64
		want bool
	}{
		{561, false},                  // Carmichael number
		{1105, false},                 // Carmichael number
		{2047, false},                 // strong pseudoprime to base 2
		{3215031751, false},           // strong pseudoprime to bases 2,3,5,7
		{2147483647, true},            // 2^31 - 1
		{4294967291, true},            // largest 32-bit prime
		{4294967295, false},           // 2^32 - 1
		{2305843009213693951, true},   // 2^61 - 1
		{9223372036854775807, false},  // 2^63 - 1 = 7^2 * 73 * 127 * ...
		{18446744073709551557, true},  // largest 64-bit prime
		{18446744073709551615, false}, // 2^64 - 1
	}
	for _, tc := range cases {
		if got := IsPrime(tc.n); got != tc.want {
			t.Errorf("IsPrime(%d) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

func TestIsPrimeAgainstTrialDivision(t *testing.T) {
	trial := func(n uint64) bool {
		if n < 2 {
			return false
		}
		for d := uint64(2); d*d <= n; d++ {
			if n%d == 0 {
				return false
			}
		}
		return true
	}
	for n := uint64(0); n < 5000; n++ {
		if got, want := IsPrime(n), trial(n); got != want {
			t.Fatalf("IsPrime(%d) = %v, want %v", n, got, want)
		}
	}
}
