package omegas

import "math/bits"

// ReverseBits reverses the low log2n bits of n.
// Example: ReverseBits(6, 3) = ReverseBits(0b110, 3) = 0b011 = 3.
func ReverseBits(n, log2n int) int {
	rev := 0
	for i := range log2n {
		if (n>>i)&1 == 1 {
			rev |= 1 << (log2n - 1 - i)
		}
	}
	return rev
}

// BitReversePermute reorders a in place so that slot k holds the value
// previously stored at index ReverseBits(k, log2(len(a))). len(a) must be
// zero, one, two or an exact power of two; lengths up to two are left
// unchanged. Applying the permutation twice restores the original order.
func BitReversePermute[T any](a []T) {
	if len(a) <= 2 {
		return
	}
	logn := log2(len(a))
	for k := range a {
		r := ReverseBits(k, logn)
		if k < r {
			a[k], a[r] = a[r], a[k]
		}
	}
}

// log2 returns the base-2 logarithm of n, assuming n is a power of two.
func log2(n int) int {
	return bits.TrailingZeros(uint(n))
}
