package domain

import "math/bits"

// MulU64 returns a*b, or ErrMathOverflow if the product does not fit.
func MulU64(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrMathOverflow
	}
	return lo, nil
}

// AddU64 returns a+b, or ErrMathOverflow if the sum does not fit.
func AddU64(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrMathOverflow
	}
	return sum, nil
}
