package util

import (
	"cmp"
	"math"
)

// SignedPow raises |base| to exponent and restores the sign of base, giving an odd extension of
// the power curve for negative input.
func SignedPow(base float64, exponent float64) float64 {
	if base < 0 {
		return -math.Pow(-base, exponent)
	}
	return math.Pow(base, exponent)
}

func Max[T cmp.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	if isNan(args[0]) {
		return args[0]
	}

	max := args[0]
	for _, arg := range args[1:] {

		if isNan(arg) {
			return arg
		}

		if arg > max {
			max = arg
		}
	}
	return max
}

func Min[T cmp.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	if isNan(args[0]) {
		return args[0]
	}

	min := args[0]
	for _, arg := range args[1:] {

		if isNan(arg) {
			return arg
		}

		if arg < min {
			min = arg
		}
	}
	return min
}

func isNan[T comparable](arg T) bool {
	return arg != arg
}
