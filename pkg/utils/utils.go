package utils

import "math"

func ToPointer[T any](value T) *T {
	return &value
}

// Round2 rounds to two decimal places, used for rates and averages in the
// stats payloads.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
