// Package floatutils provides utilities for working with floats
package floatutils

import (
	"math"

	"gonum.org/v1/gonum/spatial/r1"
)

// MaxSlice gets the maximum value and indices of the maximum values in
// a slice of float64. Indices are returned in increasing order, so
// indices[0] is the first position holding the maximum.
func MaxSlice(values []float64) (max float64, indices []int) {
	max, indices = values[0], []int{0}

	for i := 1; i < len(values); i++ {
		value := values[i]
		if value > max {
			max = value
			indices = []int{i}
		} else if value == max {
			indices = append(indices, i)
		}
	}
	return
}

// Finite returns whether value is neither NaN nor an infinity
func Finite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

// InInterval returns whether value lies in the closed interval
func InInterval(value float64, interval r1.Interval) bool {
	return value >= interval.Min && value <= interval.Max
}
