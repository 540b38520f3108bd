// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Format formats a matrix for printing
func Format(X mat.Matrix) string {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%v", fa)
}

// VecOnes returns a vector of 1.0's
func VecOnes(length int) *mat.VecDense {
	oneSlice := make([]float64, length)
	for i := 0; i < length; i++ {
		oneSlice[i] = 1.0
	}
	return mat.NewVecDense(length, oneSlice)
}
