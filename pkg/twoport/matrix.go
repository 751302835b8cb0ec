package twoport

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/AJDColvin/Circuit-Analysis-Tool/pkg/device"
)

var ErrZeroImpedanceShunt = errors.New("divide by 0 error - check all components have non-zero values")

func identity() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{1, 0, 0, 1})
}

// seriesMatrix is the elementary ABCD matrix of a series impedance.
func seriesMatrix(z complex128) *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{1, z, 0, 1})
}

// shuntMatrix is the elementary ABCD matrix of a shunt impedance.
func shuntMatrix(z complex128) (*mat.CDense, error) {
	if z == 0 {
		return nil, ErrZeroImpedanceShunt
	}
	return mat.NewCDense(2, 2, []complex128{1, 0, 1 / z, 1}), nil
}

// mul2x2 is the matrix product a*b. CDense carries no complex
// multiply of its own, and 2x2 is small enough to write out.
func mul2x2(a, b *mat.CDense) *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{
		a.At(0, 0)*b.At(0, 0) + a.At(0, 1)*b.At(1, 0),
		a.At(0, 0)*b.At(0, 1) + a.At(0, 1)*b.At(1, 1),
		a.At(1, 0)*b.At(0, 0) + a.At(1, 1)*b.At(1, 0),
		a.At(1, 0)*b.At(0, 1) + a.At(1, 1)*b.At(1, 1),
	})
}

// Cascade composes the ABCD matrix of the whole ladder at one
// frequency by right-multiplying the elementary matrix of each
// component onto the running product, in given order.
func Cascade(components []device.Classified) (*mat.CDense, error) {
	acc := identity()
	for _, comp := range components {
		var elem *mat.CDense
		if comp.Series {
			elem = seriesMatrix(comp.Impedance)
		} else {
			var err error
			if elem, err = shuntMatrix(comp.Impedance); err != nil {
				return nil, err
			}
		}
		acc = mul2x2(acc, elem)
	}
	return acc, nil
}
