package twoport

import (
	"errors"
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/AJDColvin/Circuit-Analysis-Tool/pkg/netlist"
)

var ErrUnknownOutput = errors.New("invalid output")

// Quantities are the closed-form two-port results for one frequency.
type Quantities struct {
	Vin, Vout complex128
	Iin, Iout complex128
	Pin, Pout complex128
	Zin, Zout complex128
	Av, Ai    complex128
}

// Solve applies the two-port equations to a cascade matrix and its
// terminations. A singular cascade (det == 0) is a valid degenerate
// state: Vout and Iout are zero there, not an error. Pout keeps using
// the unmodified gain product even in the singular case, matching the
// established behavior of the tool.
func Solve(abcd *mat.CDense, terms netlist.Terms) Quantities {
	a := abcd.At(0, 0)
	b := abcd.At(0, 1)
	c := abcd.At(1, 0)
	d := abcd.At(1, 1)

	vt := complex(terms.SourceVoltage, 0)
	zs := complex(terms.SourceResistance, 0)
	zl := complex(terms.LoadResistance, 0)

	var q Quantities
	q.Av = zl / (a*zl + b)
	q.Ai = 1 / (c*zl + d)
	pGain := q.Av * cmplx.Conj(q.Ai)

	q.Zin = (a*zl + b) / (c*zl + d)
	q.Zout = (d*zs + b) / (c*zs + a)

	q.Iin = vt / (zs + q.Zin)
	q.Vin = q.Iin * q.Zin
	q.Pin = q.Vin * cmplx.Conj(q.Iin)

	if det := a*d - b*c; det != 0 {
		q.Vout = (d*q.Vin - b*q.Iin) / det
		q.Iout = (a*q.Iin - c*q.Vin) / det
	}
	q.Pout = q.Pin * pGain

	return q
}

// Select picks the requested quantities in output order.
func (q Quantities) Select(outputs []netlist.Output) ([]complex128, error) {
	values := make([]complex128, 0, len(outputs))
	for _, out := range outputs {
		switch out.Name {
		case "Vin":
			values = append(values, q.Vin)
		case "Vout":
			values = append(values, q.Vout)
		case "Iin":
			values = append(values, q.Iin)
		case "Iout":
			values = append(values, q.Iout)
		case "Pin":
			values = append(values, q.Pin)
		case "Pout":
			values = append(values, q.Pout)
		case "Zin":
			values = append(values, q.Zin)
		case "Zout":
			values = append(values, q.Zout)
		case "Av":
			values = append(values, q.Av)
		case "Ai":
			values = append(values, q.Ai)
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownOutput, out.Name)
		}
	}
	return values, nil
}
