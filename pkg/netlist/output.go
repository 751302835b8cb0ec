package netlist

import (
	"strings"

	"github.com/AJDColvin/Circuit-Analysis-Tool/internal/consts"
)

// Output is one requested quantity from the <OUTPUT> block. Order of
// outputs defines the column order of the result table.
type Output struct {
	Name string
	Unit string
}

// Columns are the real/imaginary column labels for this output.
func (o Output) Columns() [2]string {
	return [2]string{"Re(" + o.Name + ")", "Im(" + o.Name + ")"}
}

// Units is the unit label doubled to match the two columns.
func (o Output) Units() [2]string {
	return [2]string{o.Unit, o.Unit}
}

// ParseOutputs converts the raw <OUTPUT> lines into ordered output
// requests. Each line is a name with an optional unit; a missing unit
// defaults to the dimensionless placeholder.
func ParseOutputs(lines []string) ([]Output, error) {
	outputs := make([]Output, 0, len(lines))
	for _, line := range lines {
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		out := Output{Name: tokens[0], Unit: consts.DefaultUnit}
		if len(tokens) > 1 {
			out.Unit = tokens[1]
		}
		outputs = append(outputs, out)
	}
	if len(outputs) == 0 {
		return nil, ErrEmptyOutputs
	}
	return outputs, nil
}
