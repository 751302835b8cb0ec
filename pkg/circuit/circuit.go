package circuit

import (
	"io"

	"github.com/AJDColvin/Circuit-Analysis-Tool/pkg/device"
	"github.com/AJDColvin/Circuit-Analysis-Tool/pkg/netlist"
	"github.com/AJDColvin/Circuit-Analysis-Tool/pkg/twoport"
)

// Circuit is a fully parsed cascade description, ready to analyse.
type Circuit struct {
	Components []netlist.Component
	Terms      netlist.Terms
	Sweep      netlist.Sweep
	Outputs    []netlist.Output
}

// Result is the analysed sweep: one row of complex values per
// frequency, columns aligned with the requested outputs.
type Result struct {
	Frequencies []float64
	Outputs     []netlist.Output
	Rows        [][]complex128
}

// Load splits and parses a complete .net description.
func Load(r io.Reader) (*Circuit, error) {
	sections, err := netlist.Split(r)
	if err != nil {
		return nil, err
	}
	return fromSections(sections)
}

// LoadFile reads a .net description from disk.
func LoadFile(path string) (*Circuit, error) {
	sections, err := netlist.SplitFile(path)
	if err != nil {
		return nil, err
	}
	return fromSections(sections)
}

func fromSections(sections *netlist.Sections) (*Circuit, error) {
	components, err := netlist.ParseCircuit(sections.Circuit)
	if err != nil {
		return nil, err
	}
	terms, sweep, err := netlist.ParseTerms(sections.Terms)
	if err != nil {
		return nil, err
	}
	outputs, err := netlist.ParseOutputs(sections.Output)
	if err != nil {
		return nil, err
	}
	return &Circuit{
		Components: components,
		Terms:      terms,
		Sweep:      sweep,
		Outputs:    outputs,
	}, nil
}

// Analyze runs the full sweep: per frequency, evaluate component
// impedances, classify them, compose the cascade ABCD matrix, and
// solve the two-port equations. The topology check is frequency
// independent and runs once up front. Every stage consumes the
// previous stage's value; nothing is mutated across frequencies.
func (c *Circuit) Analyze() (*Result, error) {
	if err := device.ValidateCascade(c.Components); err != nil {
		return nil, err
	}

	freqs := c.Sweep.Frequencies()
	rows := make([][]complex128, 0, len(freqs))

	for _, freq := range freqs {
		classified := make([]device.Classified, 0, len(c.Components))
		for _, comp := range c.Components {
			z, err := device.Impedance(comp, freq)
			if err != nil {
				return nil, err
			}
			classified = append(classified, device.Classify(comp, z))
		}

		abcd, err := twoport.Cascade(classified)
		if err != nil {
			return nil, err
		}

		row, err := twoport.Solve(abcd, c.Terms).Select(c.Outputs)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return &Result{
		Frequencies: freqs,
		Outputs:     c.Outputs,
		Rows:        rows,
	}, nil
}
