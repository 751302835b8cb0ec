package device

import (
	"errors"
	"fmt"
	"math"

	"github.com/AJDColvin/Circuit-Analysis-Tool/internal/consts"
	"github.com/AJDColvin/Circuit-Analysis-Tool/pkg/netlist"
)

var (
	ErrUnknownComponent = errors.New("invalid component type")
	ErrInvalidCascade   = errors.New("invalid cascade circuit")
)

// Classified is a component impedance after series/shunt tagging. Node
// identity is discarded here; the tag is all later stages need.
type Classified struct {
	Series    bool
	Impedance complex128
}

// Impedance evaluates a component at frequency f (Hz).
func Impedance(comp netlist.Component, f float64) (complex128, error) {
	omega := 2 * math.Pi * f
	switch comp.Kind {
	case netlist.Resistor:
		return complex(comp.Value, 0), nil
	case netlist.Conductance:
		return complex(1/comp.Value, 0), nil
	case netlist.Inductor:
		return complex(0, omega*comp.Value), nil
	case netlist.Capacitor:
		return 1 / complex(0, omega*comp.Value), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownComponent, comp.Kind)
	}
}

// ValidateCascade checks that the normalized component order forms a
// left-to-right ladder. A component is legal when it shunts to the
// reference node, or when its node pair is unseen and spans adjacent
// nodes. Duplicate series pairs and node gaps both break the cascade.
// The check is frequency independent, so one pass covers the sweep.
func ValidateCascade(components []netlist.Component) error {
	type nodePair struct{ n1, n2 int }
	seen := make(map[nodePair]bool, len(components))

	for _, comp := range components {
		pair := nodePair{comp.Node1, comp.Node2}
		if comp.Node1 == consts.GroundNode || (!seen[pair] && comp.Node2-comp.Node1 == 1) {
			seen[pair] = true
			continue
		}
		return fmt.Errorf("%w: nodes %d-%d", ErrInvalidCascade, comp.Node1, comp.Node2)
	}
	return nil
}

// Classify tags a component impedance as shunt (smaller node is the
// reference node) or series.
func Classify(comp netlist.Component, z complex128) Classified {
	return Classified{
		Series:    comp.Node1 != consts.GroundNode,
		Impedance: z,
	}
}
