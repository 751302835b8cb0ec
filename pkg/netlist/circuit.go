package netlist

import (
	"fmt"
	"slices"
	"strconv"
)

// ComponentKind is the single-letter component designator from the
// <CIRCUIT> block. Designators are case sensitive.
type ComponentKind string

const (
	Resistor    ComponentKind = "R"
	Inductor    ComponentKind = "L"
	Capacitor   ComponentKind = "C"
	Conductance ComponentKind = "G"
)

// componentKinds is the recognition order for designators on a line.
var componentKinds = []ComponentKind{Resistor, Inductor, Capacitor, Conductance}

// Component is one two-terminal element of the cascade. After
// ParseCircuit, Node1 <= Node2 and the slice is in physical
// left-to-right cascade order.
type Component struct {
	Node1 int
	Node2 int
	Kind  ComponentKind
	Value float64
}

// ParseCircuit converts the raw <CIRCUIT> lines into an ordered
// component list. Each line must carry n1, n2 and exactly one of
// R, L, C or G with a positive value. The result is normalized: node pairs are sorted
// ascending, and components are ordered by second node ascending with
// first node descending as the tie break, which reconstructs the
// physical traversal regardless of line order.
func ParseCircuit(lines []string) ([]Component, error) {
	if len(lines) < 1 {
		return nil, ErrEmptyCircuit
	}

	components := make([]Component, 0, len(lines))
	for _, line := range lines {
		comp, err := parseComponent(line)
		if err != nil {
			return nil, err
		}
		components = append(components, comp)
	}

	for i := range components {
		if components[i].Node1 > components[i].Node2 {
			components[i].Node1, components[i].Node2 = components[i].Node2, components[i].Node1
		}
	}
	slices.SortStableFunc(components, func(a, b Component) int {
		if a.Node2 != b.Node2 {
			return a.Node2 - b.Node2
		}
		return b.Node1 - a.Node1
	})

	return components, nil
}

func parseComponent(line string) (Component, error) {
	fields := scanFields(line)
	var comp Component

	v1, ok := lookupField(fields, "n1")
	if !ok {
		return comp, fmt.Errorf("%w: %q", ErrMissingNode1, line)
	}
	n1, err := strconv.Atoi(v1)
	if err != nil || n1 < 0 {
		return comp, fmt.Errorf("%w: %q", ErrMissingNode1, line)
	}

	v2, ok := lookupField(fields, "n2")
	if !ok {
		return comp, fmt.Errorf("%w: %q", ErrMissingNode2, line)
	}
	n2, err := strconv.Atoi(v2)
	if err != nil || n2 < 0 {
		return comp, fmt.Errorf("%w: %q", ErrMissingNode2, line)
	}

	comp.Node1 = n1
	comp.Node2 = n2

	for _, kind := range componentKinds {
		raw, ok := lookupField(fields, string(kind))
		if !ok {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value <= 0 {
			return comp, fmt.Errorf("%w: %q", ErrMissingComponent, line)
		}
		comp.Kind = kind
		comp.Value = value
		return comp, nil
	}

	return comp, fmt.Errorf("%w: %q", ErrMissingComponent, line)
}
