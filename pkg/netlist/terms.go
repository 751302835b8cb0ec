package netlist

import (
	"fmt"
	"strconv"
)

// Terms holds the source and load terminations of the cascade.
// Conductance and Norton-current forms are already converted, so
// consumers only ever see the Thevenin equivalent.
type Terms struct {
	SourceVoltage    float64 // VT
	SourceResistance float64 // RS (or 1/GS)
	LoadResistance   float64 // RL
}

// Sweep is a linear frequency sweep, inclusive of both endpoints.
type Sweep struct {
	Start  float64
	End    float64
	Points int
}

// Frequencies expands the sweep into its sample points. A single-point
// sweep contains exactly the start frequency.
func (s Sweep) Frequencies() []float64 {
	freqs := make([]float64, s.Points)
	if s.Points == 1 {
		freqs[0] = s.Start
		return freqs
	}
	step := (s.End - s.Start) / float64(s.Points-1)
	for i := 0; i < s.Points; i++ {
		freqs[i] = s.Start + float64(i)*step
	}
	return freqs
}

// ParseTerms reads the three fixed <TERMS> lines: source (RS or GS,
// plus VT or IN), load (RL), and sweep (Fstart, Fend, Nfreqs). GS is
// converted to RS by reciprocal and IN to VT by VT = IN * RS. A
// non-positive RS, GS or RL counts as missing.
func ParseTerms(lines []string) (Terms, Sweep, error) {
	var terms Terms
	var sweep Sweep

	if len(lines) < 3 {
		return terms, sweep, ErrIncompleteTerms
	}

	source := scanFields(lines[0])
	if rs, ok := lookupFloat(source, "RS"); ok && rs > 0 {
		terms.SourceResistance = rs
	} else if gs, ok := lookupFloat(source, "GS"); ok && gs > 0 {
		terms.SourceResistance = 1 / gs
	} else {
		return terms, sweep, ErrMissingSourceImpedance
	}

	if vt, ok := lookupFloat(source, "VT"); ok {
		terms.SourceVoltage = vt
	} else if in, ok := lookupFloat(source, "IN"); ok {
		terms.SourceVoltage = in * terms.SourceResistance
	} else {
		return terms, sweep, ErrMissingSourceDrive
	}

	load := scanFields(lines[1])
	rl, ok := lookupFloat(load, "RL")
	if !ok || rl <= 0 {
		return terms, sweep, ErrMissingLoadResistance
	}
	terms.LoadResistance = rl

	freq := scanFields(lines[2])
	if sweep.Start, ok = lookupFloat(freq, "Fstart"); !ok {
		return terms, sweep, ErrMissingSweepStart
	}
	if sweep.End, ok = lookupFloat(freq, "Fend"); !ok {
		return terms, sweep, ErrMissingSweepEnd
	}
	raw, ok := lookupField(freq, "Nfreqs")
	if !ok {
		return terms, sweep, ErrMissingSweepCount
	}
	points, err := strconv.Atoi(raw)
	if err != nil || points < 1 {
		return terms, sweep, fmt.Errorf("%w: %q", ErrMissingSweepCount, raw)
	}
	sweep.Points = points

	return terms, sweep, nil
}

func lookupFloat(fields []Field, name string) (float64, bool) {
	raw, ok := lookupField(fields, name)
	if !ok {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
