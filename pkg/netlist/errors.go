package netlist

import "errors"

// Parsing failures are wrapped sentinels so callers can match the class
// with errors.Is while the message keeps the block and line context.
var (
	ErrUnreadableInput = errors.New("cannot open input file")
	ErrMissingSection  = errors.New("cannot find block")

	ErrEmptyCircuit     = errors.New("no circuit information found in <CIRCUIT> block")
	ErrMissingNode1     = errors.New("missing n1 value in <CIRCUIT> block")
	ErrMissingNode2     = errors.New("missing n2 value in <CIRCUIT> block")
	ErrMissingComponent = errors.New("missing component type and/or value in <CIRCUIT> block")

	ErrIncompleteTerms        = errors.New("missing RS, VT, RL, and/or frequency values in <TERMS> block")
	ErrMissingSourceImpedance = errors.New("cannot find source resistance/conductance in <TERMS> block")
	ErrMissingSourceDrive     = errors.New("cannot find source voltage or current in <TERMS> block")
	ErrMissingLoadResistance  = errors.New("cannot find load resistance in <TERMS> block")
	ErrMissingSweepStart      = errors.New("cannot find start frequency (Fstart) in <TERMS> block")
	ErrMissingSweepEnd        = errors.New("cannot find end frequency (Fend) in <TERMS> block")
	ErrMissingSweepCount      = errors.New("cannot find number of frequencies (Nfreqs) in <TERMS> block")

	ErrEmptyOutputs = errors.New("no output information found in <OUTPUT> block")
)
