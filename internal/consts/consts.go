package consts

const (
	GroundNode  = 0   // Reference node of the cascade
	DefaultUnit = "L" // Unit label when an output line gives none

	FreqColWidth  = 10 // First CSV column (frequency)
	ValueColWidth = 11 // Every other CSV column
)
