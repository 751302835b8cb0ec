package util

import "fmt"

// FormatScientific renders a value as a 3-decimal scientific-notation
// string, e.g. 7.064e-01.
func FormatScientific(value float64) string {
	return fmt.Sprintf("%.3e", value)
}

// RightAlign pads a cell on the left to the given column width. Cells
// already at or over the width are left untouched.
func RightAlign(cell string, width int) string {
	return fmt.Sprintf("%*s", width, cell)
}
