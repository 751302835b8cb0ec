package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AJDColvin/Circuit-Analysis-Tool/internal/consts"
	"github.com/AJDColvin/Circuit-Analysis-Tool/pkg/circuit"
	"github.com/AJDColvin/Circuit-Analysis-Tool/pkg/util"
)

var ErrOutputWrite = errors.New("cannot create output file")

// Write renders the analysed sweep as the result table: a header row,
// a units row, then one row per frequency. Real and imaginary parts
// get separate columns. Cells are right-aligned scientific strings so
// the commas line up; value rows carry a trailing empty field.
func Write(w io.Writer, result *circuit.Result) error {
	header := []string{util.RightAlign("Freq", consts.FreqColWidth)}
	units := []string{util.RightAlign("Hz", consts.FreqColWidth)}
	for _, out := range result.Outputs {
		for _, label := range out.Columns() {
			header = append(header, util.RightAlign(label, consts.ValueColWidth))
		}
		for _, unit := range out.Units() {
			units = append(units, util.RightAlign(unit, consts.ValueColWidth))
		}
	}

	if err := writeRow(w, header); err != nil {
		return err
	}
	if err := writeRow(w, units); err != nil {
		return err
	}

	for i, freq := range result.Frequencies {
		row := []string{util.RightAlign(util.FormatScientific(freq), consts.FreqColWidth)}
		for _, value := range result.Rows[i] {
			row = append(row,
				util.RightAlign(util.FormatScientific(real(value)), consts.ValueColWidth),
				util.RightAlign(util.FormatScientific(imag(value)), consts.ValueColWidth))
		}
		row = append(row, "")
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

// Rows end in CRLF, the conventional CSV record terminator.
func writeRow(w io.Writer, cells []string) error {
	if _, err := io.WriteString(w, strings.Join(cells, ",")+"\r\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return nil
}

// WriteFile writes the result table to path, truncating any previous
// contents.
func WriteFile(path string, result *circuit.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrOutputWrite, path)
	}
	defer f.Close()

	if err := Write(f, result); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s", ErrOutputWrite, path)
	}
	return nil
}
