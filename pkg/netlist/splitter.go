package netlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sections holds the raw lines of the three blocks of a .net file, in
// the order they appeared inside each block.
type Sections struct {
	Circuit []string
	Terms   []string
	Output  []string
}

type section int

const (
	sectionNone section = iota
	sectionCircuit
	sectionTerms
	sectionOutput
)

var openMarkers = map[string]section{
	"<CIRCUIT>": sectionCircuit,
	"<TERMS>":   sectionTerms,
	"<OUTPUT>":  sectionOutput,
}

var closeMarkers = map[string]section{
	"</CIRCUIT>": sectionCircuit,
	"</TERMS>":   sectionTerms,
	"</OUTPUT>":  sectionOutput,
}

// Split scans the input once and groups lines into the <CIRCUIT>,
// <TERMS> and <OUTPUT> blocks. Blocks may appear in any relative order.
// Comment lines starting with '#' and blank lines are dropped. A
// missing close marker is tolerated; a missing open marker is not.
func Split(r io.Reader) (*Sections, error) {
	var sec Sections
	seen := map[section]bool{}
	current := sectionNone

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if s, ok := closeMarkers[trimmed]; ok {
			if s == current {
				current = sectionNone
			}
			continue
		}
		if s, ok := openMarkers[trimmed]; ok {
			current = s
			seen[s] = true
			continue
		}
		if current == sectionNone || trimmed == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch current {
		case sectionCircuit:
			sec.Circuit = append(sec.Circuit, trimmed)
		case sectionTerms:
			sec.Terms = append(sec.Terms, trimmed)
		case sectionOutput:
			sec.Output = append(sec.Output, trimmed)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableInput, err)
	}

	required := []struct {
		sec  section
		name string
	}{
		{sectionCircuit, "<CIRCUIT>"},
		{sectionTerms, "<TERMS>"},
		{sectionOutput, "<OUTPUT>"},
	}
	for _, req := range required {
		if !seen[req.sec] {
			return nil, fmt.Errorf("%w: %s", ErrMissingSection, req.name)
		}
	}

	return &sec, nil
}

// SplitFile opens and splits a .net file from disk.
func SplitFile(path string) (*Sections, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnreadableInput, path)
	}
	defer f.Close()
	return Split(f)
}
