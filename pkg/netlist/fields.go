package netlist

import "strings"

// Field is one name=value pair extracted from a netlist line.
type Field struct {
	Name  string
	Value string
}

func isFieldNameChar(r byte) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_'
}

// scanFields tokenizes a line of name=value pairs in input order.
// Whitespace around '=' is ignored and '=' may repeat ("n1 == 2" is
// accepted), matching the tolerance of the .net grammar. Field names
// are case sensitive. Tokens that do not form a complete pair are
// skipped rather than rejected; callers check for required names.
func scanFields(line string) []Field {
	var fields []Field
	i := 0
	n := len(line)

	skipSpace := func() {
		for i < n && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
	}

	for {
		skipSpace()
		if i >= n {
			return fields
		}

		start := i
		for i < n && isFieldNameChar(line[i]) {
			i++
		}
		name := line[start:i]
		skipSpace()

		if name == "" || i >= n || line[i] != '=' {
			// Not a pair. Drop the token and resync on the next one.
			if i < n && i == start {
				i++
			}
			continue
		}
		for i < n && line[i] == '=' {
			i++
		}
		skipSpace()

		start = i
		for i < n && line[i] != ' ' && line[i] != '\t' && line[i] != '=' {
			i++
		}
		value := strings.TrimSpace(line[start:i])
		if value == "" {
			continue
		}
		fields = append(fields, Field{Name: name, Value: value})
	}
}

// lookupField returns the first value for name, in line order.
func lookupField(fields []Field, name string) (string, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}
