package netlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanFields(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Field
	}{
		{
			name: "plain pairs",
			line: "n1=1 n2=2 R=8.55",
			want: []Field{{"n1", "1"}, {"n2", "2"}, {"R", "8.55"}},
		},
		{
			name: "spaces around equals",
			line: "n1=1 n2 =2 R = 8.55",
			want: []Field{{"n1", "1"}, {"n2", "2"}, {"R", "8.55"}},
		},
		{
			name: "repeated equals",
			line: "n1==1 R  ==  141.9",
			want: []Field{{"n1", "1"}, {"R", "141.9"}},
		},
		{
			name: "scientific value",
			line: "Fstart=10.0 Fend=10e+6 Nfreqs=10",
			want: []Field{{"Fstart", "10.0"}, {"Fend", "10e+6"}, {"Nfreqs", "10"}},
		},
		{
			name: "empty line",
			line: "   ",
			want: nil,
		},
		{
			name: "bare token skipped",
			line: "noise n1=3",
			want: []Field{{"n1", "3"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scanFields(tt.line))
		})
	}
}

func TestLookupFieldIsCaseSensitive(t *testing.T) {
	fields := scanFields("rs=50 RS=60")
	v, ok := lookupField(fields, "RS")
	assert.True(t, ok)
	assert.Equal(t, "60", v)

	_, ok = lookupField(fields, "Rs")
	assert.False(t, ok)
}
