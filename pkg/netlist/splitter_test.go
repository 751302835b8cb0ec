package netlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validNet = `# Resistive divider
<CIRCUIT>
n1=1 n2=2 R=8.55
n1=2 n2=0 R=141.9
</CIRCUIT>
<TERMS>
VT=5 RS=50
RL=75
Fstart=10.0 Fend=10e+6 Nfreqs=10
</TERMS>
<OUTPUT>
Vin V
Vout V
</OUTPUT>
`

func TestSplitValidFile(t *testing.T) {
	sec, err := Split(strings.NewReader(validNet))
	require.NoError(t, err)

	assert.Equal(t, []string{"n1=1 n2=2 R=8.55", "n1=2 n2=0 R=141.9"}, sec.Circuit)
	assert.Equal(t, []string{"VT=5 RS=50", "RL=75", "Fstart=10.0 Fend=10e+6 Nfreqs=10"}, sec.Terms)
	assert.Equal(t, []string{"Vin V", "Vout V"}, sec.Output)
}

func TestSplitUnorderedBlocks(t *testing.T) {
	reordered := `<OUTPUT>
Vin V
</OUTPUT>
<TERMS>
VT=5 RS=50
RL=75
Fstart=10 Fend=100 Nfreqs=2
</TERMS>
<CIRCUIT>
n1=1 n2=2 R=8.55
</CIRCUIT>
`
	sec, err := Split(strings.NewReader(reordered))
	require.NoError(t, err)

	assert.Equal(t, []string{"n1=1 n2=2 R=8.55"}, sec.Circuit)
	assert.Len(t, sec.Terms, 3)
	assert.Equal(t, []string{"Vin V"}, sec.Output)
}

func TestSplitIgnoresCommentsAndBlanks(t *testing.T) {
	input := `# leading comment
<CIRCUIT>
# inside comment
n1=1 n2=2 R=10

</CIRCUIT>
stray line outside any block
<TERMS>
RS=50 VT=5
</TERMS>
<OUTPUT>
Vin
</OUTPUT>
`
	sec, err := Split(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"n1=1 n2=2 R=10"}, sec.Circuit)
}

func TestSplitMissingSection(t *testing.T) {
	input := `<CIRCUIT>
n1=1 n2=2 R=10
</CIRCUIT>
<OUTPUT>
Vin
</OUTPUT>
`
	_, err := Split(strings.NewReader(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingSection)
	assert.Contains(t, err.Error(), "<TERMS>")
}

func TestSplitToleratesMissingCloseMarker(t *testing.T) {
	input := `<CIRCUIT>
n1=1 n2=2 R=10
<TERMS>
RS=50 VT=5
</TERMS>
<OUTPUT>
Vin
`
	sec, err := Split(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"n1=1 n2=2 R=10"}, sec.Circuit)
	assert.Equal(t, []string{"RS=50 VT=5"}, sec.Terms)
	assert.Equal(t, []string{"Vin"}, sec.Output)
}

func TestSplitFileMissing(t *testing.T) {
	_, err := SplitFile("testdata/does-not-exist.net")
	assert.ErrorIs(t, err, ErrUnreadableInput)
}
