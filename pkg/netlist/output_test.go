package netlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutputsGeneral(t *testing.T) {
	outputs, err := ParseOutputs([]string{"Vin V", "Vout V", "Av", "Ai"})
	require.NoError(t, err)

	assert.Equal(t, []Output{
		{Name: "Vin", Unit: "V"},
		{Name: "Vout", Unit: "V"},
		{Name: "Av", Unit: "L"},
		{Name: "Ai", Unit: "L"},
	}, outputs)

	assert.Equal(t, [2]string{"Re(Vin)", "Im(Vin)"}, outputs[0].Columns())
	assert.Equal(t, [2]string{"V", "V"}, outputs[0].Units())
	assert.Equal(t, [2]string{"L", "L"}, outputs[2].Units())
}

func TestParseOutputsEmpty(t *testing.T) {
	_, err := ParseOutputs(nil)
	assert.ErrorIs(t, err, ErrEmptyOutputs)

	_, err = ParseOutputs([]string{"   "})
	assert.ErrorIs(t, err, ErrEmptyOutputs)
}
