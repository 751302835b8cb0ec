package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatScientific(t *testing.T) {
	assert.Equal(t, "7.064e-01", FormatScientific(0.7063669191534891))
	assert.Equal(t, "1.000e+01", FormatScientific(10))
	assert.Equal(t, "1.000e+07", FormatScientific(10e6))
	assert.Equal(t, "0.000e+00", FormatScientific(0))
	assert.Equal(t, "-5.005e+06", FormatScientific(-5004872.424273438))
}

func TestRightAlign(t *testing.T) {
	assert.Equal(t, "      Freq", RightAlign("Freq", 10))
	assert.Equal(t, "overflowing", RightAlign("overflowing", 5))
}
