package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPhone(t *testing.T) {
	got, err := FormatPhone("202-456-1111", "us")
	require.NoError(t, err)
	assert.Equal(t, "+12024561111", got)

	got, err = FormatPhone("+44 20 7183 8750", "US")
	require.NoError(t, err)
	assert.Equal(t, "+442071838750", got)

	_, err = FormatPhone("not-a-phone", "US")
	assert.Error(t, err)
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "", NormalizePhone("  ", "US"))
	assert.Equal(t, "+12024561111", NormalizePhone("(202) 456-1111", "US"))
	assert.Equal(t, "garbage", NormalizePhone("garbage", "US"))
}
