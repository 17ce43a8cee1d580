package data

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_Render(t *testing.T) {
	src, err := LoadFile("testdata/weather.txt")
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, src.Render(&b))

	out := b.String()
	assert.True(t, bytes.HasPrefix(b.Bytes(), []byte("weather\n")))
	for _, s := range []string{"overcast", "rainy", "85", "70", "true", "false", "yes", "no"} {
		assert.Contains(t, out, s)
	}
	assert.NotContains(t, out, NotAvailable)
}

func TestRender_Errors(t *testing.T) {
	var b bytes.Buffer
	err := Render(&b, NewAttributes(), NewDataset())
	assert.ErrorIs(t, err, PreconditionErr)

	attributes := NewAttributes(NewAttribute("x", Numeric), NewAttribute("y", Nominal, "a", "b"))
	err = Render(&b, attributes, NewDataset(NewExample(0, 1, 2)))
	assert.ErrorIs(t, err, FormatErr)
}
