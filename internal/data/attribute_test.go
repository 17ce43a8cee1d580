package data

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	type test struct {
		kind Kind
		err  error
	}

	tests := map[string]test{
		"nominal": {kind: Nominal},
		"NOM":     {kind: Nominal},
		"c":       {kind: Nominal},
		"0":       {kind: Nominal},
		"Numeric": {kind: Numeric},
		"num":     {kind: Numeric},
		"n":       {kind: Numeric},
		"1":       {kind: Numeric},
		"ordinal": {err: FormatErr},
	}

	for s, tt := range tests {
		t.Run(s, func(t *testing.T) {
			kind, err := ParseKind(s)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestAttribute_EncodeDecode(t *testing.T) {
	size := NewAttribute("size", Nominal, "small", "medium", "large")

	for i, label := range []string{"small", "medium", "large"} {
		code, err := size.Encode(label)
		require.NoError(t, err)
		assert.Equal(t, float64(i), code)
	}
	assert.Equal(t, "medium", size.Decode(1.0))
	assert.Equal(t, NotAvailable, size.Decode(3.0))
}

func TestAttribute_RoundTrip(t *testing.T) {
	type test struct {
		labels []string
	}

	tests := map[string]test{
		"distinct": {
			labels: []string{"Sunny", "OVERCAST", "rainy"},
		},
		"collision": {
			labels: []string{"a", "B", "A", "c"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := NewAttribute(name, Nominal, tt.labels...)
			for _, label := range tt.labels {
				code, err := a.Encode(label)
				require.NoError(t, err)
				assert.Equal(t, strings.ToLower(label), a.Decode(code))
			}
		})
	}
}

func TestAttribute_Encode(t *testing.T) {
	type test struct {
		attribute *Attribute
		label     string
		code      float64
		err       error
	}

	tests := map[string]test{
		"case-insensitive": {
			attribute: NewAttribute("windy", Nominal, "true", "false"),
			label:     "FALSE",
			code:      1,
		},
		"numeric": {
			attribute: NewAttribute("temperature", Numeric),
			label:     "64.5",
			code:      64.5,
		},
		"nominal-number-fallback": {
			attribute: NewAttribute("windy", Nominal, "true", "false"),
			label:     "7",
			code:      7,
		},
		"unknown-label": {
			attribute: NewAttribute("windy", Nominal, "true", "false"),
			label:     "maybe",
			err:       FormatErr,
		},
		"numeric-nan": {
			attribute: NewAttribute("temperature", Numeric),
			label:     "nan",
			err:       FormatErr,
		},
		"numeric-inf": {
			attribute: NewAttribute("temperature", Numeric),
			label:     "-Inf",
			err:       FormatErr,
		},
		"nominal-nan-fallback": {
			attribute: NewAttribute("windy", Nominal, "true", "false"),
			label:     "NaN",
			err:       FormatErr,
		},
		"nominal-infinity-fallback": {
			attribute: NewAttribute("windy", Nominal, "true", "false"),
			label:     "Infinity",
			err:       FormatErr,
		},
		"invalid-number": {
			attribute: NewAttribute("temperature", Numeric),
			label:     "hot",
			err:       FormatErr,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			code, err := tt.attribute.Encode(tt.label)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestAttribute_Collision(t *testing.T) {
	a := NewAttribute("letter", Nominal, "a", "b", "A")

	code, err := a.Encode("a")
	require.NoError(t, err)
	assert.Equal(t, 2.0, code)
	assert.Equal(t, []string{"a", "b"}, a.Labels())
	assert.Equal(t, NotAvailable, a.Decode(0))
	assert.Equal(t, "a", a.Decode(2))
}

func TestAttribute_DecodeNumeric(t *testing.T) {
	a := NewAttribute("humidity", Numeric)
	assert.Equal(t, "85.5", a.Decode(85.5))
	assert.Empty(t, a.Labels())
}
