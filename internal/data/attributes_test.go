package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributes(t *testing.T) {
	outlook := NewAttribute("outlook", Nominal, "sunny", "overcast", "rainy")
	temperature := NewAttribute("temperature", Numeric)
	play := NewAttribute("play", Nominal, "yes", "no")

	as := NewAttributes(outlook, temperature)
	assert.True(t, as.Add(play))
	assert.False(t, as.Add(outlook))
	assert.Equal(t, 3, as.Size())

	assert.Equal(t, []*Attribute{outlook, temperature}, as.Features())
	class, err := as.Class()
	require.NoError(t, err)
	assert.Equal(t, play, class)
	assert.Equal(t, []Kind{Nominal, Numeric, Nominal}, as.Kinds())

	i, err := as.Index("TEMPERATURE")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	_, err = as.Index("humidity")
	assert.ErrorIs(t, err, UnknownEntityErr)

	i, err = as.IndexOf(play)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = as.IndexOf(NewAttribute("play", Nominal, "yes", "no"))
	assert.ErrorIs(t, err, UnknownEntityErr)

	a, err := as.Get(0)
	require.NoError(t, err)
	assert.Equal(t, outlook, a)

	_, err = as.Get(3)
	assert.ErrorIs(t, err, UnknownEntityErr)
}

func TestAttributes_Empty(t *testing.T) {
	as := NewAttributes()
	_, err := as.Class()
	assert.ErrorIs(t, err, UnknownEntityErr)
	assert.Empty(t, as.Features())
}
