package blink

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/uartsim/pkg/rtl"
)

func TestBlinkWidth(t *testing.T) {
	testCases := []struct {
		name    string
		freq    float64
		rate    float64
		width   uint
		ceiling uint64
	}{
		{"icestick tx", 12e6, 10, 21, 1<<21 - 1},
		{"icestick rx", 12e6, 3, 22, 1<<22 - 1},
		{"power of two", 1000, 125, 3, 7},
		{"one cycle", 1000, 1000, 1, 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := New(rtl.ClockFromFrequency(tc.freq), tc.rate)
			require.NoError(t, err)
			require.Equal(t, tc.width, b.Width())
			require.Equal(t, tc.ceiling, b.Ceiling())
		})
	}
}

func TestBlinkPulse(t *testing.T) {
	// 8 cycles: 3-bit counter, lit while counter >= 4.
	b, err := New(rtl.ClockFromFrequency(1000), 125)
	require.NoError(t, err)
	s := b.Reset()
	require.False(t, b.LED(s))

	s = b.Next(s, true)
	var lit []bool
	for i := 0; i < 10; i++ {
		lit = append(lit, b.LED(s))
		s = b.Next(s, false)
	}
	require.Equal(t, []bool{true, true, true, true, false, false, false, false, false, false}, lit)
	require.Equal(t, uint64(0), s.Counter)
}

func TestBlinkRetrigger(t *testing.T) {
	b, err := New(rtl.ClockFromFrequency(1000), 125)
	require.NoError(t, err)
	s := b.Next(b.Reset(), true)
	s = b.Next(s, false)
	s = b.Next(s, false)
	require.Equal(t, uint64(5), s.Counter)
	s = b.Next(s, true)
	require.Equal(t, b.Ceiling(), s.Counter)
	for i := 0; i < 3; i++ {
		s = b.Next(s, false)
		require.True(t, b.LED(s))
	}
}

func TestBlinkConfigError(t *testing.T) {
	_, err := New(rtl.ClockFromFrequency(1000), 0)
	require.Error(t, err)
	_, err = New(rtl.ClockFromFrequency(1000), 1e6)
	require.Error(t, err)
	_, err = New(rtl.Clock{}, 1)
	require.Error(t, err)
}
