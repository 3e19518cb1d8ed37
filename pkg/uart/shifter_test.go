package uart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameShifter(t *testing.T) {
	for v := 0; v < 256; v++ {
		b := byte(v)
		var sh FrameShifter
		s := sh.Reset()
		require.True(t, s.Line)
		var line []bool
		for i := 0; i < FrameBits; i++ {
			var done bool
			s, done = sh.Next(s, true, true, b)
			line = append(line, s.Line)
			require.Equalf(t, i == FrameBits-1, done, "byte %02x tick %d", b, i)
		}
		require.Equal(t, frameBitsOf(b), line)
		require.Equal(t, uint8(0), s.Index)
	}
}

func TestFrameShifterHoldsWithoutTick(t *testing.T) {
	var sh FrameShifter
	s, _ := sh.Next(sh.Reset(), true, true, 0x55)
	for i := 0; i < 5; i++ {
		next, done := sh.Next(s, false, true, 0x55)
		require.False(t, done)
		require.Equal(t, s, next)
		next, done = sh.Next(s, true, false, 0x55)
		require.False(t, done)
		require.Equal(t, s, next)
	}
}

func TestFrameShifterLatchesByte(t *testing.T) {
	var sh FrameShifter
	s := sh.Reset()
	var line []bool
	for i := 0; i < FrameBits; i++ {
		// byte changes after the frame started
		b := byte(0x68)
		if i > 0 {
			b = byte(i * 37)
		}
		s, _ = sh.Next(s, true, true, b)
		line = append(line, s.Line)
	}
	require.Equal(t, frameBitsOf(0x68), line)
}
