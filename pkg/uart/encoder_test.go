package uart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncoderIdle(t *testing.T) {
	e := NewEncoder(4)
	for i := 0; i < 10; i++ {
		require.True(t, e.Level())
	}
	require.False(t, e.Busy())
}

func TestEncoderLevels(t *testing.T) {
	e := NewEncoder(2)
	e.Write([]byte{0x01})
	require.True(t, e.Busy())
	var levels []bool
	for i := 0; i < 2*FrameBits; i++ {
		levels = append(levels, e.Level())
	}
	require.False(t, e.Busy())
	expect := []bool{
		false, false, // start
		true, true, // bit 0
		false, false, false, false, false, false, false, // bits 1..7
		false, false, false, false, false, false, false,
		true, true, // stop
	}
	require.Equal(t, expect, levels)
	require.True(t, e.Level())
}

func TestEncoderDecoder(t *testing.T) {
	for _, divisor := range []uint64{1, 3, 104} {
		e, d := NewEncoder(divisor), NewDecoder(divisor)
		msg := []byte("henlo\r\n\x00\xff")
		e.Write(msg)
		var got []byte
		for i := 0; i < int(divisor)*FrameBits*(len(msg)+2); i++ {
			if res, ok := d.Sample(e.Level()); ok {
				require.False(t, res.FramingError)
				got = append(got, res.Byte)
			}
		}
		require.Equalf(t, msg, got, "divisor %d", divisor)
	}
}
