package uart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func samplesOf(n int, idle int, bits ...bool) []bool {
	var out []bool
	for i := 0; i < idle; i++ {
		out = append(out, true)
	}
	for _, b := range bits {
		for i := 0; i < n; i++ {
			out = append(out, b)
		}
	}
	return out
}

func TestDecoder(t *testing.T) {
	testCases := []struct {
		name    string
		divisor uint64
		samples []bool
		expect  []Decoded
	}{
		{
			name:    "single byte",
			divisor: 4,
			samples: samplesOf(4, 3, append(frameBitsOf(0x68), true)...),
			expect:  []Decoded{{Cycle: 3, Byte: 0x68}},
		},
		{
			name:    "back to back",
			divisor: 8,
			samples: samplesOf(8, 1, append(frameBitsOf(0x01), frameBitsOf(0x80)...)...),
			expect:  []Decoded{{Cycle: 1, Byte: 0x01}, {Cycle: 81, Byte: 0x80}},
		},
		{
			name:    "divisor one",
			divisor: 1,
			samples: samplesOf(1, 2, frameBitsOf(0xa5)...),
			expect:  []Decoded{{Cycle: 2, Byte: 0xa5}},
		},
		{
			name:    "framing error",
			divisor: 4,
			samples: samplesOf(4, 2, append(frameBitsOf(0x00)[:9], false, true, true)...),
			expect:  []Decoded{{Cycle: 2, Byte: 0x00, FramingError: true}},
		},
		{
			name:    "glitch",
			divisor: 8,
			samples: append(samplesOf(1, 4, false, false, true), samplesOf(8, 8)...),
		},
		{
			name:    "stuck low",
			divisor: 4,
			samples: samplesOf(4, 0, make([]bool, 12)...),
			expect:  []Decoded{{Cycle: 0, FramingError: true}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDecoder(tc.divisor)
			require.Equal(t, tc.expect, d.Feed(tc.samples))
			require.False(t, d.Busy())
		})
	}
}
