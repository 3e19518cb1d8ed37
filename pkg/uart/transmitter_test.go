package uart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/uartsim/pkg/rtl"
)

// expectedLine computes the line level after edge e for a gapless
// transmission of msg with bits lasting n edges.
func expectedLine(msg []byte, n, e uint64) bool {
	if e < n {
		return true
	}
	bit := e/n - 1
	j := bit / FrameBits
	if j >= uint64(len(msg)) {
		return true
	}
	return NewFrame(msg[j]).Bit(uint8(bit % FrameBits))
}

func runTransmitter(t *testing.T, tx *Transmitter, edges uint64) []bool {
	line := make([]bool, edges)
	lastIndex := 0
	for e := uint64(0); e < edges; e++ {
		tx.Step()
		line[e] = tx.TX()
		idx := tx.State().Sequencer.Index
		require.True(t, idx == lastIndex || idx == lastIndex+1, "index must advance by one")
		lastIndex = idx
	}
	return line
}

func TestTransmitterHi(t *testing.T) {
	msg := []byte("hi")
	tx, err := NewTransmitter(rtl.ClockFromFrequency(12e6), 115200, msg)
	require.NoError(t, err)
	n := tx.Divider.Divisor()
	require.Equal(t, uint64(104), n)
	require.Equal(t, n*FrameBits, tx.FrameCycles())

	edges := n*FrameBits*2 + 3*n
	line := make([]bool, 0, edges)
	for e := uint64(0); e < edges; e++ {
		tx.Step()
		line = append(line, tx.TX())
		require.Equalf(t, expectedLine(msg, n, e), tx.TX(), "edge %d", e)
		require.Equalf(t, e >= 20*n, tx.Finished(), "edge %d", e)
	}

	decoded := NewDecoder(n).Feed(line)
	require.Equal(t, []Decoded{
		{Cycle: n, Byte: 0x68},
		{Cycle: 11 * n, Byte: 0x69},
	}, decoded)
}

func TestTransmitterMessage(t *testing.T) {
	testCases := []struct {
		name string
		freq float64
		baud float64
		msg  []byte
	}{
		{"henlo", 12e6, 115200, []byte("henlo\r\n")},
		{"single byte", 1e6, 1e5, []byte{0xa5}},
		{"fast divider", 1e6, 5e5, []byte{0x00, 0xff, 0x0f}},
		{"all ones", 1e6, 1e5, []byte{0xff, 0xff}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx, err := NewTransmitter(rtl.ClockFromFrequency(tc.freq), tc.baud, tc.msg)
			require.NoError(t, err)
			n := tx.Divider.Divisor()
			edges := tx.FrameCycles()*uint64(len(tc.msg)) + 4*n
			line := runTransmitter(t, tx, edges)
			require.True(t, tx.Finished())

			var got []byte
			for _, d := range NewDecoder(n).Feed(line) {
				require.False(t, d.FramingError)
				got = append(got, d.Byte)
			}
			require.Equal(t, tc.msg, got)
			require.Equal(t, len(tc.msg)-1, tx.State().Sequencer.Index)
		})
	}
}

func TestTransmitterSingleEdgeBits(t *testing.T) {
	msg := []byte{0xa5, 0x3c}
	tx, err := NewTransmitter(rtl.ClockFromFrequency(1e6), 1e6, msg)
	require.NoError(t, err)
	require.Equal(t, uint64(1), tx.Divider.Divisor())
	require.Equal(t, uint64(FrameBits+1), tx.FrameCycles())

	line := runTransmitter(t, tx, 2*(FrameBits+1)+2)
	require.True(t, line[0])
	for j, b := range msg {
		start := 1 + uint64(j)*(FrameBits+1)
		for i := uint64(0); i < FrameBits; i++ {
			require.Equalf(t, NewFrame(b).Bit(uint8(i)), line[start+i], "byte %d bit %d", j, i)
		}
		// stop bit held for an extra edge.
		require.True(t, line[start+FrameBits])
	}
	require.True(t, tx.Finished())
}

func TestTransmitterTerminal(t *testing.T) {
	tx, err := NewTransmitter(rtl.ClockFromFrequency(1e6), 1e5, []byte("ok"))
	require.NoError(t, err)
	for !tx.Finished() {
		tx.Step()
	}
	final := tx.State()
	for i := 0; i < 1000; i++ {
		tx.Step()
		require.True(t, tx.Finished())
		require.True(t, tx.TX())
		require.Equal(t, final.Sequencer, tx.State().Sequencer)
		require.Equal(t, final.Shifter, tx.State().Shifter)
	}

	tx.Reset()
	require.False(t, tx.Finished())
	require.Equal(t, SequencerState{}, tx.State().Sequencer)
}

func TestTransmitterConfigErrors(t *testing.T) {
	clk := rtl.ClockFromFrequency(1e6)
	_, err := NewTransmitter(clk, 115200, nil)
	require.Equal(t, ErrEmptyMessage, err)
	_, err = NewTransmitter(clk, 0, []byte("x"))
	require.Error(t, err)
	_, err = NewTransmitter(clk, 2e6, []byte("x"))
	require.Error(t, err)
}
