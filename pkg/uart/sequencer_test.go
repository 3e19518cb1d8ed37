package uart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequencer(t *testing.T) {
	_, err := NewSequencer(nil)
	require.Equal(t, ErrEmptyMessage, err)

	msg := []byte("abc")
	q, err := NewSequencer(msg)
	require.NoError(t, err)
	msg[0] = 'x'
	require.Equal(t, []byte("abc"), q.Message())
	require.Equal(t, 3, q.Len())

	s := q.Reset()
	require.Equal(t, SequencerState{State: SendWait}, s)
	require.Equal(t, byte('a'), q.Current(s))

	testCases := []struct {
		name   string
		from   SequencerState
		done   bool
		expect SequencerState
	}{
		{"wait", SequencerState{SendWait, 0}, false, SequencerState{SendWait, 0}},
		{"frame done", SequencerState{SendWait, 0}, true, SequencerState{SendDone, 0}},
		{"advance", SequencerState{SendDone, 0}, false, SequencerState{SendWait, 1}},
		{"advance ignores done", SequencerState{SendDone, 1}, true, SequencerState{SendWait, 2}},
		{"last frame done", SequencerState{SendWait, 2}, true, SequencerState{SendDone, 2}},
		{"terminal", SequencerState{SendDone, 2}, false, SequencerState{SendDone, 2}},
		{"terminal with done", SequencerState{SendDone, 2}, true, SequencerState{SendDone, 2}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, q.Next(tc.from, tc.done))
		})
	}
	require.True(t, q.Finished(SequencerState{SendDone, 2}))
	require.False(t, q.Finished(SequencerState{SendWait, 2}))
	require.False(t, q.Finished(SequencerState{SendDone, 1}))
	require.Equal(t, "SEND_WAIT", SendWait.String())
	require.Equal(t, "SEND_DONE", SendDone.String())
}
