package uart

import "errors"

// ErrEmptyMessage indicates the message buffer has no bytes.
var ErrEmptyMessage = errors.New("empty message")

// ProtocolState is the state of the transmit sequencer.
type ProtocolState int

const (
	// SendWait means the current byte is being shifted out.
	SendWait ProtocolState = iota
	// SendDone is the one-cycle transition state advancing the index, or
	// the terminal state after the last byte.
	SendDone
)

// String implements Stringer.
func (s ProtocolState) String() string {
	switch s {
	case SendWait:
		return "SEND_WAIT"
	case SendDone:
		return "SEND_DONE"
	}
	return "UNKNOWN"
}

// SequencerState is the registered state of a Sequencer.
type SequencerState struct {
	State ProtocolState
	Index int
}

// Sequencer walks a fixed message byte by byte.
type Sequencer struct {
	msg []byte
}

// NewSequencer creates a Sequencer over a copy of msg.
func NewSequencer(msg []byte) (*Sequencer, error) {
	if len(msg) == 0 {
		return nil, ErrEmptyMessage
	}
	return &Sequencer{msg: append([]byte(nil), msg...)}, nil
}

// Len gets the message length.
func (q *Sequencer) Len() int {
	return len(q.msg)
}

// Message returns a copy of the message.
func (q *Sequencer) Message() []byte {
	return append([]byte(nil), q.msg...)
}

// Reset returns the power-on state.
func (q *Sequencer) Reset() SequencerState {
	return SequencerState{State: SendWait}
}

// Current gets the byte selected by the index.
func (q *Sequencer) Current(s SequencerState) byte {
	return q.msg[s.Index]
}

// Finished indicates the whole message has been sent.
func (q *Sequencer) Finished(s SequencerState) bool {
	return s.State == SendDone && s.Index >= len(q.msg)-1
}

// Next computes the state after the edge given whether the shifter
// completed a frame on this edge.
func (q *Sequencer) Next(s SequencerState, done bool) SequencerState {
	switch s.State {
	case SendWait:
		if done {
			s.State = SendDone
		}
	case SendDone:
		if s.Index < len(q.msg)-1 {
			s.Index++
			s.State = SendWait
		}
	}
	return s
}
