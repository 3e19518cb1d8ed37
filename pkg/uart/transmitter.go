package uart

import "github.com/robotalks/uartsim/pkg/rtl"

// TransmitterState is the full registered state of a Transmitter.
type TransmitterState struct {
	Divider   DividerState
	Shifter   ShifterState
	Sequencer SequencerState
}

// Transmitter sends a fixed message once at a fixed baud rate.
// Frames are back to back, except with a divisor of 1: the sequencer
// spends one edge in SEND_DONE between frames, and that edge carries a
// tick, so the stop bit is held for two edges.
type Transmitter struct {
	Divider   *ClockDivider
	Shifter   FrameShifter
	Sequencer *Sequencer

	state TransmitterState
}

// NewTransmitter creates a Transmitter in its power-on state.
func NewTransmitter(clk rtl.Clock, baud float64, msg []byte, opts ...DividerOption) (*Transmitter, error) {
	div, err := NewClockDivider(clk, baud, opts...)
	if err != nil {
		return nil, err
	}
	seq, err := NewSequencer(msg)
	if err != nil {
		return nil, err
	}
	t := &Transmitter{Divider: div, Sequencer: seq}
	t.Reset()
	return t, nil
}

// Reset puts the Transmitter back to its power-on state.
func (t *Transmitter) Reset() {
	t.state = TransmitterState{
		Divider:   t.Divider.Reset(),
		Shifter:   t.Shifter.Reset(),
		Sequencer: t.Sequencer.Reset(),
	}
}

// Next computes the state after one edge from s without committing.
func (t *Transmitter) Next(s TransmitterState) TransmitterState {
	tick := t.Divider.Tick(s.Divider)
	shifter, done := t.Shifter.Next(s.Shifter, tick,
		s.Sequencer.State == SendWait, t.Sequencer.Current(s.Sequencer))
	return TransmitterState{
		Divider:   t.Divider.Next(s.Divider),
		Shifter:   shifter,
		Sequencer: t.Sequencer.Next(s.Sequencer, done),
	}
}

// Step advances one driving-clock edge.
func (t *Transmitter) Step() {
	t.state = t.Next(t.state)
}

// State gets the current registered state.
func (t *Transmitter) State() TransmitterState {
	return t.state
}

// TX is the output line level.
func (t *Transmitter) TX() bool {
	return t.state.Shifter.Line
}

// Tick is the divider output for the upcoming edge.
func (t *Transmitter) Tick() bool {
	return t.Divider.Tick(t.state.Divider)
}

// Finished indicates the message has been fully transmitted.
func (t *Transmitter) Finished() bool {
	return t.Sequencer.Finished(t.state.Sequencer)
}

// FrameCycles is the number of driving-clock edges from one start bit to
// the next.
func (t *Transmitter) FrameCycles() uint64 {
	n := t.Divider.Divisor()
	if n == 1 {
		return FrameBits + 1
	}
	return n * FrameBits
}
