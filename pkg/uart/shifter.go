package uart

// ShifterState is the registered state of a FrameShifter.
type ShifterState struct {
	// Frame being transmitted, latched when Index is 0.
	Frame Frame
	// Index of the frame bit driven on the next tick.
	Index uint8
	// Line is the output line level.
	Line bool
}

// FrameShifter serializes one byte per frame onto the output line, one
// bit per tick.
type FrameShifter struct{}

// Reset returns the power-on state with the line idle.
func (FrameShifter) Reset() ShifterState {
	return ShifterState{Line: true}
}

// Next computes the state after the edge. b is only read when a new frame
// begins. done is reported on the tick driving the stop bit.
func (FrameShifter) Next(s ShifterState, tick, enabled bool, b byte) (next ShifterState, done bool) {
	next = s
	if !tick || !enabled {
		return
	}
	if s.Index == 0 {
		next.Frame = NewFrame(b)
	}
	next.Line = next.Frame.Bit(s.Index)
	if s.Index < stopBit {
		next.Index = s.Index + 1
	} else {
		next.Index, done = 0, true
	}
	return
}
