package uart

// Encoder is a software 8-N-1 transmitter producing one line level per
// driving-clock cycle, used to stimulate receivers.
type Encoder struct {
	divisor uint64

	pending []byte
	frame   Frame
	busy    bool
	bit     uint8
	wait    uint64
}

// NewEncoder creates an Encoder for bits lasting divisor cycles.
func NewEncoder(divisor uint64) *Encoder {
	if divisor == 0 {
		divisor = 1
	}
	return &Encoder{divisor: divisor}
}

// Write queues bytes to transmit.
func (e *Encoder) Write(p []byte) (int, error) {
	e.pending = append(e.pending, p...)
	return len(p), nil
}

// Busy indicates a frame is on the line or bytes are queued.
func (e *Encoder) Busy() bool {
	return e.busy || len(e.pending) > 0
}

// Level returns the line level of the next cycle. An idle encoder holds
// the line high.
func (e *Encoder) Level() bool {
	if !e.busy {
		if len(e.pending) == 0 {
			return true
		}
		e.frame, e.pending = NewFrame(e.pending[0]), e.pending[1:]
		e.busy, e.bit, e.wait = true, 0, e.divisor
	}
	level := e.frame.Bit(e.bit)
	if e.wait--; e.wait == 0 {
		e.wait = e.divisor
		if e.bit++; e.bit == FrameBits {
			e.busy = false
		}
	}
	return level
}
