package uart

// Decoded is a byte recovered from the line.
type Decoded struct {
	// Cycle is the sample index of the start bit falling edge.
	Cycle uint64
	Byte  byte
	// FramingError is set when the stop bit was sampled low.
	FramingError bool
}

type decodeState int

const (
	decodeIdle  decodeState = iota // line idle, waiting for falling edge
	decodeStart                    // falling edge seen, verify start at mid-bit
	decodeData                     // sampling data bits LSB first
	decodeStop                     // waiting for mid-stop sample
)

// Decoder is a software 8-N-1 receiver observing a line once per
// driving-clock cycle. It samples each bit in the middle of its period.
type Decoder struct {
	divisor uint64

	state decodeState
	cycle uint64
	last  bool
	wait  uint64
	bit   uint
	start uint64
	value byte
}

// NewDecoder creates a Decoder for bits lasting divisor cycles.
func NewDecoder(divisor uint64) *Decoder {
	if divisor == 0 {
		divisor = 1
	}
	d := &Decoder{divisor: divisor}
	d.Reset()
	return d
}

// Reset forgets any partial frame and assumes an idle line.
func (d *Decoder) Reset() {
	d.state, d.cycle, d.last = decodeIdle, 0, true
}

// Busy indicates a frame is being received.
func (d *Decoder) Busy() bool {
	return d.state != decodeIdle
}

// Sample consumes the line level of the next cycle and reports a byte
// when its stop bit has been sampled.
func (d *Decoder) Sample(line bool) (res Decoded, ok bool) {
	cycle := d.cycle
	d.cycle++
	defer func() { d.last = line }()

	if d.state == decodeIdle {
		if line || !d.last {
			return
		}
		d.state, d.start, d.wait = decodeStart, cycle, d.divisor/2
		d.bit, d.value = 0, 0
	} else {
		d.wait--
	}
	if d.wait > 0 {
		return
	}

	switch d.state {
	case decodeStart:
		if line {
			// glitch shorter than half a bit.
			d.state = decodeIdle
			return
		}
		d.state = decodeData
	case decodeData:
		if line {
			d.value |= 1 << d.bit
		}
		if d.bit++; d.bit == 8 {
			d.state = decodeStop
		}
	case decodeStop:
		d.state = decodeIdle
		return Decoded{Cycle: d.start, Byte: d.value, FramingError: !line}, true
	}
	d.wait = d.divisor
	return
}

// Feed decodes a sequence of samples.
func (d *Decoder) Feed(samples []bool) []Decoded {
	var out []Decoded
	for _, line := range samples {
		if res, ok := d.Sample(line); ok {
			out = append(out, res)
		}
	}
	return out
}
