package uart

// FrameBits is the number of bits in an 8-N-1 frame.
const FrameBits = 10

const (
	startBit = 0
	stopBit  = FrameBits - 1
)

// Frame is a byte framed as bit0 = start (0), bits 1..8 = data LSB first,
// bit9 = stop (1).
type Frame uint16

// NewFrame frames a byte.
func NewFrame(b byte) Frame {
	return Frame(1<<stopBit | uint16(b)<<1)
}

// Bit gets the line level of bit i of the frame.
func (f Frame) Bit(i uint8) bool {
	return (f>>i)&1 != 0
}

// Byte extracts the payload.
func (f Frame) Byte() byte {
	return byte(f >> 1)
}

// Valid checks the start and stop bits.
func (f Frame) Valid() bool {
	return !f.Bit(startBit) && f.Bit(stopBit) && f>>FrameBits == 0
}

// Bits lists the line levels in transmission order.
func (f Frame) Bits() []bool {
	bits := make([]bool, FrameBits)
	for i := range bits {
		bits[i] = f.Bit(uint8(i))
	}
	return bits
}
