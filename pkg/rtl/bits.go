package rtl

// BitsFor returns the number of bits required to hold values in [0, n],
// i.e. ceil(log2(n+1)). Zero still takes one bit.
func BitsFor(n uint64) uint {
	var w uint
	for ; n != 0; n >>= 1 {
		w++
	}
	if w == 0 {
		w = 1
	}
	return w
}

// Mask returns the all-ones value of a register of the given width.
func Mask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

// Bit extracts bit i of v.
func Bit(v uint64, i uint) bool {
	return (v>>i)&1 != 0
}

// Probe describes an observable signal of a design.
type Probe struct {
	Name  string
	Width uint
	// Pin is the physical pin the signal is bound to, if any.
	Pin string
}
