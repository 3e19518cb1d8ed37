package uart

import "github.com/robotalks/uartsim/pkg/rtl"

// ClockDivider derives a single-edge tick every N driving-clock edges.
type ClockDivider struct {
	divisor     uint64
	tickOnReset bool
}

// DividerState is the registered state of a ClockDivider.
type DividerState struct {
	Counter uint64
}

// DividerOption customizes a ClockDivider.
type DividerOption func(*ClockDivider)

// TickOnReset resets the counter to 0, so the first tick happens on the
// very first edge instead of edge N.
func TickOnReset() DividerOption {
	return func(d *ClockDivider) { d.tickOnReset = true }
}

// NewClockDivider creates a divider ticking at freq from the driving clock.
func NewClockDivider(clk rtl.Clock, freq float64, opts ...DividerOption) (*ClockDivider, error) {
	n, err := rtl.Divisor(clk, freq)
	if err != nil {
		return nil, err
	}
	d := &ClockDivider{divisor: n}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Divisor gets N.
func (d *ClockDivider) Divisor() uint64 {
	return d.divisor
}

// Width is the width of the counter register.
func (d *ClockDivider) Width() uint {
	return rtl.BitsFor(d.divisor)
}

// Reset returns the power-on state.
func (d *ClockDivider) Reset() DividerState {
	if d.tickOnReset {
		return DividerState{}
	}
	return DividerState{Counter: d.divisor}
}

// Tick is asserted on the edge where the counter is 0.
func (d *ClockDivider) Tick(s DividerState) bool {
	return s.Counter == 0
}

// Next computes the counter after the edge. The reload value is N-1 so
// that consecutive ticks are exactly N edges apart.
func (d *ClockDivider) Next(s DividerState) DividerState {
	if s.Counter == 0 {
		return DividerState{Counter: d.divisor - 1}
	}
	return DividerState{Counter: s.Counter - 1}
}
