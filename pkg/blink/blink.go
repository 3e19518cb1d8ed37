// Package blink drives activity indicators.
package blink

import (
	"math"

	"github.com/robotalks/uartsim/pkg/rtl"
)

// State is the registered state of a Blink.
type State struct {
	Counter uint64
}

// Blink lights an indicator for about 1/rate seconds after the monitored
// signal was last asserted. Assertions while lit restart the period.
type Blink struct {
	width   uint
	ceiling uint64
}

// New creates a Blink for the given rate (1/seconds).
func New(clk rtl.Clock, rate float64) (*Blink, error) {
	if err := clk.Validate(); err != nil {
		return nil, err
	}
	if !(rate > 0) || math.IsInf(rate, 0) {
		return nil, rtl.Invalid("blink rate", "%v must be positive", rate)
	}
	cycles := math.Round(clk.Frequency() / rate)
	if cycles < 1 {
		return nil, rtl.Invalid("blink rate", "%v is faster than the driving clock", rate)
	}
	b := &Blink{width: 1}
	if c := uint64(cycles); c > 1 {
		b.width = rtl.BitsFor(c - 1)
	}
	b.ceiling = rtl.Mask(b.width)
	return b, nil
}

// Width is the counter width.
func (b *Blink) Width() uint {
	return b.width
}

// Ceiling is the value loaded on assertion.
func (b *Blink) Ceiling() uint64 {
	return b.ceiling
}

// Reset returns the power-on state with the indicator off.
func (b *Blink) Reset() State {
	return State{}
}

// Next computes the state after the edge.
func (b *Blink) Next(s State, sig bool) State {
	if sig {
		return State{Counter: b.ceiling}
	}
	if s.Counter > 0 {
		s.Counter--
	}
	return s
}

// LED is the most significant bit of the counter.
func (b *Blink) LED(s State) bool {
	return rtl.Bit(s.Counter, b.width-1)
}
