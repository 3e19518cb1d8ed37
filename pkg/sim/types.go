// Package sim runs designs cycle by cycle and fans every cycle out to
// listeners, either as fast as possible or paced by a framework.Loop.
package sim

import (
	"github.com/robotalks/uartsim/pkg/rtl"
	"github.com/robotalks/uartsim/pkg/top"
)

// Design is a clocked design driven by the simulator.
type Design interface {
	Clock() rtl.Clock
	Reset()
	Step(rxRaw bool) top.Snapshot
	Snapshot() top.Snapshot
	Finished() bool
	// Divisor is the number of cycles per bit.
	Divisor() uint64
}

// Stimulus supplies the raw serial input of the next edge.
type Stimulus interface {
	RX(prev top.Snapshot) bool
}

// StimulusFunc is the func form of Stimulus.
type StimulusFunc func(top.Snapshot) bool

// RX implements Stimulus.
func (f StimulusFunc) RX(prev top.Snapshot) bool {
	return f(prev)
}

var (
	// IdleInput holds the serial input at the idle level.
	IdleInput = StimulusFunc(func(top.Snapshot) bool { return true })
	// Loopback feeds the transmitted line back into the input.
	Loopback = StimulusFunc(func(prev top.Snapshot) bool { return prev.TX })
)

// Listener observes the snapshot of every cycle, including the power-on
// cycle 0. An error stops the simulation.
type Listener interface {
	Sample(top.Snapshot) error
}

// SampleFunc is the func form of Listener.
type SampleFunc func(top.Snapshot) error

// Sample implements Listener.
func (f SampleFunc) Sample(snap top.Snapshot) error {
	return f(snap)
}

// Dumper consumes raw probe values, e.g. a waveform writer.
type Dumper interface {
	Dump(cycle uint64, values []uint64) error
}

// DumpTo adapts a Dumper as a Listener.
func DumpTo(d Dumper) Listener {
	return SampleFunc(func(snap top.Snapshot) error {
		return d.Dump(snap.Cycle, snap.Values())
	})
}
