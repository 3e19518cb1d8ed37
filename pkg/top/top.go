// Package top assembles the board design: a UART transmitter sending a
// fixed message, a synchronized serial input and two activity LEDs.
package top

import (
	"github.com/robotalks/uartsim/pkg/blink"
	"github.com/robotalks/uartsim/pkg/cdc"
	"github.com/robotalks/uartsim/pkg/platform"
	"github.com/robotalks/uartsim/pkg/rtl"
	"github.com/robotalks/uartsim/pkg/uart"
)

// NumLEDs is the number of user LEDs driven by the design.
const NumLEDs = 5

// LEDs driven by activity.
const (
	LEDTX = 3
	LEDRX = 4
)

// Params are the design parameters once the platform is resolved.
type Params struct {
	Baud        float64
	Message     []byte
	TXBlinkRate float64
	RXBlinkRate float64
}

// State is the registered state of the whole design.
type State struct {
	TX      uart.TransmitterState
	RX      cdc.SynchronizerState
	TXBlink blink.State
	RXBlink blink.State
	// RXRaw is the input sampled on the last edge.
	RXRaw bool
}

// Snapshot is every observable signal during one cycle.
type Snapshot struct {
	Cycle      uint64
	Tick       bool
	TX         bool
	RXRaw      bool
	RX         bool
	LEDs       [NumLEDs]bool
	State      uart.ProtocolState
	Index      int
	ShiftIndex uint8
	Divider    uint64
}

// Top is the design.
type Top struct {
	Platform    platform.Platform
	Transmitter *uart.Transmitter
	RXSync      *cdc.Synchronizer
	TXBlink     *blink.Blink
	RXBlink     *blink.Blink

	state State
	cycle uint64
}

// RequiredLines lists the lines the design must be bound to.
func RequiredLines() []platform.Line {
	lines := []platform.Line{platform.LineClock, platform.LineSerialTX, platform.LineSerialRX}
	for i := 0; i < NumLEDs; i++ {
		lines = append(lines, platform.UserLED(i))
	}
	return lines
}

// New creates the design on a platform.
func New(p platform.Platform, params Params) (*Top, error) {
	if err := p.Pins.Require(RequiredLines()...); err != nil {
		return nil, err
	}
	tx, err := uart.NewTransmitter(p.Clock, params.Baud, params.Message)
	if err != nil {
		return nil, err
	}
	t := &Top{
		Platform:    p,
		Transmitter: tx,
		RXSync:      cdc.NewSynchronizer(cdc.Idle),
	}
	if t.TXBlink, err = blink.New(p.Clock, params.TXBlinkRate); err != nil {
		return nil, err
	}
	if t.RXBlink, err = blink.New(p.Clock, params.RXBlinkRate); err != nil {
		return nil, err
	}
	t.Reset()
	return t, nil
}

// Reset puts the design back to its power-on state.
func (t *Top) Reset() {
	t.Transmitter.Reset()
	t.state = State{
		TX:      t.Transmitter.State(),
		RX:      t.RXSync.Reset(),
		TXBlink: t.TXBlink.Reset(),
		RXBlink: t.RXBlink.Reset(),
		RXRaw:   cdc.Idle,
	}
	t.cycle = 0
}

// Clock gets the driving clock.
func (t *Top) Clock() rtl.Clock {
	return t.Platform.Clock
}

// Divisor gets the number of cycles per bit.
func (t *Top) Divisor() uint64 {
	return t.Transmitter.Divider.Divisor()
}

// Message gets the transmitted message.
func (t *Top) Message() []byte {
	return t.Transmitter.Sequencer.Message()
}

// State gets the registered state.
func (t *Top) State() State {
	return t.state
}

// Cycle is the number of edges simulated since reset.
func (t *Top) Cycle() uint64 {
	return t.cycle
}

// Finished indicates the message has been fully transmitted.
func (t *Top) Finished() bool {
	return t.Transmitter.Sequencer.Finished(t.state.TX.Sequencer)
}

// Step advances one driving-clock edge with the raw serial input level
// and returns the snapshot of the following cycle.
func (t *Top) Step(rxRaw bool) Snapshot {
	s := t.state
	t.state = State{
		TX:      t.Transmitter.Next(s.TX),
		RX:      t.RXSync.Next(s.RX, rxRaw),
		TXBlink: t.TXBlink.Next(s.TXBlink, !s.TX.Shifter.Line),
		RXBlink: t.RXBlink.Next(s.RXBlink, !t.RXSync.Output(s.RX)),
		RXRaw:   rxRaw,
	}
	t.cycle++
	return t.Snapshot()
}

// Snapshot gets the signals of the current cycle.
func (t *Top) Snapshot() Snapshot {
	s := &t.state
	snap := Snapshot{
		Cycle:      t.cycle,
		Tick:       t.Transmitter.Divider.Tick(s.TX.Divider),
		TX:         s.TX.Shifter.Line,
		RXRaw:      s.RXRaw,
		RX:         t.RXSync.Output(s.RX),
		State:      s.TX.Sequencer.State,
		Index:      s.TX.Sequencer.Index,
		ShiftIndex: s.TX.Shifter.Index,
		Divider:    s.TX.Divider.Counter,
	}
	snap.LEDs[LEDTX] = t.TXBlink.LED(s.TXBlink)
	snap.LEDs[LEDRX] = t.RXBlink.LED(s.RXBlink)
	return snap
}
