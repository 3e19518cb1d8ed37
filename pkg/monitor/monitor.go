// Package monitor observes simulated cycles and publishes what an
// external observer of the board would notice: bytes on the serial line,
// LEDs turning on and off, and the end of the transmission.
package monitor

import (
	"sync"

	"github.com/golang/glog"

	"github.com/robotalks/uartsim/pkg/events"
	fx "github.com/robotalks/uartsim/pkg/framework"
	pb "github.com/robotalks/uartsim/pkg/proto/uartsim/v1"
	"github.com/robotalks/uartsim/pkg/top"
	"github.com/robotalks/uartsim/pkg/uart"
)

// Sink receives events.
type Sink interface {
	Publish(events.Event) error
}

// SinkFunc is func form of Sink.
type SinkFunc func(events.Event) error

// Publish implements Sink.
func (f SinkFunc) Publish(ev events.Event) error {
	return f(ev)
}

// Monitor is a sim.Listener turning snapshots into events.
type Monitor struct {
	Sinks []Sink

	decoder *uart.Decoder
	msgLen  int

	started bool
	base    uint64
	leds    [top.NumLEDs]bool
	decoded uint32
	done    bool
}

// New creates a Monitor for a design transmitting msgLen bytes with a
// bit period of divisor cycles.
func New(divisor uint64, msgLen int, sinks ...Sink) *Monitor {
	return &Monitor{
		Sinks:   sinks,
		decoder: uart.NewDecoder(divisor),
		msgLen:  msgLen,
	}
}

// ForTop creates a Monitor matching the design.
func ForTop(t *top.Top, sinks ...Sink) *Monitor {
	return New(t.Divisor(), len(t.Message()), sinks...)
}

// AddSink adds a sink.
func (m *Monitor) AddSink(sink Sink) *Monitor {
	m.Sinks = append(m.Sinks, sink)
	return m
}

// Reset forgets everything observed.
func (m *Monitor) Reset() {
	m.decoder.Reset()
	m.started, m.base, m.decoded, m.done = false, 0, 0, false
	m.leds = [top.NumLEDs]bool{}
}

// Decoded is the number of frames observed since reset.
func (m *Monitor) Decoded() int {
	return int(m.decoded)
}

// Busy indicates a frame is being decoded.
func (m *Monitor) Busy() bool {
	return m.decoder.Busy()
}

// Done indicates the transmission has completed.
func (m *Monitor) Done() bool {
	return m.done
}

// Sample implements sim.Listener. A cycle 0 snapshot after the first
// restarts the observation.
func (m *Monitor) Sample(snap top.Snapshot) error {
	if m.started && snap.Cycle == 0 {
		m.Reset()
	}
	if !m.started {
		m.started, m.base = true, snap.Cycle
	}
	var errs fx.AggregatedError

	for i, on := range snap.LEDs {
		if on != m.leds[i] {
			m.leds[i] = on
			errs.Add(m.publish(&events.LedChanged{LedChanged: pb.LedChanged{
				Cycle: snap.Cycle,
				Led:   uint32(i),
				On:    on,
			}}))
		}
	}

	if res, ok := m.decoder.Sample(snap.TX); ok {
		errs.Add(m.publish(&events.ByteDecoded{ByteDecoded: pb.ByteDecoded{
			Cycle:        m.base + res.Cycle,
			Value:        uint32(res.Byte),
			FramingError: res.FramingError,
			Index:        m.decoded,
		}}))
		m.decoded++
	}

	if !m.done && snap.State == uart.SendDone && snap.Index >= m.msgLen-1 {
		m.done = true
		errs.Add(m.publish(&events.TransmitDone{TransmitDone: pb.TransmitDone{
			Cycle: snap.Cycle,
			Bytes: uint32(m.msgLen),
		}}))
	}
	return errs.Aggregate()
}

func (m *Monitor) publish(ev events.Event) error {
	if glog.V(2) {
		if d, ok := ev.(events.Describer); ok {
			glog.Info(d.Describe())
		}
	}
	var errs fx.AggregatedError
	for _, sink := range m.Sinks {
		errs.Add(sink.Publish(ev))
	}
	return errs.Aggregate()
}

// Recorder is a Sink keeping every event in memory.
type Recorder struct {
	lock   sync.RWMutex
	events []events.Event
}

// Publish implements Sink.
func (r *Recorder) Publish(ev events.Event) error {
	r.lock.Lock()
	r.events = append(r.events, ev)
	r.lock.Unlock()
	return nil
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []events.Event {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return append([]events.Event(nil), r.events...)
}

// Bytes returns the decoded bytes that had no framing error.
func (r *Recorder) Bytes() []byte {
	var data []byte
	for _, ev := range r.Events() {
		if b, ok := ev.(*events.ByteDecoded); ok && !b.FramingError {
			data = append(data, b.Byte())
		}
	}
	return data
}

// LedChanges returns the LED events.
func (r *Recorder) LedChanges() []*events.LedChanged {
	var changes []*events.LedChanged
	for _, ev := range r.Events() {
		if l, ok := ev.(*events.LedChanged); ok {
			changes = append(changes, l)
		}
	}
	return changes
}

// Clear drops every recorded event.
func (r *Recorder) Clear() {
	r.lock.Lock()
	r.events = nil
	r.lock.Unlock()
}
