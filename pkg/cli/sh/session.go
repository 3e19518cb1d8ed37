package sh

import (
	"bytes"
	"context"
	"fmt"

	"github.com/robotalks/uartsim/pkg/events"
	"github.com/robotalks/uartsim/pkg/monitor"
	"github.com/robotalks/uartsim/pkg/sim"
	"github.com/robotalks/uartsim/pkg/top"
)

// MaxRunCycles bounds a single run command.
const MaxRunCycles uint64 = 1 << 26

// Session is a local simulation driven by shell commands.
type Session struct {
	Top      *top.Top
	Sim      *sim.Sim
	Monitor  *monitor.Monitor
	Recorder *monitor.Recorder
}

// Status summarizes the current cycle.
type Status struct {
	Cycle      uint64            `json:"cycle"`
	State      string            `json:"state"`
	Index      int               `json:"index"`
	ShiftIndex uint8             `json:"shift_index"`
	Divider    uint64            `json:"divider"`
	TX         bool              `json:"tx"`
	RX         bool              `json:"rx"`
	LEDs       [top.NumLEDs]bool `json:"leds"`
	Finished   bool              `json:"finished"`
	Decoded    int               `json:"decoded"`
}

func level(b bool) int {
	if b {
		return 1
	}
	return 0
}

// String implements fmt.Stringer.
func (s Status) String() string {
	var w bytes.Buffer
	fmt.Fprintf(&w, "cycle %d %s index=%d shift=%d timer=%d tx=%d rx=%d leds=",
		s.Cycle, s.State, s.Index, s.ShiftIndex, s.Divider, level(s.TX), level(s.RX))
	for _, on := range s.LEDs {
		fmt.Fprintf(&w, "%d", level(on))
	}
	fmt.Fprintf(&w, " decoded=%d", s.Decoded)
	if s.Finished {
		w.WriteString(" finished")
	}
	return w.String()
}

// NewSession creates a Session.
func NewSession(topConf *top.Config, simConf *sim.Config) (*Session, error) {
	design, err := topConf.NewTop()
	if err != nil {
		return nil, err
	}
	s, err := simConf.NewSim(design)
	if err != nil {
		return nil, err
	}
	sess := &Session{Top: design, Sim: s, Recorder: &monitor.Recorder{}}
	sess.Monitor = monitor.ForTop(design, sess.Recorder)
	s.Subscribe(sess.Monitor)
	return sess, nil
}

// Status gets the status of the current cycle.
func (s *Session) Status() Status {
	snap := s.Sim.Last()
	return Status{
		Cycle:      snap.Cycle,
		State:      snap.State.String(),
		Index:      snap.Index,
		ShiftIndex: snap.ShiftIndex,
		Divider:    snap.Divider,
		TX:         snap.TX,
		RX:         snap.RX,
		LEDs:       snap.LEDs,
		Finished:   s.Sim.Finished(),
		Decoded:    s.Monitor.Decoded(),
	}
}

// Step advances n cycles.
func (s *Session) Step(n uint64) (Status, error) {
	if n > MaxRunCycles {
		return s.Status(), fmt.Errorf("at most %d cycles per run", MaxRunCycles)
	}
	_, err := s.Sim.Run(context.Background(), n)
	return s.Status(), err
}

// RunUntilDone runs until the message is sent and the last stop bit has
// elapsed.
func (s *Session) RunUntilDone() (Status, error) {
	_, err := s.Sim.RunUntilDone(context.Background(), MaxRunCycles)
	return s.Status(), err
}

// Reset restarts the simulation from power-on.
func (s *Session) Reset() Status {
	s.Sim.Reset()
	s.Monitor.Reset()
	s.Recorder.Clear()
	return s.Status()
}

// Bytes gets the bytes decoded since reset.
func (s *Session) Bytes() []byte {
	return s.Recorder.Bytes()
}

// Events gets the events since reset.
func (s *Session) Events() []events.Event {
	return s.Recorder.Events()
}
