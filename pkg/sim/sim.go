package sim

import (
	"context"

	"github.com/golang/glog"

	"github.com/robotalks/uartsim/pkg/top"
)

// cycles between context checks.
const checkInterval = 4096

// Sim drives a Design.
type Sim struct {
	Design   Design
	Stimulus Stimulus

	Caster

	started bool
	last    top.Snapshot
	// cycle at which Finished was first observed.
	finishedAt uint64
	finished   bool
}

// New creates a Sim with the serial input idle.
func New(d Design) *Sim {
	s := &Sim{Design: d, Stimulus: IdleInput, last: d.Snapshot()}
	s.observeFinished()
	return s
}

// Subscribe is a helper to add a listener.
func (s *Sim) Subscribe(ln Listener) *Sim {
	s.Caster.Subscribe(ln)
	return s
}

// Last gets the snapshot of the current cycle.
func (s *Sim) Last() top.Snapshot {
	return s.last
}

// Cycle is the current cycle number.
func (s *Sim) Cycle() uint64 {
	return s.last.Cycle
}

// Finished indicates the design has nothing more to do.
func (s *Sim) Finished() bool {
	return s.Design.Finished()
}

// Start emits the power-on snapshot once.
func (s *Sim) Start() error {
	if s.started {
		return nil
	}
	s.started = true
	return s.Caster.Sample(s.last)
}

// Drained indicates the design is finished and the final stop bit has
// been held on the line for a whole bit period.
func (s *Sim) Drained() bool {
	return s.finished && s.last.Cycle-s.finishedAt >= s.Design.Divisor()
}

// Reset puts the design back to power-on; the next run emits cycle 0
// again.
func (s *Sim) Reset() {
	s.Design.Reset()
	s.last, s.started = s.Design.Snapshot(), false
	s.finished, s.finishedAt = false, 0
	s.observeFinished()
}

func (s *Sim) observeFinished() {
	if !s.finished && s.Design.Finished() {
		s.finished, s.finishedAt = true, s.last.Cycle
	}
}

// Step advances one edge.
func (s *Sim) Step() (top.Snapshot, error) {
	if err := s.Start(); err != nil {
		return s.last, err
	}
	s.last = s.Design.Step(s.Stimulus.RX(s.last))
	s.observeFinished()
	return s.last, s.Caster.Sample(s.last)
}

// Run advances up to cycles edges and returns how many were simulated.
func (s *Sim) Run(ctx context.Context, cycles uint64) (uint64, error) {
	return s.run(ctx, cycles, false)
}

// RunUntilDone advances until the design is drained, at most max edges.
func (s *Sim) RunUntilDone(ctx context.Context, max uint64) (uint64, error) {
	return s.run(ctx, max, true)
}

func (s *Sim) run(ctx context.Context, max uint64, untilDone bool) (n uint64, err error) {
	for ; n < max; n++ {
		if untilDone && s.Drained() {
			break
		}
		if n%checkInterval == 0 {
			if err = ctx.Err(); err != nil {
				return
			}
		}
		if _, err = s.Step(); err != nil {
			return
		}
	}
	glog.V(2).Infof("simulated %d cycles, now at cycle %d", n, s.last.Cycle)
	return
}
