package sim

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/uartsim/pkg/top"
	"github.com/robotalks/uartsim/pkg/uart"
)

func newTestSim(t *testing.T, conf *Config) *Sim {
	design, err := top.NewConfig().NewTop()
	require.NoError(t, err)
	s, err := conf.NewSim(design)
	require.NoError(t, err)
	return s
}

func TestSimRun(t *testing.T) {
	s := newTestSim(t, NewConfig())
	var cycles []uint64
	s.Subscribe(SampleFunc(func(snap top.Snapshot) error {
		cycles = append(cycles, snap.Cycle)
		return nil
	}))
	n, err := s.Run(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, uint64(10), n)
	require.Equal(t, []uint64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, cycles)
	require.Equal(t, uint64(10), s.Cycle())

	s.Reset()
	cycles = nil
	_, err = s.Run(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 1}, cycles)
}

func TestSimRunUntilDone(t *testing.T) {
	s := newTestSim(t, NewConfig())
	dec := uart.NewDecoder(104)
	var got []byte
	s.Subscribe(SampleFunc(func(snap top.Snapshot) error {
		if d, ok := dec.Sample(snap.TX); ok {
			got = append(got, d.Byte)
		}
		return nil
	}))
	n, err := s.RunUntilDone(context.Background(), 1<<20)
	require.NoError(t, err)
	require.Equal(t, uint64(70*104+1+104), n)
	require.True(t, s.Finished())
	require.True(t, s.Drained())
	require.Equal(t, []byte("henlo\r\n"), got)
	require.True(t, s.Last().TX)

	n, err = s.RunUntilDone(context.Background(), 1<<20)
	require.NoError(t, err)
	require.Zero(t, n)

	s.Reset()
	require.False(t, s.Drained())
}

func TestSimDrainedAfterStopBit(t *testing.T) {
	s := newTestSim(t, NewConfig())
	_, err := s.Run(context.Background(), 70*104+1)
	require.NoError(t, err)
	require.True(t, s.Finished())
	require.False(t, s.Drained())
	_, err = s.Run(context.Background(), 103)
	require.NoError(t, err)
	require.False(t, s.Drained())
	_, err = s.Step()
	require.NoError(t, err)
	require.True(t, s.Drained())
}

func TestSimLoopback(t *testing.T) {
	conf := NewConfig()
	conf.Input = InputLoopback
	s := newTestSim(t, conf)
	rxLit := false
	s.Subscribe(SampleFunc(func(snap top.Snapshot) error {
		rxLit = rxLit || snap.LEDs[top.LEDRX]
		return nil
	}))
	_, err := s.Run(context.Background(), DefaultCycles)
	require.NoError(t, err)
	require.True(t, rxLit)
}

func TestSimListenerError(t *testing.T) {
	s := newTestSim(t, NewConfig())
	fail := errors.New("fail")
	s.Subscribe(SampleFunc(func(snap top.Snapshot) error {
		if snap.Cycle == 3 {
			return fail
		}
		return nil
	}))
	n, err := s.Run(context.Background(), 10)
	require.Equal(t, fail, err)
	require.Equal(t, uint64(2), n)
}

func TestSimCanceled(t *testing.T) {
	s := newTestSim(t, NewConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, err := s.Run(ctx, 10)
	require.Equal(t, context.Canceled, err)
	require.Equal(t, uint64(0), n)
}

func TestConfigInput(t *testing.T) {
	conf := NewConfig()
	conf.Input = "noise"
	_, err := conf.Stimulus()
	require.Error(t, err)
}

type testControlContext struct {
	now     time.Time
	stopped bool
}

func (c *testControlContext) Time() time.Time          { return c.now }
func (c *testControlContext) Context() context.Context { return context.Background() }
func (c *testControlContext) Iteration() uint64        { return 0 }
func (c *testControlContext) PriorityLevel() int       { return 0 }
func (c *testControlContext) Stop()                    { c.stopped = true }

func TestController(t *testing.T) {
	s := newTestSim(t, NewConfig())
	ctl := NewController(s)
	ctl.Speed = 0.001
	ctl.StopWhenDone = true

	base := time.Unix(1000, 0)
	cc := &testControlContext{now: base}
	require.NoError(t, ctl.Control(cc))
	require.Equal(t, uint64(0), s.Cycle())

	// 1s wall at 1/1000 speed is 1ms simulated: 12000 cycles.
	cc.now = base.Add(time.Second)
	require.NoError(t, ctl.Control(cc))
	require.InDelta(t, 12000, float64(s.Cycle()), 1)
	require.True(t, s.Finished())
	require.True(t, cc.stopped)
}

func TestControllerWaitsForStopBit(t *testing.T) {
	s := newTestSim(t, NewConfig())
	ctl := NewController(s)
	ctl.Speed = 0.001
	ctl.StopWhenDone = true

	base := time.Unix(1000, 0)
	cc := &testControlContext{now: base}
	require.NoError(t, ctl.Control(cc))
	// 610us simulated: finished, the last stop bit is still on the line.
	cc.now = base.Add(610 * time.Millisecond)
	require.NoError(t, ctl.Control(cc))
	require.True(t, s.Finished())
	require.False(t, cc.stopped)

	cc.now = base.Add(700 * time.Millisecond)
	require.NoError(t, ctl.Control(cc))
	require.True(t, s.Drained())
	require.True(t, cc.stopped)
}

func TestControllerMaxCycles(t *testing.T) {
	s := newTestSim(t, NewConfig())
	ctl := NewController(s)
	ctl.MaxCycles = 500
	base := time.Unix(1000, 0)
	cc := &testControlContext{now: base}
	require.NoError(t, ctl.Control(cc))
	cc.now = base.Add(time.Second)
	require.NoError(t, ctl.Control(cc))
	require.Equal(t, uint64(500), s.Cycle())
	require.True(t, cc.stopped)
}
