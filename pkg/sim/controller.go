package sim

import (
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/uartsim/pkg/framework"
)

// Controller paces a Sim in wall-clock time inside a framework.Loop.
type Controller struct {
	Sim *Sim
	// Speed is simulated seconds per wall second.
	Speed float64
	// MaxCycles stops the loop once reached, 0 for unlimited.
	MaxCycles uint64
	// StopWhenDone stops the loop once the design is drained.
	StopWhenDone bool

	startTime time.Time
	simulated uint64
}

// NewController creates a Controller running at real speed.
func NewController(s *Sim) *Controller {
	return &Controller{Sim: s, Speed: 1}
}

// AddToLoop implements LoopAdder.
func (c *Controller) AddToLoop(l *fx.Loop) {
	l.AddController(fx.PrLvSimulate, c)
}

// Due computes how many cycles should have run at now.
func (c *Controller) Due(now time.Time) uint64 {
	if c.startTime.IsZero() {
		c.startTime = now
	}
	elapsed := time.Duration(float64(now.Sub(c.startTime)) * c.Speed)
	due := c.Sim.Design.Clock().Cycles(elapsed)
	if c.MaxCycles > 0 && due > c.MaxCycles {
		due = c.MaxCycles
	}
	return due
}

// Control implements Controller.
func (c *Controller) Control(cc fx.ControlContext) error {
	if due := c.Due(cc.Time()); due > c.simulated {
		n, err := c.Sim.Run(cc.Context(), due-c.simulated)
		c.simulated += n
		if err != nil {
			cc.Stop()
			return err
		}
	}
	if c.StopWhenDone && c.Sim.Drained() {
		glog.Infof("transmission drained at cycle %d", c.Sim.Cycle())
		cc.Stop()
	} else if c.MaxCycles > 0 && c.simulated >= c.MaxCycles {
		glog.Infof("reached %d cycles", c.simulated)
		cc.Stop()
	}
	return nil
}
