package sim

import "github.com/robotalks/uartsim/pkg/top"

// Caster casts samples to multiple listeners.
type Caster struct {
	listeners []Listener
}

// Subscribe adds a listener.
func (c *Caster) Subscribe(ln Listener) {
	c.listeners = append(c.listeners, ln)
}

// Sample implements Listener. It stops at the first failing listener.
func (c *Caster) Sample(snap top.Snapshot) error {
	for _, ln := range c.listeners {
		if err := ln.Sample(snap); err != nil {
			return err
		}
	}
	return nil
}
