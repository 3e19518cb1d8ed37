// Package cdc provides clock domain crossing primitives.
package cdc

// Idle is the UART idle line level, the usual reset value for serial inputs.
const Idle = true

// SynchronizerState holds the two chained registers.
type SynchronizerState struct {
	Stage1 bool
	Stage2 bool
}

// Synchronizer samples an asynchronous input through two registers so the
// synchronous side only observes the second stage.
type Synchronizer struct {
	reset bool
}

// NewSynchronizer creates a Synchronizer with both stages reset to reset.
func NewSynchronizer(reset bool) *Synchronizer {
	return &Synchronizer{reset: reset}
}

// ResetValue gets the configured reset level.
func (s *Synchronizer) ResetValue() bool {
	return s.reset
}

// Reset returns the power-on state.
func (s *Synchronizer) Reset() SynchronizerState {
	return SynchronizerState{Stage1: s.reset, Stage2: s.reset}
}

// Next shifts the raw input into the pipeline.
func (s *Synchronizer) Next(st SynchronizerState, in bool) SynchronizerState {
	return SynchronizerState{Stage1: in, Stage2: st.Stage1}
}

// Output is the synchronized value.
func (s *Synchronizer) Output(st SynchronizerState) bool {
	return st.Stage2
}
