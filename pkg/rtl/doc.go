// Package rtl provides the register-transfer level primitives shared by
// all clocked components: the driving clock model, divisor computation,
// register widths and configuration errors.
//
// Components built on rtl keep their configuration immutable after
// construction and expose pure transition functions over separate state
// values. A composite computes every next state from the pre-edge
// snapshot and commits them together, which gives standard
// register-transfer semantics on each driving-clock edge.
package rtl
