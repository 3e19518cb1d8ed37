// Package uart models the clocked UART transmit engine: the clock divider
// deriving the baud tick, the frame shifter serializing one byte as 8-N-1
// and the sequencer walking a fixed message. Decoder is the observing side
// used to verify what the engine puts on the line.
package uart
