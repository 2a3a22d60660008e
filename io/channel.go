// Package io provides character channel implementations for the cellvm
// interpreter. A channel is an ordered byte buffer between the machine
// and the outside world: the interpreter reads program input from one
// channel and writes program output to another.
package io

// Channel defines the interface for all I/O channels in the cellvm system.
// Channels operate at the byte level and support removal from the head,
// appending to the tail, and a full clear. All operations are total.
type Channel interface {
	// Read removes and returns up to count bytes from the head of the
	// channel. A short (or empty) result means the channel held fewer
	// bytes than requested.
	Read(count int) []byte
	// Write appends data to the tail of the channel. A nil data is a no-op.
	Write(data []byte)
	// Clear resets the channel to empty.
	Clear()
}
