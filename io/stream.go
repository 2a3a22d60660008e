package io

import (
	"io"
)

// Stream bridges an io.Reader and io.Writer pair to the Channel
// contract, for wiring the machine to files or terminals. Unlike
// Buffer, Read may block on the underlying reader.
type Stream struct {
	Input  io.Reader
	Output io.Writer
}

var _ Channel = (*Stream)(nil)

// Read pulls up to count bytes from the input stream. A nil input
// always reads short.
func (st *Stream) Read(count int) (data []byte) {
	if st.Input == nil || count <= 0 {
		return
	}

	one := make([]byte, count)
	n, err := st.Input.Read(one)
	if err != nil && n == 0 {
		return
	}
	data = one[:n]

	return
}

// Write pushes data to the output stream. Write errors are dropped,
// as the channel contract is total.
func (st *Stream) Write(data []byte) {
	if st.Output == nil || data == nil {
		return
	}

	st.Output.Write(data)
}

// Clear is not possible on a stream.
func (st *Stream) Clear() {
}
