package io

// Buffer implements an in-memory FIFO channel. Bytes written to the tail
// are retained until read from the head or cleared.
type Buffer struct {
	Data []byte
}

var _ Channel = (*Buffer)(nil)

// Read removes up to count bytes from the head of the buffer.
// The returned slice does not alias the buffer.
func (buf *Buffer) Read(count int) (data []byte) {
	if count > len(buf.Data) {
		count = len(buf.Data)
	}
	if count <= 0 {
		return
	}

	data = make([]byte, count)
	copy(data, buf.Data[:count])
	buf.Data = buf.Data[count:]

	return
}

// Write appends data to the tail of the buffer. The append rebinds
// Data, so the written bytes are retained, not discarded.
func (buf *Buffer) Write(data []byte) {
	if data == nil {
		return
	}

	buf.Data = append(buf.Data, data...)
}

// Clear resets the buffer to empty.
func (buf *Buffer) Clear() {
	buf.Data = nil
}

// Len returns the number of buffered bytes.
func (buf *Buffer) Len() int {
	return len(buf.Data)
}
