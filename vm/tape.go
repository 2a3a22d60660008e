package vm

// Tape is the cell memory: a sparse mapping from signed cell index to
// an 8-bit value. An unvisited cell reads as zero, and is materialized
// on first write. Indices are unbounded in both directions; a negative
// index is not an error.
type Tape struct {
	Cell map[int]uint8
}

// Reset discards all cells.
func (tape *Tape) Reset() {
	tape.Cell = map[int]uint8{}
}

// Get returns the value of the cell at index.
func (tape *Tape) Get(index int) (value uint8) {
	value = tape.Cell[index]

	return
}

// Set writes the value of the cell at index.
func (tape *Tape) Set(index int, value uint8) {
	if tape.Cell == nil {
		tape.Reset()
	}

	tape.Cell[index] = value
}

// Inc increments the cell at index, wrapping 255 to 0.
func (tape *Tape) Inc(index int) {
	tape.Set(index, tape.Get(index)+1)
}

// Dec decrements the cell at index, wrapping 0 to 255.
func (tape *Tape) Dec(index int) {
	tape.Set(index, tape.Get(index)-1)
}
