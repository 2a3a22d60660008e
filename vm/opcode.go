package vm

import (
	"fmt"
)

// Opcode is a single-character instruction.
type Opcode byte

const (
	OP_RIGHT      = Opcode('>') // Move the data pointer right.
	OP_LEFT       = Opcode('<') // Move the data pointer left.
	OP_INC        = Opcode('+') // Increment the current cell, 255 wraps to 0.
	OP_DEC        = Opcode('-') // Decrement the current cell, 0 wraps to 255.
	OP_PUT        = Opcode('.') // Write the current cell to the output channel.
	OP_GET        = Opcode(',') // Read the input channel into the current cell.
	OP_LOOP_OPEN  = Opcode('[') // Enter the loop, or skip it on a zero cell.
	OP_LOOP_CLOSE = Opcode(']') // Repeat the loop on a nonzero cell.
)

// Valid reports whether the character is one of the eight instructions.
// Any other character is a comment.
func (op Opcode) Valid() (ok bool) {
	switch op {
	case OP_RIGHT, OP_LEFT, OP_INC, OP_DEC,
		OP_PUT, OP_GET, OP_LOOP_OPEN, OP_LOOP_CLOSE:
		ok = true
	}

	return
}

// String returns the mnemonic for the opcode.
func (op Opcode) String() (text string) {
	switch op {
	case OP_RIGHT:
		text = "right"
	case OP_LEFT:
		text = "left"
	case OP_INC:
		text = "inc"
	case OP_DEC:
		text = "dec"
	case OP_PUT:
		text = "put"
	case OP_GET:
		text = "get"
	case OP_LOOP_OPEN:
		text = "open"
	case OP_LOOP_CLOSE:
		text = "close"
	default:
		text = fmt.Sprintf("comment '%c'", byte(op))
	}

	return
}
