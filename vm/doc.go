// Package vm implements the interpreter core for the cellvm machine.
//
// The machine consists of an instruction pointer into an immutable
// script, a data pointer into a sparse cell tape unbounded in both
// directions, a stack of active loop positions, and a cycle counter.
// A driver advances the machine one instruction at a time with Step;
// character I/O flows through the input and output channels on the
// ',' and '.' instructions.
package vm
