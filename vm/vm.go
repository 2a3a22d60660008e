package vm

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/cellvm/io"
)

// Channel is an I/O channel interface.
type Channel io.Channel

// Vm is the interpreter state machine. All state is exported so a
// driver can inspect the machine between steps.
type Vm struct {
	Verbose bool // Set to enable verbose logging.

	Script string // Currently loaded program text.

	Iptr   int   // Current instruction pointer.
	Dptr   int   // Current data pointer.
	Cycles int   // Count of executed non-comment instructions.
	Tape   Tape  // Cell memory.
	Loops  Stack // Positions of active loop open brackets.

	Input  Channel // Channel read by the ',' instruction.
	Output Channel // Channel written by the '.' instruction.
}

// Validate checks the bracket balance of a script with a single
// left-to-right pass. An open bracket must precede its close, and
// every bracket must pair; no position stack is needed until the
// script executes.
func Validate(script string) (err error) {
	var open int
	for pos := 0; pos < len(script); pos++ {
		switch Opcode(script[pos]) {
		case OP_LOOP_OPEN:
			open++
		case OP_LOOP_CLOSE:
			open--
			if open < 0 {
				err = ErrScript{Pos: pos, Err: ErrUnmatchedClose}
				return
			}
		}
	}
	if open != 0 {
		err = ErrScript{Pos: len(script), Err: ErrUnmatchedOpen}
	}

	return
}

// SetScript validates and installs a script. On success all mutable
// state is reset together: the tape is emptied, the pointers and cycle
// counter return to zero, and the loop stack is cleared. On failure
// the prior machine state is untouched.
func (vm *Vm) SetScript(script string) (err error) {
	err = Validate(script)
	if err != nil {
		return
	}

	vm.Script = script
	vm.Iptr = 0
	vm.Dptr = 0
	vm.Cycles = 0
	vm.Tape.Reset()
	vm.Loops.Reset()

	if vm.Verbose {
		log.Printf("vm: loaded %d character script", len(script))
	}

	return
}

// String returns the current machine state as a string.
func (vm *Vm) String() (text string) {
	regs := []string{
		"iptr",
		"dptr",
		"cell",
		"cycles",
		"loops",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "iptr":
			strval = fmt.Sprintf("%d", vm.Iptr)
		case "dptr":
			strval = fmt.Sprintf("%d", vm.Dptr)
		case "cell":
			strval = fmt.Sprintf("%d", vm.Tape.Get(vm.Dptr))
		case "cycles":
			strval = fmt.Sprintf("%d", vm.Cycles)
		case "loops":
			val, ok := vm.Loops.Peek()
			if ok {
				strval = fmt.Sprintf("%d (depth %d)", val, vm.Loops.Depth())
			} else {
				strval = "-"
			}
		}
		text += fmt.Sprintf("% 7s: %v\n", reg, strval)
	}

	return
}

// Vars returns an iterator over the observable machine state, for
// driver tooling such as break expressions.
func (vm *Vm) Vars() iter.Seq2[string, int] {
	return maps.All(map[string]int{
		"iptr":   vm.Iptr,
		"dptr":   vm.Dptr,
		"cell":   int(vm.Tape.Get(vm.Dptr)),
		"cycles": vm.Cycles,
		"depth":  vm.Loops.Depth(),
	})
}

// Step executes exactly one instruction. Once the instruction pointer
// passes the end of the script, Step reports done without changing any
// state. A comment character advances the instruction pointer but not
// the cycle counter; every recognized instruction advances both.
func (vm *Vm) Step() (done bool, err error) {
	if vm.Iptr >= len(vm.Script) {
		done = true
		return
	}

	op := Opcode(vm.Script[vm.Iptr])
	if !op.Valid() {
		vm.Iptr++
		return
	}

	if vm.Verbose {
		log.Printf("%04d: %v", vm.Iptr, op)
	}

	switch op {
	case OP_RIGHT:
		vm.Dptr++
	case OP_LEFT:
		vm.Dptr--
	case OP_INC:
		vm.Tape.Inc(vm.Dptr)
	case OP_DEC:
		vm.Tape.Dec(vm.Dptr)
	case OP_PUT:
		if vm.Output == nil {
			err = ErrChannelInvalid
			return
		}
		vm.Output.Write([]byte{vm.Tape.Get(vm.Dptr)})
	case OP_GET:
		if vm.Input == nil {
			err = ErrChannelInvalid
			return
		}
		// A short read stores zero, so input-driven loops terminate
		// once the channel drains.
		data := vm.Input.Read(1)
		var value uint8
		if len(data) > 0 {
			value = data[0]
		}
		vm.Tape.Set(vm.Dptr, value)
	case OP_LOOP_OPEN:
		if vm.Tape.Get(vm.Dptr) == 0 {
			vm.Iptr = vm.matchForward(vm.Iptr)
		} else {
			vm.Loops.Push(vm.Iptr)
		}
	case OP_LOOP_CLOSE:
		if vm.Tape.Get(vm.Dptr) != 0 {
			open, ok := vm.Loops.Peek()
			if !ok {
				panic(fmt.Sprintf("vm: close bracket at %d with no active loop", vm.Iptr))
			}
			// Repeat: the advance below lands just past the open bracket.
			vm.Iptr = open
		} else {
			vm.Loops.Pop()
		}
	}

	vm.Iptr++
	vm.Cycles++

	return
}

// matchForward scans for the close bracket matching the open bracket
// at pos, tracking nesting depth. Only reachable after Validate has
// accepted the script, so a missing match means validation and
// execution disagree on bracket pairing.
func (vm *Vm) matchForward(pos int) (match int) {
	var depth int
	for match = pos + 1; match < len(vm.Script); match++ {
		switch Opcode(vm.Script[match]) {
		case OP_LOOP_OPEN:
			depth++
		case OP_LOOP_CLOSE:
			if depth == 0 {
				return
			}
			depth--
		}
	}

	panic(fmt.Sprintf("vm: no close bracket matches open bracket at %d", pos))
}
