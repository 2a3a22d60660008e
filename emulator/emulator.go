// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"iter"
	"maps"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/cellvm/internal"
	"github.com/ezrec/cellvm/io"
	"github.com/ezrec/cellvm/vm"
)

// Emulator state. Vm + IO channels + driver policy.
type Emulator struct {
	Verbose bool // If set, enables verbose logging.
	*vm.Vm       // Reference to the machine simulation.

	Input  io.Buffer // Default input channel.
	Output io.Buffer // Default output channel.

	Limit int // Maximum cycles per Run; 0 means unlimited.

	breakExpr string
}

// NewEmulator creates a new emulator with buffer channels attached.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Vm: &vm.Vm{},
	}

	emu.Vm.Input = &emu.Input
	emu.Vm.Output = &emu.Output

	return
}

// Vars returns an iterator over all of the observable driver state:
// the machine state plus the channel depths.
func (emu *Emulator) Vars() iter.Seq2[string, int] {
	return internal.IterSeq2Concat(emu.Vm.Vars(),
		maps.All(map[string]int{
			"input":  emu.Input.Len(),
			"output": emu.Output.Len(),
		}),
	)
}

// BreakWhen installs a break expression, evaluated over Vars() before
// every step; Run stops when it becomes true. An empty expression
// removes the break. The expression is parsed now so an invalid one
// is rejected before the machine runs.
func (emu *Emulator) BreakWhen(expr string) (err error) {
	if expr == "" {
		emu.breakExpr = ""
		return
	}

	opts := syntax.FileOptions{}
	_, err = opts.Parse("break", "rc="+expr+"\n", 0)
	if err != nil {
		err = errors.Join(ErrBreakExpr, err)
		return
	}

	emu.breakExpr = expr

	return
}

// breakNow evaluates the break expression against the current state.
func (emu *Emulator) breakNow() (stop bool, err error) {
	if emu.breakExpr == "" {
		return
	}

	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, value := range emu.Vars() {
		pred[key] = starlark.MakeInt(value)
	}
	prog := "rc=" + emu.breakExpr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "break", prog, pred)
	if err != nil {
		err = errors.Join(ErrBreakExpr, err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrBreakExpr
		return
	}
	st_bool, ok := st_rc.(starlark.Bool)
	if !ok {
		err = ErrBreakExpr
		return
	}
	stop = bool(st_bool)

	return
}

// Step performs a single step of the emulator.
func (emu *Emulator) Step() (done bool, err error) {
	// Set machine verbosity
	emu.Vm.Verbose = emu.Verbose

	iptr := emu.Vm.Iptr
	defer func() {
		if err != nil {
			err = &ErrRuntime{Iptr: iptr, Err: err}
		}
	}()

	done, err = emu.Vm.Step()

	return
}

// Run steps the machine until it halts. A break expression stops the
// run early with halted false; exceeding the cycle limit aborts with
// ErrCycleLimit.
func (emu *Emulator) Run() (halted bool, err error) {
	for {
		var stop bool
		stop, err = emu.breakNow()
		if err != nil || stop {
			return
		}

		var done bool
		done, err = emu.Step()
		if err != nil {
			return
		}
		if done {
			halted = true
			return
		}

		if emu.Limit != 0 && emu.Cycles >= emu.Limit {
			err = ErrCycleLimit
			return
		}
	}
}
