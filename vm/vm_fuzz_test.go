package vm

import (
	"errors"
	"strings"
	"testing"

	"github.com/ezrec/cellvm/io"
	"github.com/stretchr/testify/assert"
)

func FuzzVm(f *testing.F) {
	f.Add("+++++[->+++<]>.")
	f.Add("++++++++[>++++++++<-]>.")
	f.Add(",[.,]")
	f.Add("[[..],,]")
	f.Add("][")
	f.Add("[[]")
	f.Add("<<<+>>>-")
	f.Add("no code at all")

	f.Fuzz(func(t *testing.T, script string) {
		assert := assert.New(t)

		v := &Vm{
			Input:  &io.Buffer{Data: []byte("fuzz input")},
			Output: &io.Buffer{},
		}

		err := v.SetScript(script)
		if err != nil {
			// Rejection must be one of the two validation errors,
			// and must leave the machine untouched.
			assert.True(errors.Is(err, ErrUnmatchedOpen) ||
				errors.Is(err, ErrUnmatchedClose))
			assert.Equal("", v.Script)
			assert.Equal(0, v.Cycles)
			return
		}

		opens := strings.Count(script, "[")
		var cycles int
		for range 4096 {
			done, err := v.Step()
			assert.NoError(err)
			if done {
				break
			}

			assert.LessOrEqual(v.Iptr, len(script))
			assert.GreaterOrEqual(v.Cycles, cycles)
			assert.LessOrEqual(v.Loops.Depth(), opens)
			cycles = v.Cycles
		}
	})
}
