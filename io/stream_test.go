package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStream_Read(t *testing.T) {
	assert := assert.New(t)

	st := &Stream{Input: strings.NewReader("abc")}

	data := st.Read(2)
	assert.Equal([]byte("ab"), data)

	data = st.Read(2)
	assert.Equal([]byte("c"), data)

	// At end of stream reads are empty.
	data = st.Read(2)
	assert.Empty(data)
}

func TestStream_Read_NilInput(t *testing.T) {
	assert := assert.New(t)

	st := &Stream{}
	assert.Empty(st.Read(1))
}

func TestStream_Write(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	st := &Stream{Output: output}

	st.Write([]byte("he"))
	st.Write([]byte("llo"))
	assert.Equal("hello", output.String())

	st.Write(nil)
	assert.Equal("hello", output.String())
}

func TestStream_Write_NilOutput(t *testing.T) {
	st := &Stream{}
	st.Write([]byte("dropped"))
}

func TestStream_Clear(t *testing.T) {
	assert := assert.New(t)

	st := &Stream{Input: strings.NewReader("abc")}
	st.Clear()

	// Clear cannot rewind a stream; the data is still there.
	assert.Equal([]byte("a"), st.Read(1))
}

func TestStream_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	st := &Stream{
		Input:  strings.NewReader("round trip"),
		Output: output,
	}

	for {
		data := st.Read(4)
		if len(data) == 0 {
			break
		}
		st.Write(data)
	}

	assert.Equal("round trip", output.String())
}
