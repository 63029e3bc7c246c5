package usart

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/dbgout/pkg/debug"
)

type failingWriter struct {
	writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("line down")
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	debug.New(w).Output("count=%d", 5)
	require.Equal(t, "count=5", buf.String())
	require.Zero(t, w.Errors())
}

func TestWriterErrors(t *testing.T) {
	fw := &failingWriter{}
	w := NewWriter(fw)
	debug.New(w).Dump([]byte{1}, true)
	require.Equal(t, len("0:0x01\n\n"), fw.writes)
	require.Equal(t, fw.writes, w.Errors())
}

func TestTee(t *testing.T) {
	var a, b bytes.Buffer
	var order []byte
	tx := Tee(NewWriter(&a), debug.TransmitFunc(func(c byte) { order = append(order, c) }), NewWriter(&b))
	debug.New(tx).Output("hi\n")
	require.Equal(t, "hi\n", a.String())
	require.Equal(t, "hi\n", b.String())
	require.Equal(t, []byte("hi\n"), order)
}
