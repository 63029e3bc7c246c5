package usart

import (
	"io"

	"github.com/golang/glog"

	"github.com/robotalks/dbgout/pkg/debug"
)

// Writer implements debug.Transmitter over an io.Writer, one Write per byte.
// Write errors are counted and logged, never reported to the Debugger.
type Writer struct {
	W io.Writer

	one    [1]byte
	errors int
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{W: w}
}

// Transmit implements debug.Transmitter.
func (w *Writer) Transmit(b byte) {
	w.one[0] = b
	if _, err := w.W.Write(w.one[:]); err != nil {
		w.errors++
		glog.V(2).Infof("transmit error: %v", err)
	}
}

// Errors returns the number of failed writes.
func (w *Writer) Errors() int {
	return w.errors
}

type tee []debug.Transmitter

// Tee forwards each byte to all transmitters in order.
func Tee(ts ...debug.Transmitter) debug.Transmitter {
	return tee(ts)
}

func (t tee) Transmit(b byte) {
	for _, tx := range t {
		tx.Transmit(b)
	}
}
