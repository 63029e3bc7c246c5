package usart

import (
	"fmt"
	"os"

	"github.com/robotalks/dbgout/pkg/debug"
)

// Port is an opened serial device.
type Port struct {
	*os.File
	tx Writer
}

// Open opens a serial device in raw mode at the configured baud rate.
// A zero Baudrate keeps the device speed unchanged.
func Open(path string, conf *debug.Config) (*Port, error) {
	f, err := os.OpenFile(path, openFlags, 0)
	if err != nil {
		return nil, err
	}
	if err = configure(f, conf); err != nil {
		f.Close()
		return nil, fmt.Errorf("configure %s error: %v", path, err)
	}
	return &Port{File: f, tx: Writer{W: f}}, nil
}

// Transmit implements debug.Transmitter.
func (p *Port) Transmit(b byte) {
	p.tx.Transmit(b)
}

// Errors returns the number of failed transmits.
func (p *Port) Errors() int {
	return p.tx.Errors()
}
