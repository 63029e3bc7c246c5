package debug

// Transmitter sends one byte over the debug transport.
// It is assumed to be synchronous and to never fail observably.
type Transmitter interface {
	Transmit(b byte)
}

// TransmitFunc is func type of Transmitter.
type TransmitFunc func(byte)

// Transmit implements Transmitter.
func (f TransmitFunc) Transmit(b byte) {
	f(b)
}
