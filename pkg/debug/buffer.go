package debug

// Buffer geometry.
const (
	// Capacity is the size of the debug buffer.
	Capacity = 64
	// Headroom is kept free at the tail so the overflow marker always fits.
	Headroom = 2
	// Limit is the longest text rendered without truncation. The render
	// window is Capacity-Headroom bytes and its last byte takes the
	// terminator; a count reaching Limit is treated as overflow.
	Limit = Capacity - Headroom - 1
)

const (
	overflowMarker = "~\n"
	encodingMarker = "!\n\x00"

	decEntry = "%d:%d\n"
	hexEntry = "%d:0x%02x\n"
)

// Buffer is the fixed storage shared by Output and Dump, plus the number
// of bytes pending for transmission.
// It is not safe for concurrent use and must not be re-entered.
type Buffer struct {
	data [Capacity]byte
	n    int
}

// Reset zeroes the storage and the cursor.
func (b *Buffer) Reset() {
	b.data = [Capacity]byte{}
	b.n = 0
}

// Len returns the number of bytes pending for transmission.
func (b *Buffer) Len() int {
	return b.n
}

// Bytes returns the pending bytes. The slice aliases the storage and is
// only valid until the next call on b.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.n]
}

// Format renders a message and returns the number of bytes to send.
func (b *Buffer) Format(r Renderer, format string, args ...interface{}) int {
	b.Reset()
	n := r.Render(b.window(0), format, args...)
	switch {
	case n < 0:
		b.markEncodingError()
	case n >= Limit:
		b.markOverflow()
	default:
		b.n = n
	}
	return b.n
}

// Dump renders one "index:value" line per byte of data followed by an
// empty line, and returns the number of bytes to send. When the listing
// does not fit, the remaining bytes are dropped and the buffer ends with
// the overflow marker instead of the empty line.
func (b *Buffer) Dump(r Renderer, data []byte, hex bool) int {
	b.Reset()
	format := decEntry
	if hex {
		format = hexEntry
	}
	for i, v := range data {
		n := r.Render(b.window(b.n), format, i, v)
		if n < 0 {
			b.Reset()
			b.markEncodingError()
			return b.n
		}
		if b.n += n; b.n >= Limit {
			b.markOverflow()
			return b.n
		}
	}
	b.data[b.n] = '\n'
	b.n++
	return b.n
}

// Send passes the pending bytes to t in order, one call per byte.
func (b *Buffer) Send(t Transmitter) {
	for _, c := range b.data[:b.n] {
		t.Transmit(c)
	}
}

// window is the render space starting at off, headroom excluded.
func (b *Buffer) window(off int) []byte {
	return b.data[off : Capacity-Headroom]
}

func (b *Buffer) markOverflow() {
	b.n = Capacity
	copy(b.data[Capacity-len(overflowMarker):], overflowMarker)
}

func (b *Buffer) markEncodingError() {
	b.n = copy(b.data[:], encodingMarker)
}
