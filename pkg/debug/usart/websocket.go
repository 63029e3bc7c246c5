package usart

import "golang.org/x/net/websocket"

// DefaultOrigin is used when Dial gets an empty origin.
const DefaultOrigin = "http://localhost/"

// Conn is a connection to a websocket serial bridge.
// Bytes travel as binary frames in both directions.
type Conn struct {
	*websocket.Conn
	tx Writer
}

// Dial connects a websocket serial bridge.
func Dial(url, origin string) (*Conn, error) {
	if origin == "" {
		origin = DefaultOrigin
	}
	ws, err := websocket.Dial(url, "", origin)
	if err != nil {
		return nil, err
	}
	ws.PayloadType = websocket.BinaryFrame
	return &Conn{Conn: ws, tx: Writer{W: ws}}, nil
}

// Transmit implements debug.Transmitter.
func (c *Conn) Transmit(b byte) {
	c.tx.Transmit(b)
}
