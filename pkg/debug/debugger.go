package debug

import "github.com/golang/glog"

// Config is the transport configuration handed to Init.
type Config struct {
	Baudrate uint32
}

// Debugger formats into its own Buffer and emits through Transmitter.
//
// A Debugger must be used by one goroutine at a time and must not be
// called again from its Transmitter while a call is in progress; both
// corrupt the shared Buffer. Nothing enforces this.
type Debugger struct {
	Transmitter Transmitter
	Renderer    Renderer

	buf Buffer
}

// New creates a Debugger using the fmt renderer.
func New(t Transmitter) *Debugger {
	return &Debugger{Transmitter: t, Renderer: FmtRenderer{}}
}

// Init is the initialization hook. The transport owns hardware setup,
// so nothing is done here yet.
func (d *Debugger) Init(conf *Config) {
	if conf != nil {
		glog.V(4).Infof("debug init, baudrate %d", conf.Baudrate)
	}
}

// Output formats a message printf style and transmits it.
func (d *Debugger) Output(format string, args ...interface{}) {
	d.buf.Format(d.renderer(), format, args...)
	d.buf.Send(d.Transmitter)
}

// Dump transmits data as an indexed listing, hex or decimal.
// data is not modified.
func (d *Debugger) Dump(data []byte, hex bool) {
	d.buf.Dump(d.renderer(), data, hex)
	d.buf.Send(d.Transmitter)
}

func (d *Debugger) renderer() Renderer {
	if d.Renderer == nil {
		return FmtRenderer{}
	}
	return d.Renderer
}
