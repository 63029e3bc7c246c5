package debug

import (
	"math"
	"time"

	"github.com/golang/glog"
)

const haltFormat = "%s : Halt at %d line \n"

// Halt reports the module and line, then parks the calling goroutine
// forever. It never returns; code after a call is unreachable.
func (d *Debugger) Halt(module string, line int) {
	d.Output(haltFormat, module, line)
	glog.Errorf("%s halted at line %d", module, line)
	glog.Flush()
	park()
}

// park sleeps instead of blocking on a channel so the runtime deadlock
// detector does not turn the halt into a crash.
func park() {
	for {
		time.Sleep(time.Duration(math.MaxInt64))
	}
}
