package debug

import (
	"runtime"
	"strconv"
)

// Level is the verbosity of a debug call.
type Level int

// Levels, a call is emitted when its level is not above the module level.
const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
	LevelDebug
	LevelVerbose
)

var levelNames = [...]string{"error", "warning", "info", "debug", "verbose"}

// String implements fmt.Stringer.
func (l Level) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "level(" + strconv.Itoa(int(l)) + ")"
}

// Module gates the debug calls of one firmware module.
//
// Level and Enabled are checked at run time, only GloballyEnabled is a
// build time constant. Operands of a gated off call are still evaluated,
// wrap expensive ones in On:
//
//	if m.On(LevelVerbose) {
//		m.Debugf(LevelVerbose, "state %s\n", expensive())
//	}
type Module struct {
	ID       string
	Level    Level
	Enabled  bool
	Debugger *Debugger
}

// NewModule creates an enabled Module.
func NewModule(id string, level Level, d *Debugger) *Module {
	return &Module{ID: id, Level: level, Enabled: true, Debugger: d}
}

// On reports whether calls at level are emitted.
func (m *Module) On(level Level) bool {
	return GloballyEnabled && m.Enabled && level <= m.Level
}

// Debugf outputs a message at level.
func (m *Module) Debugf(level Level, format string, args ...interface{}) {
	if m.On(level) {
		m.Debugger.Output(format, args...)
	}
}

// DumpHex dumps data in hex at level.
func (m *Module) DumpHex(level Level, data []byte) {
	if m.On(level) {
		m.Debugger.Dump(data, true)
	}
}

// DumpDec dumps data in decimal at level.
func (m *Module) DumpDec(level Level, data []byte) {
	if m.On(level) {
		m.Debugger.Dump(data, false)
	}
}

// Assert halts with the module ID and line when cond is false.
// Assertions only depend on GloballyEnabled.
func (m *Module) Assert(cond bool, line int) {
	if GloballyEnabled && !cond {
		m.Debugger.Halt(m.ID, line)
	}
}

// AssertHere is Assert with the line of the caller.
func (m *Module) AssertHere(cond bool) {
	if GloballyEnabled && !cond {
		_, _, line, _ := runtime.Caller(1)
		m.Debugger.Halt(m.ID, line)
	}
}

