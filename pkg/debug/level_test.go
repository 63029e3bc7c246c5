package debug

import (
	"runtime"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	require.Equal(t, "error", LevelError.String())
	require.Equal(t, "verbose", LevelVerbose.String())
	require.Equal(t, "level(9)", Level(9).String())
}

func TestModuleGating(t *testing.T) {
	if !GloballyEnabled {
		t.Skip("built with nodebug")
	}
	testCases := []struct {
		name    string
		level   Level
		enabled bool
		call    Level
		sent    bool
	}{
		{"below", LevelInfo, true, LevelError, true},
		{"equal", LevelInfo, true, LevelInfo, true},
		{"above", LevelInfo, true, LevelDebug, false},
		{"disabled", LevelVerbose, false, LevelError, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var r recorder
			m := NewModule("APP", tc.level, New(&r))
			m.Enabled = tc.enabled
			m.Debugf(tc.call, "v=%d", 1)
			m.DumpHex(tc.call, []byte{1})
			m.DumpDec(tc.call, []byte{2})
			if tc.sent {
				require.Equal(t, "v=10:0x01\n\n0:2\n\n", r.String())
			} else {
				require.Empty(t, r.String())
			}
		})
	}
}

func TestModuleGatedOperands(t *testing.T) {
	var r recorder
	m := NewModule("APP", LevelInfo, New(&r))
	evaluated := 0
	expensive := func() int {
		evaluated++
		return evaluated
	}

	m.Debugf(LevelVerbose, "%d", expensive())
	require.Equal(t, 1, evaluated, "operands are evaluated even when gated off")
	require.Empty(t, r.String())

	if m.On(LevelVerbose) {
		m.Debugf(LevelVerbose, "%d", expensive())
	}
	require.Equal(t, 1, evaluated)
	require.Empty(t, r.String())
}

func TestAssert(t *testing.T) {
	if !GloballyEnabled {
		t.Skip("built with nodebug")
	}
	var r recorder
	m := NewModule("APP", LevelError, New(&r))
	m.Enabled = false
	m.Assert(true, 10)
	m.AssertHere(true)
	require.Empty(t, r.String())
}

func TestAssertHalts(t *testing.T) {
	if !GloballyEnabled {
		t.Skip("built with nodebug")
	}
	ch := make(chan byte, Capacity)
	m := NewModule("STAT", LevelError, New(TransmitFunc(func(b byte) { ch <- b })))
	_, _, here, _ := runtime.Caller(0)
	go func() { m.AssertHere(false) }()
	expect := "STAT : Halt at " + strconv.Itoa(here+1) + " line \n"
	got := make([]byte, 0, len(expect))
	for len(got) < len(expect) {
		select {
		case b := <-ch:
			got = append(got, b)
		case <-time.After(time.Second):
			t.Fatalf("timeout, got %q", got)
		}
	}
	require.Equal(t, expect, string(got))
}
