package debug

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type panicky struct{}

func (panicky) String() string { panic(errors.New("boom")) }

type label string

func (l label) String() string { return "L:" + string(l) }

type celsius int

func (c celsius) Format(f fmt.State, verb rune) { fmt.Fprintf(f, "%dC", int(c)) }

type badFormatter struct{}

func (badFormatter) Format(fmt.State, rune) { panic("no") }

func TestFmtRenderer(t *testing.T) {
	testCases := []struct {
		name   string
		size   int
		format string
		args   []interface{}
		count  int
		stored string
	}{
		{"fits", 8, "n=%d", []interface{}{42}, 4, "n=42"},
		{"exact", 5, "n=%d", []interface{}{42}, 4, "n=42"},
		{"truncated", 4, "n=%d", []interface{}{42}, 4, "n=4"},
		{"one byte window", 1, "abc", nil, 3, ""},
		{"no window", 0, "abc", nil, 3, ""},
		{"missing", 8, "%d %d", []interface{}{1}, -1, ""},
		{"bad width", 8, "%*d", []interface{}{"w", 1}, -1, ""},
		{"no verb", 8, "50%", nil, -1, ""},
		{"panicking stringer", 8, "%s", []interface{}{panicky{}}, -1, ""},
		{"percent literal", 8, "50%%", nil, 3, "50%"},
		{"operand with bang", 16, "<%s>", []interface{}{"%!d("}, 6, "<%!d(>"},
		{"stringer", 8, "%-5s|", []interface{}{label("a")}, 6, "L:a  |"},
		{"nil stringer", 8, "%s", []interface{}{(*label)(nil)}, 5, "<nil>"},
		{"formatter", 8, "%x", []interface{}{celsius(21)}, 3, "21C"},
		{"panicking formatter", 8, "%v", []interface{}{badFormatter{}}, -1, ""},
		{"star width", 8, "%*d|", []interface{}{3, 7}, 4, "  7|"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dst := make([]byte, tc.size)
			for i := range dst {
				dst[i] = 0xff
			}
			n := FmtRenderer{}.Render(dst, tc.format, tc.args...)
			require.Equal(t, tc.count, n)
			if n < 0 || tc.size == 0 {
				return
			}
			require.Equal(t, tc.stored, string(dst[:len(tc.stored)]))
			require.Zero(t, dst[len(tc.stored)], "terminator")
		})
	}
}
