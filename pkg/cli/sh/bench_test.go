package sh

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/dbgout/pkg/debug/usart"
	"github.com/robotalks/dbgout/pkg/trace"
)

func TestBenchLoopback(t *testing.T) {
	var wire bytes.Buffer
	b := NewBench(usart.NewWriter(&wire))

	b.Debugger.Output("count=%d", ParseArgs([]string{"5"})...)
	require.Equal(t, []*trace.Record{{Kind: trace.KindText, Text: "count=5"}}, b.Settle())
	require.Equal(t, "count=5", wire.String())

	b.Debugger.Dump([]byte{0xa}, true)
	recs := b.Settle()
	require.Len(t, recs, 2)
	require.Equal(t, trace.KindDumpEntry, recs[0].Kind)
	require.Equal(t, uint32(10), recs[0].Value)
	require.Equal(t, trace.KindDumpEnd, recs[1].Kind)
	require.Empty(t, b.Settle())

	require.Len(t, b.Tail(10), 3)
	require.Equal(t, trace.KindDumpEnd, b.Tail(1)[0].Kind)
	require.Equal(t, 1, b.Stats().Count(trace.KindText))
}

func TestBenchHistoryBound(t *testing.T) {
	b := NewBench()
	for i := 0; i < HistorySize+5; i++ {
		b.Debugger.Output("line %d\n", i)
	}
	require.Len(t, b.Settle(), HistorySize+5)
	tail := b.Tail(-1)
	require.Len(t, tail, HistorySize)
	require.Equal(t, "line 5", tail[0].Text)
	require.Equal(t, "line 68", tail[len(tail)-1].Text)
}

func TestParseArgs(t *testing.T) {
	require.Equal(t, []interface{}{int64(5), int64(255), "ok", "-"}, ParseArgs([]string{"5", "0xff", "ok", "-"}))
}

func TestParseBytes(t *testing.T) {
	data, err := ParseBytes([]string{"1", "0x20", "255"})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 0x20, 255}, data)

	_, err = ParseBytes([]string{"256"})
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), `"256"`))
}

func TestUnescape(t *testing.T) {
	require.Equal(t, "plain", Unescape("plain"))
	require.Equal(t, "a\nb", Unescape(`a\nb`))
	require.Equal(t, `say "hi"`+"\n", Unescape(`say "hi"\n`))
	require.Equal(t, `bad\q`, Unescape(`bad\q`))
}
