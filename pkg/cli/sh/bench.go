package sh

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eapache/queue"

	"github.com/robotalks/dbgout/pkg/debug"
	"github.com/robotalks/dbgout/pkg/debug/usart"
	"github.com/robotalks/dbgout/pkg/trace"
)

// HistorySize bounds the decoded records kept by a Bench.
const HistorySize = 64

// Bench drives a Debugger and decodes what it sends through a loopback
// Parser, so the operator can see both sides of the link.
type Bench struct {
	Debugger *debug.Debugger

	parser  trace.Parser
	history *queue.Queue
	pending []*trace.Record
}

// NewBench creates a Bench sending to targets in addition to the loopback.
func NewBench(targets ...debug.Transmitter) *Bench {
	b := &Bench{history: queue.New()}
	targets = append([]debug.Transmitter{debug.TransmitFunc(b.loopback)}, targets...)
	b.Debugger = debug.New(usart.Tee(targets...))
	return b
}

func (b *Bench) loopback(c byte) {
	if rec := b.parser.Parse(c); rec != nil {
		b.record(rec)
	}
}

func (b *Bench) record(rec *trace.Record) {
	if b.history.Length() >= HistorySize {
		b.history.Remove()
	}
	b.history.Add(rec)
	b.pending = append(b.pending, rec)
}

// Settle flushes a partial line and returns the records decoded since
// the last call.
func (b *Bench) Settle() []*trace.Record {
	if rec := b.parser.Flush(); rec != nil {
		b.record(rec)
	}
	recs := b.pending
	b.pending = nil
	return recs
}

// Tail returns up to n most recent records, oldest first.
func (b *Bench) Tail(n int) []*trace.Record {
	size := b.history.Length()
	if n > size || n < 0 {
		n = size
	}
	recs := make([]*trace.Record, 0, n)
	for i := size - n; i < size; i++ {
		recs = append(recs, b.history.Get(i).(*trace.Record))
	}
	return recs
}

// Stats returns the loopback parser counters.
func (b *Bench) Stats() trace.Stats {
	return b.parser.Stats()
}

// ParseArgs converts shell words into format operands: integers when
// they parse (0x, 0o and 0b prefixes accepted), strings otherwise.
func ParseArgs(words []string) []interface{} {
	args := make([]interface{}, len(words))
	for i, w := range words {
		if n, err := strconv.ParseInt(w, 0, 64); err == nil {
			args[i] = n
		} else {
			args[i] = w
		}
	}
	return args
}

// ParseBytes converts shell words into bytes.
func ParseBytes(words []string) ([]byte, error) {
	data := make([]byte, len(words))
	for i, w := range words {
		v, err := strconv.ParseUint(w, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid byte %q", w)
		}
		data[i] = byte(v)
	}
	return data, nil
}

// Unescape interprets Go escapes like \n in a shell word.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	if u, err := strconv.Unquote(`"` + strings.Replace(s, `"`, `\"`, -1) + `"`); err == nil {
		return u
	}
	return s
}
