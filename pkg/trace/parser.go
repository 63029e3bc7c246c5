package trace

import (
	"bytes"
	"regexp"
	"strconv"
)

// MaxLine bounds the length of one decoded line. Longer lines are split.
const MaxLine = 256

var (
	haltLine  = regexp.MustCompile(`^(.+) : Halt at (\d+) line $`)
	entryLine = regexp.MustCompile(`^(\d+):(?:0x([0-9a-f]{2})|(\d{1,3}))$`)
)

type parseState int

const (
	stateLineStart parseState = iota // skipping terminators before a line
	stateLine                        // collecting line bytes
)

// Stats counts what a Parser decoded.
type Stats struct {
	Bytes   int
	Records [kindCount]int
}

// Count returns the number of records of kind k.
func (s Stats) Count(k Kind) int {
	if k < 0 || k >= kindCount {
		return 0
	}
	return s.Records[k]
}

// Parser decodes a debug byte stream into Records.
// The zero value is ready to use.
type Parser struct {
	state parseState
	line  [MaxLine]byte
	n     int

	inDump  bool
	entries uint32
	hex     bool

	stats Stats
}

// Parse consumes one byte and returns a Record when it closes a line.
func (p *Parser) Parse(b byte) *Record {
	p.stats.Bytes++
	if p.state == stateLineStart {
		if b == 0 {
			return nil
		}
		p.state = stateLine
	}
	if b == '\n' {
		return p.closeLine(false)
	}
	p.line[p.n] = b
	if p.n++; p.n >= MaxLine {
		return p.closeLine(true)
	}
	return nil
}

// Pending reports whether a partial line is buffered.
func (p *Parser) Pending() bool {
	return p.n > 0
}

// Flush closes a partial line, e.g. a message sent without newline.
func (p *Parser) Flush() *Record {
	if p.n == 0 {
		return nil
	}
	return p.closeLine(false)
}

// Stats returns the counters.
func (p *Parser) Stats() Stats {
	return p.stats
}

func (p *Parser) closeLine(split bool) *Record {
	line := p.line[:p.n]
	var rec *Record
	if split {
		p.endDump()
		rec = &Record{Kind: KindText, Text: string(line)}
	} else {
		rec = p.classify(line)
	}
	p.n, p.state = 0, stateLineStart
	p.stats.Records[rec.Kind]++
	return rec
}

func (p *Parser) classify(line []byte) *Record {
	if len(line) == 1 && line[0] == '!' {
		p.endDump()
		return &Record{Kind: KindEncodingError}
	}
	if n := len(line); n > 0 && line[n-1] == '~' && (n == 1 || line[n-2] == 0) {
		rec := &Record{
			Kind:    KindOverflow,
			Text:    string(bytes.TrimRight(line[:n-1], "\x00")),
			Entries: p.entries,
			Hex:     p.hex && p.inDump,
		}
		p.endDump()
		return rec
	}
	if len(line) == 0 {
		rec := &Record{Kind: KindDumpEnd, Entries: p.entries, Hex: p.hex && p.inDump}
		p.endDump()
		return rec
	}
	if m := haltLine.FindSubmatch(line); m != nil {
		if num, err := strconv.ParseUint(string(m[2]), 10, 32); err == nil {
			p.endDump()
			return &Record{Kind: KindHalt, Module: string(m[1]), Line: uint32(num)}
		}
	}
	if rec := p.entry(line); rec != nil {
		return rec
	}
	p.endDump()
	return &Record{Kind: KindText, Text: string(line)}
}

func (p *Parser) entry(line []byte) *Record {
	m := entryLine.FindSubmatch(line)
	if m == nil {
		return nil
	}
	index, err := strconv.ParseUint(string(m[1]), 10, 32)
	if err != nil {
		return nil
	}
	rec := &Record{Kind: KindDumpEntry, Index: uint32(index)}
	if m[2] != nil {
		v, _ := strconv.ParseUint(string(m[2]), 16, 8)
		rec.Value, rec.Hex = uint32(v), true
	} else {
		v, err := strconv.ParseUint(string(m[3]), 10, 8)
		if err != nil {
			return nil
		}
		rec.Value = uint32(v)
	}
	if index == 0 || !p.inDump {
		p.inDump, p.entries, p.hex = true, 0, rec.Hex
	}
	p.entries++
	return rec
}

func (p *Parser) endDump() {
	p.inDump, p.entries, p.hex = false, 0, false
}
