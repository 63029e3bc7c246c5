package trace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRecordEncode(t *testing.T) {
	rec := &Record{
		Kind:    KindOverflow,
		Text:    "1",
		Hex:     true,
		Entries: 14,
	}
	NewOrigin("bench").Stamp(rec, time.Unix(0, 1234))
	b, err := rec.Encode()
	require.NoError(t, err)
	decoded, err := DecodeRecord(b)
	require.NoError(t, err)
	require.Equal(t, rec, decoded)
	require.Equal(t, "bench", decoded.Source)
	require.Len(t, decoded.Session, 36)
	require.Equal(t, int64(1234), decoded.Timestamp)
}

func TestRecordSummary(t *testing.T) {
	testCases := []struct {
		rec    Record
		expect string
	}{
		{Record{Kind: KindText, Text: "hi"}, `text "hi"`},
		{Record{Kind: KindDumpEntry, Index: 3, Value: 10, Hex: true}, "entry 3: 0x0a"},
		{Record{Kind: KindDumpEntry, Index: 3, Value: 10}, "entry 3: 10"},
		{Record{Kind: KindDumpEnd, Entries: 2}, "dump 2 entries"},
		{Record{Kind: KindOverflow, Text: "ab"}, `overflow: "ab"`},
		{Record{Kind: KindOverflow, Text: "1", Entries: 14}, `overflow after 14 entries: "1"`},
		{Record{Kind: KindEncodingError}, "encoding-error"},
		{Record{Kind: KindHalt, Module: "APP", Line: 42}, "halt APP at line 42"},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expect, tc.rec.Summary())
	}
	require.Equal(t, "kind(9)", Kind(9).String())
}

func TestNewOrigin(t *testing.T) {
	a, b := NewOrigin("dev"), NewOrigin("dev")
	require.Equal(t, "dev", a.Source)
	require.NotEqual(t, a.Session, b.Session)
	require.NotEmpty(t, NewOrigin("").Source)
}
