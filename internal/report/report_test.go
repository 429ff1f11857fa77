package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sigcmp/internal/align"
)

func TestTextWriter_PairedBlock(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewTextWriter(buf)

	err := w.Write(align.Report{
		Signal: 1,
		Entries: []align.Entry{
			{Source: "file1.log", Line: 1, Text: "> 1.0,Foo,1,'a'"},
			{Source: "file2.log", Line: 1, Text: "> 1.0,Foo,1,'b'"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Signal 1\nfile1.log:1: > 1.0,Foo,1,'a'\nfile2.log:1: > 1.0,Foo,1,'b'\n", buf.String())
}

func TestTextWriter_SeparatorBetweenBlocks(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewTextWriter(buf)

	err := w.WriteAll([]align.Report{
		{Signal: 2, Entries: []align.Entry{{Source: "a.log", Line: 4, Text: "> 2.0,B,2,'b'"}}},
		{Signal: 5, Entries: []align.Entry{{Source: "b.log", Line: 9, Text: "< 5.0,E,5,'e'"}}},
	})
	require.NoError(t, err)

	want := "Signal 2\n" +
		"a.log:4: > 2.0,B,2,'b'\n" +
		"\n" +
		"Signal 5\n" +
		"b.log:9: < 5.0,E,5,'e'\n"
	assert.Equal(t, want, buf.String())
}

func TestTextWriter_NothingToWrite(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, NewTextWriter(buf).WriteAll(nil))
	assert.Empty(t, buf.String())
}

func TestTextWriter_SeparatorStateIsPerWriter(t *testing.T) {
	r := align.Report{Signal: 1, Entries: []align.Entry{{Source: "a", Line: 1, Text: "x"}}}

	first := &bytes.Buffer{}
	require.NoError(t, NewTextWriter(first).Write(r))

	second := &bytes.Buffer{}
	require.NoError(t, NewTextWriter(second).Write(r))

	assert.Equal(t, first.String(), second.String())
	assert.NotContains(t, second.String(), "\n\n")
}

func TestSummary(t *testing.T) {
	tests := []struct {
		result align.Result
		want   string
	}{
		{align.Result{}, "0 signals, 0 matched, 0 mismatches"},
		{align.Result{Signals: 1, Matched: 1}, "1 signal, 1 matched, 0 mismatches"},
		{align.Result{Signals: 3, Matched: 2, Reports: []align.Report{{Signal: 3}}}, "3 signals, 2 matched, 1 mismatch"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Summary(&tt.result))
		})
	}
}

func TestTextWriter_WriteSummary(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewTextWriter(buf)
	require.NoError(t, w.Write(align.Report{Signal: 1, Entries: []align.Entry{{Source: "a", Line: 1, Text: "x"}}}))
	require.NoError(t, w.WriteSummary(&align.Result{Signals: 1, Reports: []align.Report{{Signal: 1}}}))

	assert.Equal(t, "Signal 1\na:1: x\n\n1 signal, 0 matched, 1 mismatch\n", buf.String())
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("pipe closed")
}

func TestTextWriter_PropagatesWriteErrors(t *testing.T) {
	err := NewTextWriter(brokenWriter{}).Write(align.Report{Signal: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pipe closed")
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "lines", Plural(0, "line", "lines"))
	assert.Equal(t, "line", Plural(1, "line", "lines"))
	assert.Equal(t, "lines", Plural(2, "line", "lines"))
}
