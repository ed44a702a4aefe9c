// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package records_test

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"cloudeng.io/priority/internal/records"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

const input = `# a comment
3 three

1.5   one and a half  
  -2
# 100 ignored
7e2 seven hundred
`

func collect(t *testing.T, rd io.Reader) ([]records.Record, error) {
	t.Helper()
	var out []records.Record
	for r, err := range records.Scan(rd) {
		if err != nil {
			return out, err
		}
		out = append(out, r)
	}
	return out, nil
}

func TestScan(t *testing.T) {
	got, err := collect(t, strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := []records.Record{
		{Priority: 3, Payload: "three", Line: 2},
		{Priority: 1.5, Payload: "one and a half", Line: 4},
		{Priority: -2, Payload: "", Line: 5},
		{Priority: 700, Payload: "seven hundred", Line: 7},
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScanErrors(t *testing.T) {
	got, err := collect(t, strings.NewReader("1 a\n\nx b\n2 c\n"))
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("missing or wrong error: %v", err)
	}
	if got, want := len(got), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	long := strings.Repeat("x", records.MaxLineSize+1)
	_, err = collect(t, strings.NewReader("1 a\n1 "+long+"\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("missing or wrong error: %v", err)
	}
}

func TestParse(t *testing.T) {
	for i, tc := range []struct {
		line string
		ok   bool
		rec  records.Record
	}{
		{"", false, records.Record{}},
		{"   ", false, records.Record{}},
		{"  # 1 2", false, records.Record{}},
		{"1", true, records.Record{Priority: 1, Line: 1}},
		{"-1\tx\ty ", true, records.Record{Priority: -1, Payload: "x\ty", Line: 1}},
		{"inf x", true, records.Record{Priority: math.Inf(1), Payload: "x", Line: 1}},
	} {
		rec, ok, err := records.Parse(tc.line, 1)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := ok, tc.ok; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := rec, tc.rec; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
	if _, _, err := records.Parse("1x y", 10); err == nil || !strings.Contains(err.Error(), "line 10") {
		t.Errorf("missing or wrong error: %v", err)
	}
}

func writeFile(t *testing.T, name string, compress func(io.Writer) io.WriteCloser) string {
	t.Helper()
	var buf bytes.Buffer
	w := compress(&buf)
	if _, err := io.WriteString(w, input); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	filename := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(filename, buf.Bytes(), 0600); err != nil {
		t.Fatal(err)
	}
	return filename
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func TestOpen(t *testing.T) {
	for _, tc := range []struct {
		name     string
		compress func(io.Writer) io.WriteCloser
	}{
		{"plain.txt", func(w io.Writer) io.WriteCloser { return nopWriteCloser{w} }},
		{"records.zst", func(w io.Writer) io.WriteCloser {
			enc, err := zstd.NewWriter(w)
			if err != nil {
				t.Fatal(err)
			}
			return enc
		}},
		{"records.gz", func(w io.Writer) io.WriteCloser { return gzip.NewWriter(w) }},
		{"records.lz4", func(w io.Writer) io.WriteCloser { return lz4.NewWriter(w) }},
	} {
		filename := writeFile(t, tc.name, tc.compress)
		rd, err := records.Open(filename)
		if err != nil {
			t.Fatalf("%v: %v", tc.name, err)
		}
		got, err := collect(t, rd)
		if err != nil {
			t.Errorf("%v: %v", tc.name, err)
		}
		if err := rd.Close(); err != nil {
			t.Errorf("%v: %v", tc.name, err)
		}
		if got, want := len(got), 4; got != want {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
	}

	if _, err := records.Open(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing or wrong error: %v", err)
	}

	// A file that is not gzip'ed but claims to be.
	bad := writeFile(t, "bad.gz", func(w io.Writer) io.WriteCloser { return nopWriteCloser{w} })
	if _, err := records.Open(bad); err == nil || !strings.Contains(err.Error(), "bad.gz") {
		t.Errorf("missing or wrong error: %v", err)
	}
}

func TestSource(t *testing.T) {
	src := records.NewSource("sorted", records.Scan(strings.NewReader("1 a\n2 b\n2 c\n5 d\n")))
	var out []string
	for r := range src.Ascending() {
		out = append(out, r.Payload)
	}
	if err := src.Err(); err != nil {
		t.Fatal(err)
	}
	if got, want := strings.Join(out, ""), "abcd"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	src = records.NewSource("unsorted", records.Scan(strings.NewReader("1 a\n3 b\n2 c\n5 d\n")))
	out = nil
	for r := range src.Ascending() {
		out = append(out, r.Payload)
	}
	err := src.Err()
	if !errors.Is(err, records.ErrUnsorted) {
		t.Errorf("missing or wrong error: %v", err)
	}
	if got, want := err.Error(), "unsorted: line 3: 2 follows 3: records are not in ascending order"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := strings.Join(out, ""), "ab"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	src = records.NewSource("bad", records.Scan(strings.NewReader("1 a\nz\n")))
	n := 0
	for range src.Records() {
		n++
	}
	if got, want := n, 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := src.Err(); err == nil || !strings.HasPrefix(err.Error(), "bad: line 2:") {
		t.Errorf("missing or wrong error: %v", err)
	}
	if got, want := src.Name(), "bad"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
