// SPDX-License-Identifier: MIT
// Package: lvhom/filtration
//
// read.go - the filtration loader.

package filtration

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvhom/core"
)

// token is one whitespace-separated word and the line it came from.
type token struct {
	text string
	line int
}

// tokenizer yields the words of r, skipping everything from '#' to the end
// of a line. Record boundaries are independent of line breaks.
type tokenizer struct {
	sc     *bufio.Scanner
	line   int
	buf    []string
	bufPos int
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	return &tokenizer{sc: sc}
}

// next returns the following token, or ok=false at EOF or on a read error
// (see err).
func (t *tokenizer) next() (tok token, ok bool) {
	for t.bufPos >= len(t.buf) {
		if !t.sc.Scan() {
			return token{}, false
		}
		t.line++
		text := t.sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		t.buf, t.bufPos = strings.Fields(text), 0
	}
	tok = token{text: t.buf[t.bufPos], line: t.line}
	t.bufPos++

	return tok, true
}

func (t *tokenizer) err() error { return t.sc.Err() }

// Read parses a filtration from r as a stream of "value dim v0 … vdim"
// records. Simplices are returned in input order and are well-formed
// (core.NewSimplex); the caller sorts them.
//
// Running out of tokens in the middle of a record ends the input: the
// truncated record is dropped. Any token that does not parse fails with
// ErrMalformedRecord naming the record and its line.
// Complexity: O(total tokens).
func Read(r io.Reader) ([]core.Simplex, error) {
	var fs []core.Simplex
	tz := newTokenizer(r)
	for rec := 1; ; rec++ {
		s, done, err := readRecord(tz, rec)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		fs = append(fs, s)
	}
	if err := tz.err(); err != nil {
		return nil, fmt.Errorf("filtration: read: %w", err)
	}

	return fs, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) ([]core.Simplex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("filtration: %w", err)
	}
	defer f.Close()

	fs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return fs, nil
}

// readRecord consumes one record. done is true when the stream ended before
// the record was complete (including before its first token).
func readRecord(tz *tokenizer, rec int) (s core.Simplex, done bool, err error) {
	malformed := func(tok token, what string) error {
		return fmt.Errorf("record %d (line %d): %s %q: %w", rec, tok.line, what, tok.text, ErrMalformedRecord)
	}

	vt, ok := tz.next()
	if !ok {
		return core.Simplex{}, true, nil
	}
	value, err := strconv.ParseFloat(vt.text, 32)
	if err != nil {
		return core.Simplex{}, false, malformed(vt, "value")
	}

	dt, ok := tz.next()
	if !ok {
		return core.Simplex{}, true, nil
	}
	dim, err := strconv.Atoi(dt.text)
	if err != nil || dim < 0 {
		return core.Simplex{}, false, malformed(dt, "dim")
	}

	verts := make([]int, 0, dim+1)
	for len(verts) < dim+1 {
		t, ok := tz.next()
		if !ok {
			return core.Simplex{}, true, nil
		}
		v, err := strconv.Atoi(t.text)
		if err != nil {
			return core.Simplex{}, false, malformed(t, "vertex")
		}
		verts = append(verts, v)
	}

	s, err = core.NewSimplex(value, verts...)
	if err != nil {
		return core.Simplex{}, false, fmt.Errorf("record %d (line %d): %w", rec, vt.line, err)
	}

	return s, false, nil
}
