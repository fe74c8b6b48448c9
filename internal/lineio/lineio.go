// Copyright 2026 The csvcache Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package lineio reads newline-terminated records from a byte stream while
// tracking the byte offset at which each record starts. Offsets are raw
// byte positions from the start of the stream and count line terminators,
// so they can later be handed to ReadAt against the same immutable bytes.
package lineio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrPastEOF is returned by ReadAt when the requested offset is at or
// beyond the end of the stream.
var ErrPastEOF = errors.New("offset at or beyond end of file")

// Scanner iterates over lines of a stream, recording the starting byte
// offset of each line. Both LF and CRLF terminators are stripped from the
// reported text but counted toward offsets.
//
// Usage follows bufio.Scanner: call Scan until it returns false, then
// check Err.
type Scanner struct {
	br   *bufio.Reader
	line string
	off  uint64 // offset of the line returned by Line
	next uint64 // offset one past the current line's terminator
	err  error
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{br: bufio.NewReader(r)}
}

// Scan advances to the next line. It returns false at end of input or on
// the first read error; the two are distinguished by Err.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	raw, err := s.br.ReadBytes('\n')
	if len(raw) == 0 {
		if err != nil && err != io.EOF {
			s.err = err
		}
		return false
	}
	if err != nil && err != io.EOF {
		s.err = err
		return false
	}
	s.off = s.next
	s.next += uint64(len(raw))
	if n := len(raw); n > 0 && raw[n-1] == '\n' {
		raw = raw[:n-1]
	}
	if n := len(raw); n > 0 && raw[n-1] == '\r' {
		raw = raw[:n-1]
	}
	s.line = string(raw)
	return true
}

// Line returns the text of the current line, without its terminator.
func (s *Scanner) Line() string { return s.line }

// Offset returns the byte offset of the current line's first byte.
func (s *Scanner) Offset() uint64 { return s.off }

// Err returns the first read error encountered; it is nil at clean EOF.
func (s *Scanner) Err() error { return s.err }

// ReadAt seeks r to off and reads forward until the next line terminator
// or EOF, returning the line without its terminator. An offset at or past
// EOF yields ErrPastEOF: with offsets produced by a Scanner over the same
// bytes that means the underlying file shrank after the offsets were
// recorded.
func ReadAt(r io.ReadSeeker, off uint64) (string, error) {
	if _, err := r.Seek(int64(off), io.SeekStart); err != nil {
		return "", fmt.Errorf("seek to %d: %w", off, err)
	}
	raw, err := bufio.NewReader(r).ReadBytes('\n')
	if len(raw) == 0 {
		if err == nil || err == io.EOF {
			return "", ErrPastEOF
		}
		return "", fmt.Errorf("read at %d: %w", off, err)
	}
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read at %d: %w", off, err)
	}
	if n := len(raw); raw[n-1] == '\n' {
		raw = raw[:n-1]
	}
	if n := len(raw); n > 0 && raw[n-1] == '\r' {
		raw = raw[:n-1]
	}
	return string(raw), nil
}
