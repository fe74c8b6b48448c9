// Copyright 2026 The csvcache Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package csvcache

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by cache operations.
var (
	// ErrMissingHeader is returned by Open when the source file is empty:
	// a valid file has at least a header row.
	ErrMissingHeader = errors.New("missing header row")

	// ErrOffsetOverflow is returned (wrapped in a RowError) when a row's
	// byte offset does not fit the caller-chosen offset type.
	ErrOffsetOverflow = errors.New("offset overflows offset type")

	// ErrOffsetPastEOF is returned by FullRecord when a stored offset
	// lands at or beyond the end of the source file, which means the file
	// shrank after the index was built.
	ErrOffsetPastEOF = errors.New("offset beyond end of file")
)

// RowError reports an index-build failure tied to one row of the source
// file. Line is the 1-based line number within the file (the header is
// line 1) and Offset is the byte position of the row's first byte.
type RowError struct {
	Path   string
	Line   int
	Offset uint64
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s: line %d (offset %d): %v", e.Path, e.Line, e.Offset, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// DecodeError reports a fetch-time failure to decode a re-read row into
// the caller's full-record type. Row holds the raw line as read from the
// file, so the caller can see what refused to decode.
type DecodeError struct {
	Path   string
	Offset uint64
	Row    string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode row at offset %d: %v: %q", e.Path, e.Offset, e.Err, e.Row)
}

func (e *DecodeError) Unwrap() error { return e.Err }
