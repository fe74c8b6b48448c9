// Copyright 2026 The csvcache Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package csvcache

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/csvcache/csvcache/internal/lineio"
)

// Cache is a frozen index over one immutable CSV file: one partial record
// per data row, in file order, each carrying the byte offset of its source
// row. After Open returns the cache never mutates, so it is safe to share
// across goroutines without coordination; only FullRecord touches the file
// again.
//
// Offsets are positions within the file's exact byte content at build
// time. Modifying the file afterwards invalidates the cache silently —
// there is no change detection.
type Cache[T Record[O], O Offset] struct {
	path      string
	rawHeader string
	header    []string
	records   []T
}

// Open builds a cache from the CSV file at path in a single synchronous
// pass: the header line is read and tokenized (it later drives FullRecord
// decoding), then build is called for every data row with the row's text
// and starting byte offset. Construction is all-or-nothing — the first
// failing row aborts with a *RowError identifying it and no cache is
// returned. A header-only file yields an empty, valid cache.
func Open[T Record[O], O Offset](path string, build BuildFunc[T, O]) (*Cache[T, O], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s): %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return open(path, f, build)
}

func open[T Record[O], O Offset](path string, r io.Reader, build BuildFunc[T, O]) (*Cache[T, O], error) {
	s := lineio.NewScanner(r)
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return nil, fmt.Errorf("read header of %s: %w", path, err)
		}
		return nil, fmt.Errorf("%s: %w", path, ErrMissingHeader)
	}
	rawHeader := s.Line()
	header, err := Fields(rawHeader)
	if err != nil {
		return nil, &RowError{Path: path, Line: 1, Offset: 0, Err: err}
	}

	var records []T
	lineNum := 1
	for s.Scan() {
		lineNum++
		off64 := s.Offset()
		off := O(off64)
		if uint64(off) != off64 {
			return nil, &RowError{Path: path, Line: lineNum, Offset: off64, Err: ErrOffsetOverflow}
		}
		rec, err := build(s.Line(), off)
		if err != nil {
			return nil, &RowError{Path: path, Line: lineNum, Offset: off64, Err: err}
		}
		records = append(records, rec)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return &Cache[T, O]{
		path:      path,
		rawHeader: rawHeader,
		header:    header,
		records:   slices.Clip(records),
	}, nil
}

// Len returns the number of cached partial records.
func (c *Cache[T, O]) Len() int {
	return len(c.records)
}

// At returns the i'th partial record in file order. It panics if i is out
// of range, like a slice index.
func (c *Cache[T, O]) At(i int) *T {
	return &c.records[i]
}

// Path returns the source file path the cache was built from and that
// FullRecord re-reads.
func (c *Cache[T, O]) Path() string {
	return c.path
}

// Header returns the tokenized header row.
func (c *Cache[T, O]) Header() []string {
	return slices.Clone(c.header)
}
