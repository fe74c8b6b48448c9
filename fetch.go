// Copyright 2026 The csvcache Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package csvcache

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jszwec/csvutil"

	"github.com/csvcache/csvcache/internal/lineio"
)

// FullRecord re-reads rec's source row from the file the cache was built
// on and decodes every column into D, driven by the header schema and D's
// `csv` struct tags. The row is read fresh on every call — full records
// are never cached.
//
// Each call opens its own file handle, so any number of fetches may run
// concurrently without sharing a cursor. Cancellation is honored at the
// step boundaries (before open and before the seek+read); a cancelled
// call leaves the cache untouched and other in-flight fetches unaffected.
//
// An offset landing at or past end-of-file returns ErrOffsetPastEOF — the
// file shrank after the index was built. Decode failures return a
// *DecodeError carrying the offending row. Either way the error is local
// to this call; the cache stays valid.
func FullRecord[D any, T Record[O], O Offset](ctx context.Context, c *Cache[T, O], rec *T) (D, error) {
	var full D
	off := uint64((*rec).Offset())
	row, err := c.readRow(ctx, off)
	if err != nil {
		return full, err
	}
	if err := decodeRow(c.rawHeader, row, &full); err != nil {
		return full, &DecodeError{Path: c.path, Offset: off, Row: row, Err: err}
	}
	return full, nil
}

// readRow seeks the source file to off and reads one line.
func (c *Cache[T, O]) readRow(ctx context.Context, off uint64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f, err := os.Open(c.path)
	if err != nil {
		return "", fmt.Errorf("os.Open(%s): %w", c.path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	row, err := lineio.ReadAt(f, off)
	if err != nil {
		if errors.Is(err, lineio.ErrPastEOF) {
			return "", fmt.Errorf("%s: offset %d: %w", c.path, off, ErrOffsetPastEOF)
		}
		return "", fmt.Errorf("%s: %w", c.path, err)
	}
	return row, nil
}

// decodeRow runs the csvutil deserializer over a two-line document of
// header + row, so the csv reader enforces the header's field count
// against the row.
func decodeRow(rawHeader, row string, v any) error {
	r := csv.NewReader(strings.NewReader(rawHeader + "\n" + row))
	dec, err := csvutil.NewDecoder(r)
	if err != nil {
		return err
	}
	return dec.Decode(v)
}
