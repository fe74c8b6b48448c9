// Copyright 2026 The csvcache Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package csvcache provides indexed, partially-cached access to an
// immutable CSV file: a few hot columns of every row are held in memory
// alongside the byte offset of the row they came from, and the remaining
// columns are re-read from disk on demand. This gives big, rarely-changing
// reference tables keyed lookups without importing them into a database or
// loading the whole file.
//
// A cache is built once, in a single pass over the file:
//
//	┌────────────────────┐
//	│ header row         │──── tokenized once, drives FullRecord decoding
//	├────────────────────┤
//	│ data row 0         │──── BuildFunc(line, offset) ──▶ partial record
//	│ data row 1         │──── BuildFunc(line, offset) ──▶ partial record
//	│ ...                │
//	└────────────────────┘
//
// The caller defines the partial-record type: a small struct with the
// cached columns plus the offset, satisfying Record by returning that
// offset. The offset's integer width is a type parameter — a table known
// to stay under 64 KiB can index with uint16 and pay two bytes per row.
//
// After Open the cache is frozen and safe for unsynchronized concurrent
// use. Find and FindKey scan the frozen records in file order (first
// match wins); FullRecord seeks back into the file on its own handle and
// decodes the complete row, so concurrent fetches never share a cursor.
//
// The source file must not change while a cache exists: offsets are
// positions in the file's exact byte content at build time, and nothing
// detects external modification. Rows must also be single-line — a quoted
// field containing a line break would split across offsets.
package csvcache
