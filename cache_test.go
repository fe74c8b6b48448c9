// Copyright 2026 The csvcache Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package csvcache

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// statusPartial caches the code and name columns of a status-code table.
type statusPartial struct {
	code uint16
	name string
	off  uint32
}

func (p statusPartial) Offset() uint32 { return p.off }

func newStatusPartial(line string, off uint32) (statusPartial, error) {
	fields, err := Fields(line)
	if err != nil {
		return statusPartial{}, err
	}
	if len(fields) < 2 {
		return statusPartial{}, fmt.Errorf("want at least 2 fields, got %d", len(fields))
	}
	code, err := strconv.ParseUint(fields[0], 10, 16)
	if err != nil {
		return statusPartial{}, err
	}
	return statusPartial{code: uint16(code), name: fields[1], off: off}, nil
}

// statusFull is the complete row, decoded on demand.
type statusFull struct {
	Code        int    `csv:"code"`
	Name        string `csv:"name"`
	Description string `csv:"description"`
}

const statusCSV = "code,name,description\n" +
	"100,Continue,\"Client should continue, with the request\"\n" +
	"101,Switching Protocols,Server is switching protocols\n" +
	"102,Processing,Server has received and is processing the request\n" +
	"200,OK,Standard response for successful requests"

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "status.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func openStatus(t *testing.T, content string) *Cache[statusPartial, uint32] {
	t.Helper()
	c, err := Open(writeFile(t, content), newStatusPartial)
	require.NoError(t, err)
	return c
}

// dataOffsets returns the byte offset of every data line's first byte,
// computed independently of the scanner.
func dataOffsets(content string) []uint64 {
	var offs []uint64
	off := uint64(0)
	for i, line := range strings.SplitAfter(content, "\n") {
		if line == "" {
			break
		}
		if i > 0 {
			offs = append(offs, off)
		}
		off += uint64(len(line))
	}
	return offs
}

func TestOpenPreservesRowOrder(t *testing.T) {
	c := openStatus(t, statusCSV)
	require.Equal(t, 4, c.Len())

	wantNames := []string{"Continue", "Switching Protocols", "Processing", "OK"}
	for i, want := range wantNames {
		require.Equal(t, want, c.At(i).name)
	}
	require.Equal(t, []string{"code", "name", "description"}, c.Header())
}

func TestOpenOffsets(t *testing.T) {
	c := openStatus(t, statusCSV)
	want := dataOffsets(statusCSV)
	require.Len(t, want, c.Len())

	prev := int64(-1)
	for i := 0; i < c.Len(); i++ {
		off := uint64(c.At(i).Offset())
		require.Equal(t, want[i], off, "row %d", i)
		require.Greater(t, int64(off), prev, "offsets must be strictly increasing")
		prev = int64(off)
	}
}

func TestOpenCRLFOffsets(t *testing.T) {
	const crlf = "code,name\r\n100,Continue\r\n101,Switching Protocols\r\n"
	c := openStatus(t, crlf)
	require.Equal(t, 2, c.Len())
	require.Equal(t, uint32(11), c.At(0).Offset())
	require.Equal(t, uint32(25), c.At(1).Offset())
	require.Equal(t, "Continue", c.At(0).name)
}

func TestOpenHeaderOnly(t *testing.T) {
	for _, content := range []string{"code,name,description\n", "code,name,description"} {
		c, err := Open(writeFile(t, content), newStatusPartial)
		require.NoError(t, err)
		require.Equal(t, 0, c.Len())
	}
}

func TestOpenEmptyFile(t *testing.T) {
	_, err := Open(writeFile(t, ""), newStatusPartial)
	require.ErrorIs(t, err, ErrMissingHeader)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.csv"), newStatusPartial)
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenMalformedRow(t *testing.T) {
	const bad = "code,name,description\n" +
		"100,Continue,fine\n" +
		"101,\"unterminated,oops\n" +
		"102,Processing,fine\n"
	path := writeFile(t, bad)

	c, err := Open(path, newStatusPartial)
	require.Nil(t, c)

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	require.Equal(t, path, rowErr.Path)
	require.Equal(t, 3, rowErr.Line)
	require.Equal(t, uint64(len("code,name,description\n100,Continue,fine\n")), rowErr.Offset)
}

func TestOpenFactoryError(t *testing.T) {
	const bad = "code,name,description\n" +
		"abc,NotANumber,nope\n"

	c, err := Open(writeFile(t, bad), newStatusPartial)
	require.Nil(t, c)

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	require.Equal(t, 2, rowErr.Line)
	var numErr *strconv.NumError
	require.ErrorAs(t, err, &numErr)
}

// tinyPartial indexes with a uint8 offset, so rows past byte 255 must
// fail the build instead of silently wrapping.
type tinyPartial struct {
	name string
	off  uint8
}

func (p tinyPartial) Offset() uint8 { return p.off }

func TestOpenOffsetOverflow(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("name,filler\n")
	for i := 0; i < 4; i++ {
		fmt.Fprintf(&sb, "row%d,%s\n", i, strings.Repeat("x", 90))
	}

	_, err := Open(writeFile(t, sb.String()), func(line string, off uint8) (tinyPartial, error) {
		fields, err := Fields(line)
		if err != nil {
			return tinyPartial{}, err
		}
		return tinyPartial{name: fields[0], off: off}, nil
	})
	require.ErrorIs(t, err, ErrOffsetOverflow)

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	require.Greater(t, rowErr.Offset, uint64(255))
}

func TestFindKey(t *testing.T) {
	c := openStatus(t, statusCSV)

	byCode := func(p *statusPartial) uint16 { return p.code }

	got := FindKey(c, uint16(101), byCode)
	require.NotNil(t, got)
	require.Equal(t, "Switching Protocols", got.name)

	require.Nil(t, FindKey(c, uint16(999), byCode))
}

func TestFindByName(t *testing.T) {
	c := openStatus(t, statusCSV)

	got := c.Find(func(p *statusPartial) bool { return p.name == "Processing" })
	require.NotNil(t, got)
	require.Equal(t, uint16(102), got.code)

	require.Nil(t, c.Find(func(p *statusPartial) bool { return false }))
}

func TestFindFirstMatchWins(t *testing.T) {
	const dup = "code,name,description\n" +
		"100,First,first occurrence\n" +
		"101,Other,unrelated\n" +
		"100,Second,duplicate key\n"
	c := openStatus(t, dup)

	got := FindKey(c, uint16(100), func(p *statusPartial) uint16 { return p.code })
	require.NotNil(t, got)
	require.Equal(t, "First", got.name)
	require.Equal(t, got, c.At(0))
}

func BenchmarkFindKey(b *testing.B) {
	var sb strings.Builder
	sb.WriteString("code,name,description\n")
	for i := 0; i < 10000; i++ {
		fmt.Fprintf(&sb, "%d,name_%d,description of row %d\n", i, i, i)
	}
	path := filepath.Join(b.TempDir(), "bench.csv")
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		b.Fatal(err)
	}
	c, err := Open(path, newStatusPartial)
	if err != nil {
		b.Fatal(err)
	}

	byCode := func(p *statusPartial) uint16 { return p.code }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if FindKey(c, uint16(i%10000), byCode) == nil {
			b.Fatal("missing key")
		}
	}
}
