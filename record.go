// Copyright 2026 The csvcache Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package csvcache

import "golang.org/x/exp/constraints"

// Offset bounds the unsigned integer types usable as a row offset. The
// caller picks the narrowest width whose range exceeds the source file's
// size: a uint16 offset caps the usable file at 65,535 bytes, a uint32 at
// 4 GiB. Open fails with ErrOffsetOverflow rather than wrap when a row
// starts past the chosen type's range.
type Offset interface {
	constraints.Unsigned
}

// Record is the capability a partial-record type must provide: handing
// back the byte offset it was built from. Together with the BuildFunc
// given to Open it forms the partial-record factory — Go splits the two
// because interfaces cannot carry constructors.
type Record[O Offset] interface {
	// Offset returns the byte position of the source row's first byte.
	Offset() O
}

// BuildFunc constructs one partial record from a raw data row and the
// offset of its first byte. It is called once per row during Open, in
// file order, and must be deterministic and side-effect-free. Any column
// extraction the caller wants cached happens here, typically via Fields.
// Returning an error aborts the whole build.
type BuildFunc[T Record[O], O Offset] func(line string, off O) (T, error)
