// Copyright 2026 The csvcache Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Command gen-csv writes a large CSV fixture to stdout: a header plus
// nRows rows of (id, name, description) with unique ids, for exercising
// cache builds and fetches against realistically-sized files.
package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

const (
	nRows     = 1000000
	prefix    = "name_"
	suffixLen = 16
)

func newRand() *rand.Rand {
	var seedBytes [8]byte
	crand.Read(seedBytes[:])
	seed := int64(binary.LittleEndian.Uint64(seedBytes[:]))
	return rand.New(rand.NewSource(seed))
}

func main() {
	rng := newRand()

	fmt.Println("id,name,description")
	for i := 0; i < nRows; i++ {
		var buf [suffixLen / 2]byte
		if _, err := rng.Read(buf[:]); err != nil {
			panic(err)
		}
		name := fmt.Sprintf("%s%x", prefix, buf)
		fmt.Printf("%d,%s,\"row %d of the generated table\"\n", i, name, i)
	}
}
