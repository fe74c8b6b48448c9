// Copyright 2026 The csvcache Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package csvcache

import (
	"encoding/csv"
	"strings"
)

// Fields tokenizes one CSV row into its column values, honoring standard
// quoting and escaping. It is the tokenizer BuildFuncs typically reach
// for to pull out the columns worth caching.
func Fields(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	return r.Read()
}
