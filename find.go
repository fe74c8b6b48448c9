// Copyright 2026 The csvcache Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package csvcache

// Find scans the cached records in file order and returns a pointer to
// the first one matching pred, or nil if none match. The scan is linear:
// the cache does not assume the source rows are ordered by any key.
// Duplicate keys therefore resolve to the earliest row in the file.
//
// The returned pointer refers into the cache's frozen store and stays
// valid for the cache's lifetime; callers must not mutate through it.
func (c *Cache[T, O]) Find(pred func(*T) bool) *T {
	for i := range c.records {
		if pred(&c.records[i]) {
			return &c.records[i]
		}
	}
	return nil
}

// FindKey returns the first record whose projected key equals key, or nil
// if no cached row carries it. keyFn maps a partial record to its
// comparable key and is called once per scanned record.
//
// This is a free function rather than a method so the key type can be a
// type parameter.
func FindKey[K comparable, T Record[O], O Offset](c *Cache[T, O], key K, keyFn func(*T) K) *T {
	return c.Find(func(rec *T) bool {
		return keyFn(rec) == key
	})
}
