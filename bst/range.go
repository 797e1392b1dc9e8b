// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// RangeFind - all values v with low <= v <= high in ascending order
func (tree *Tree[T]) RangeFind(low T, high T) []T {
	values := []T{}
	for _, v := range tree.InOrder() {
		if low <= v && v <= high {
			values = append(values, v)
		}
	}
	return values
}

// Successor - the smallest value strictly greater than item, false if
// there is none
//
// a linear scan: every node is examined once
func (tree *Tree[T]) Successor(item T) (T, bool) {
	var best T
	found := false
	it := tree.Iterator()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if v > item && (!found || v < best) {
			best = v
			found = true
		}
	}
	return best, found
}

// Predecessor - the largest value strictly less than item, false if
// there is none
func (tree *Tree[T]) Predecessor(item T) (T, bool) {
	var best T
	found := false
	it := tree.Iterator()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if v < item && (!found || v > best) {
			best = v
			found = true
		}
	}
	return best, found
}
