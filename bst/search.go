// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Find - return the stored value equal to item, false if not present
func (tree *Tree[T]) Find(item T) (T, bool) {
	p := tree.root
	for nil != p {
		switch {
		case item == p.value:
			return p.value, true
		case item < p.value:
			p = p.left
		default:
			p = p.right
		}
	}
	var zero T
	return zero, false
}

// Contains - true if item is in the tree
func (tree *Tree[T]) Contains(item T) bool {
	_, found := tree.Find(item)
	return found
}

// Replace - overwrite the value of the node equal to item with
// newItem and return the previous value, false if not present
//
// the node is not moved, so a newItem that does not sort to the same
// position breaks the ordering of the tree; use Remove followed by
// Add for an ordered update
func (tree *Tree[T]) Replace(item T, newItem T) (T, bool) {
	p := tree.root
	for nil != p {
		switch {
		case p.value == item:
			old := p.value
			p.value = newItem
			return old, true
		case p.value > item:
			p = p.left
		default:
			p = p.right
		}
	}
	var zero T
	return zero, false
}
