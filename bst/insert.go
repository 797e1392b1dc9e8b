// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Add - insert a new node into the tree
//
// duplicates are kept: an item equal to a node goes to its right
// sub-tree
func (tree *Tree[T]) Add(item T) {
	tree.size += 1

	if nil == tree.root {
		tree.root = newNode(item)
		return
	}

	p := tree.root
	for {
		if item < p.value {
			if nil == p.left {
				p.left = newNode(item)
				return
			}
			p = p.left
		} else {
			// greater or equal goes right
			if nil == p.right {
				p.right = newNode(item)
				return
			}
			p = p.right
		}
	}
}
