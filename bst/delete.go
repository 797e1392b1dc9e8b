// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/linkedbst/fault"
)

// which link of the parent holds the current node
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Remove - removes one node equal to item from the tree and returns
// its value
//
// when several nodes hold equal values the one nearest the root is
// removed.  If the item is not present the tree is unchanged and
// fault.ErrItemNotFound is returned
func (tree *Tree[T]) Remove(item T) (T, error) {
	if !tree.Contains(item) {
		var zero T
		return zero, fault.ErrItemNotFound
	}

	// sentinel so that removing the root is the same as any other
	// left link
	preRoot := &node[T]{left: tree.root}
	parent := preRoot
	br := left
	p := tree.root

search:
	for nil != p {
		switch {
		case p.value == item:
			break search
		case p.value > item:
			parent = p
			br = left
			p = p.left
		default:
			parent = p
			br = right
			p = p.right
		}
	}

	removed := p.value

	if nil != p.left && nil != p.right {
		liftMax(p)
	} else {
		child := p.right
		if nil == p.right {
			child = p.left
		}
		if left == br {
			parent.left = child
		} else {
			parent.right = child
		}
	}

	tree.root = preRoot.left
	tree.size -= 1
	return removed, nil
}

// replace the value of top with the maximum value in its left
// sub-tree then splice out the node that held the maximum
//
// top must have a left child
func liftMax[T constraints.Ordered](top *node[T]) {
	parent := top
	p := top.left
	for nil != p.right {
		parent = p
		p = p.right
	}
	top.value = p.value

	// the maximum has no right child
	if parent == top {
		top.left = p.left
	} else {
		parent.right = p.left
	}
}
