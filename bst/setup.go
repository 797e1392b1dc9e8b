// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"golang.org/x/exp/constraints"
)

// Tree - type to hold the root node of a tree
type Tree[T constraints.Ordered] struct {
	root *node[T]
	size int
}

// New - create a tree containing the given items, each added in
// order with Add
func New[T constraints.Ordered](items ...T) *Tree[T] {
	tree := &Tree[T]{
		root: nil,
		size: 0,
	}
	for _, item := range items {
		tree.Add(item)
	}
	return tree
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return 0 == tree.size
}

// Size - number of items currently in the tree
func (tree *Tree[T]) Size() int {
	return tree.size
}

// Clear - make the tree empty
func (tree *Tree[T]) Clear() {
	tree.root = nil
	tree.size = 0
}

// First - return the lowest value, false if tree is empty
func (tree *Tree[T]) First() (T, bool) {
	p := tree.root.first()
	if nil == p {
		var zero T
		return zero, false
	}
	return p.value, true
}

// Last - return the highest value, false if tree is empty
func (tree *Tree[T]) Last() (T, bool) {
	p := tree.root.last()
	if nil == p {
		var zero T
		return zero, false
	}
	return p.value, true
}
