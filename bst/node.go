// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"golang.org/x/exp/constraints"
)

// a node in the tree
type node[T constraints.Ordered] struct {
	left  *node[T] // left sub-tree: values < value
	right *node[T] // right sub-tree: values >= value
	value T
}

// allocate a new leaf node
func newNode[T constraints.Ordered](value T) *node[T] {
	return &node[T]{
		value: value,
	}
}

// internal: highest node in a sub-tree
func (p *node[T]) last() *node[T] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// internal: lowest node in a sub-tree
func (p *node[T]) first() *node[T] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}
