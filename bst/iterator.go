// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"golang.org/x/exp/constraints"
)

// Iterator - pre-order walk of a tree using an explicit stack
//
// the tree must not be modified while an iterator is in use
type Iterator[T constraints.Ordered] struct {
	stack []*node[T]
}

// Iterator - return a new pre-order iterator positioned before the
// root; each call starts a fresh walk
func (tree *Tree[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{}
	if nil != tree.root {
		it.stack = append(it.stack, tree.root)
	}
	return it
}

// Next - return the next value, false when the walk is complete
func (it *Iterator[T]) Next() (T, bool) {
	n := len(it.stack)
	if 0 == n {
		var zero T
		return zero, false
	}
	p := it.stack[n-1]
	it.stack[n-1] = nil
	it.stack = it.stack[:n-1]

	// right is pushed first so that left is popped next
	if nil != p.right {
		it.stack = append(it.stack, p.right)
	}
	if nil != p.left {
		it.stack = append(it.stack, p.left)
	}
	return p.value, true
}

// PreOrder - all values in node, left, right order
func (tree *Tree[T]) PreOrder() []T {
	values := make([]T, 0, tree.size)
	it := tree.Iterator()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		values = append(values, v)
	}
	return values
}

// InOrder - all values in ascending order
func (tree *Tree[T]) InOrder() []T {
	values := make([]T, 0, tree.size)
	return inOrder(tree.root, values)
}

func inOrder[T constraints.Ordered](p *node[T], values []T) []T {
	if nil == p {
		return values
	}
	values = inOrder(p.left, values)
	values = append(values, p.value)
	return inOrder(p.right, values)
}

// PostOrder - all values in left, right, node order
func (tree *Tree[T]) PostOrder() []T {
	values := make([]T, 0, tree.size)
	return postOrder(tree.root, values)
}

func postOrder[T constraints.Ordered](p *node[T], values []T) []T {
	if nil == p {
		return values
	}
	values = postOrder(p.left, values)
	values = postOrder(p.right, values)
	return append(values, p.value)
}

// LevelOrder - all values breadth first, each level from left to
// right
func (tree *Tree[T]) LevelOrder() []T {
	values := make([]T, 0, tree.size)
	if nil == tree.root {
		return values
	}
	queue := []*node[T]{tree.root}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		values = append(values, p.value)
		if nil != p.left {
			queue = append(queue, p.left)
		}
		if nil != p.right {
			queue = append(queue, p.right)
		}
	}
	return values
}

// ValuesByDepth - values of all nodes at a specific depth, left to
// right; the root is at depth zero
func (tree *Tree[T]) ValuesByDepth(depth int) []T {
	return valuesByDepth(tree.root, depth, []T{})
}

func valuesByDepth[T constraints.Ordered](p *node[T], depth int, values []T) []T {
	if nil == p || depth < 0 {
		return values
	}
	if 0 == depth {
		return append(values, p.value)
	}
	values = valuesByDepth(p.left, depth-1, values)
	return valuesByDepth(p.right, depth-1, values)
}
