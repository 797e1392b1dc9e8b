// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Height - number of edges on the longest path from the root to a
// leaf; both an empty tree and a single node give zero
func (tree *Tree[T]) Height() int {
	h := height(tree.root) - 1
	if h < 0 {
		return 0
	}
	return h
}

// internal: number of nodes on the longest path down from p
func height[T constraints.Ordered](p *node[T]) int {
	if nil == p {
		return 0
	}
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		return 1 + hl
	}
	return 1 + hr
}

// NumberOfNodes - count the reachable nodes, always equal to Size
func (tree *Tree[T]) NumberOfNodes() int {
	return countNodes(tree.root)
}

func countNodes[T constraints.Ordered](p *node[T]) int {
	if nil == p {
		return 0
	}
	return 1 + countNodes(p.left) + countNodes(p.right)
}

// IsBalanced - approximate balance test: true if the height is below
// 2·ln(n+1) - 1 for a tree of n nodes
func (tree *Tree[T]) IsBalanced() bool {
	n := tree.NumberOfNodes()
	return float64(tree.Height()) < 2*math.Log(float64(n+1))-1
}

// Rebalance - rebuild the tree to minimum height
//
// the middle value (index len/2) of the sorted contents becomes the
// root and each half is built the same way, so rebalancing an
// already rebalanced tree gives the same shape
func (tree *Tree[T]) Rebalance() {
	values := tree.InOrder()
	tree.Clear()
	tree.root = build(values)
	tree.size = len(values)
}

// internal: build a minimum height tree from sorted values
func build[T constraints.Ordered](values []T) *node[T] {
	if 0 == len(values) {
		return nil
	}
	mid := len(values) / 2
	p := newNode(values[mid])
	p.left = build(values[:mid])
	p.right = build(values[mid+1:])
	return p
}
