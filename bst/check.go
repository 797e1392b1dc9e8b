// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/linkedbst/fault"
)

// CheckOrder - verify no left sub-tree holds a greater value and no
// right sub-tree a smaller value than its parent
//
// a value lifted by Remove can leave an equal value in the left
// sub-tree, so equality is accepted on both sides
//
// the error names the first offending node
func (tree *Tree[T]) CheckOrder() error {
	return checkOrder(tree.root, nil, nil)
}

// internal: consistency checker, both bounds are inclusive
func checkOrder[T constraints.Ordered](p *node[T], low *T, high *T) error {
	if nil == p {
		return nil
	}
	if nil != low && p.value < *low {
		return fmt.Errorf("node: %v  below lower bound: %v  error: %s", p.value, *low, fault.ErrTreeInconsistent)
	}
	if nil != high && p.value > *high {
		return fmt.Errorf("node: %v  above upper bound: %v  error: %s", p.value, *high, fault.ErrTreeInconsistent)
	}
	if err := checkOrder(p.left, low, &p.value); nil != err {
		return err
	}
	return checkOrder(p.right, &p.value, high)
}

// CheckCount - verify the size matches the number of reachable nodes
func (tree *Tree[T]) CheckCount() error {
	n := tree.NumberOfNodes()
	if n != tree.size {
		return fmt.Errorf("size: %d  but reachable nodes: %d  error: %s", tree.size, n, fault.ErrTreeInconsistent)
	}
	return nil
}
