// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - a link based binary search tree with explicit
// on-demand rebalancing
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or guard the whole tree with one
//       mutex/rwmutex.  Remove and Rebalance touch arbitrary parts of
//       the structure so per-node locking is not possible.
//
// Values less than a node are kept in its left sub-tree and values
// greater than or equal to it in the right sub-tree, so duplicates
// are allowed and always descend to the right.
//
// The tree never rebalances itself; call Rebalance to rebuild a
// minimum height tree from the current contents.
package bst
