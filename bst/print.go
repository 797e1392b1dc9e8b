// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/constraints"
)

// String - the tree rotated 90 degrees counter-clockwise, one value
// per line indented by "| " for each level
func (tree *Tree[T]) String() string {
	var b strings.Builder
	rotated(&b, tree.root, 0)
	return b.String()
}

func rotated[T constraints.Ordered](b *strings.Builder, p *node[T], level int) {
	if nil == p {
		return
	}
	rotated(b, p.right, level+1)
	b.WriteString(strings.Repeat("| ", level))
	fmt.Fprintf(b, "%v\n", p.value)
	rotated(b, p.left, level+1)
}

// Print - display an ASCII graphic representation of the tree on
// standard output, returns the depth
func (tree *Tree[T]) Print() int {
	return tree.Fprint(os.Stdout)
}

// Fprint - write an ASCII graphic representation of the tree,
// returns the maximum depth
func (tree *Tree[T]) Fprint(w io.Writer) int {
	return printTree(w, tree.root, "", root)
}

// internal print - returns the maximum depth of the tree
func printTree[T constraints.Ordered](w io.Writer, p *node[T], prefix string, br branch) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v\n", p.value)
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
