// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/linkedbst/bst"
	"github.com/bitmark-inc/linkedbst/fault"
)

// convert a command argument to a tree item
type parser[T constraints.Ordered] func(string) (T, error)

func parseString(s string) (string, error) {
	return s, nil
}

func parseInteger(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if nil != err {
		return 0, fault.ErrInvalidItem
	}
	return n, nil
}

// runs commands against a single tree
type shell[T constraints.Ordered] struct {
	tree  *bst.Tree[T]
	parse parser[T]
	log   *logger.L
	out   io.Writer
}

func newShell[T constraints.Ordered](tree *bst.Tree[T], parse parser[T], log *logger.L, out io.Writer) *shell[T] {
	return &shell[T]{
		tree:  tree,
		parse: parse,
		log:   log,
		out:   out,
	}
}

// build a tree from textual items
func loadTree[T constraints.Ordered](items []string, parse parser[T], rebalance bool) (*bst.Tree[T], error) {
	tree := bst.New[T]()
	for i, s := range items {
		item, err := parse(s)
		if nil != err {
			return nil, fmt.Errorf("item[%d]: %q  error: %s", i, s, err)
		}
		tree.Add(item)
	}
	if rebalance {
		tree.Rebalance()
	}
	return tree, nil
}

// runScript - execute one command per line, blank lines and lines
// starting with '#' are ignored
//
// a failing command is reported and the script continues
func (sh *shell[T]) runScript(r io.Reader) error {
	failures := 0
	lineNumber := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNumber += 1
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}

		words := strings.Fields(line)
		if err := sh.run(words[0], words[1:]); nil != err {
			sh.log.Warnf("line: %d  command: %q  error: %s", lineNumber, line, err)
			fmt.Fprintf(sh.out, "error: line %d: %s\n", lineNumber, err)
			failures += 1
		}
	}
	if err := scanner.Err(); nil != err {
		return err
	}

	sh.log.Infof("script: %d lines  failures: %d", lineNumber, failures)
	if 0 != failures {
		return fault.ErrScriptFailed
	}
	return nil
}

// run a single command
func (sh *shell[T]) run(command string, arguments []string) error {
	sh.log.Debugf("command: %q  arguments: %q", command, arguments)

	tree := sh.tree

	switch command {

	case "add", "a":
		items, err := sh.items(arguments, 1)
		if nil != err {
			return err
		}
		for _, item := range items {
			tree.Add(item)
		}
		fmt.Fprintf(sh.out, "size: %d\n", tree.Size())

	case "remove", "rm":
		items, err := sh.items(arguments, 1)
		if nil != err {
			return err
		}

		// all or nothing: every copy asked for must be present
		wanted := make(map[T]int)
		for _, item := range items {
			wanted[item] += 1
		}
		for item, n := range wanted {
			if !tree.Contains(item) || len(tree.RangeFind(item, item)) < n {
				return fault.ErrItemNotFound
			}
		}

		for _, item := range items {
			value, err := tree.Remove(item)
			if nil != err {
				return err
			}
			fmt.Fprintf(sh.out, "removed: %v\n", value)
		}

	case "find", "f":
		item, err := sh.item(arguments)
		if nil != err {
			return err
		}
		if value, found := tree.Find(item); found {
			fmt.Fprintf(sh.out, "found: %v\n", value)
		} else {
			fmt.Fprintf(sh.out, "not found: %v\n", item)
		}

	case "contains":
		item, err := sh.item(arguments)
		if nil != err {
			return err
		}
		fmt.Fprintf(sh.out, "%t\n", tree.Contains(item))

	case "replace":
		items, err := sh.items(arguments, 2)
		if nil != err {
			return err
		}
		if 2 != len(items) {
			return fault.ErrMissingArgument
		}
		if old, found := tree.Replace(items[0], items[1]); found {
			fmt.Fprintf(sh.out, "replaced: %v → %v\n", old, items[1])
		} else {
			fmt.Fprintf(sh.out, "not found: %v\n", items[0])
		}

	case "inorder", "list", "l":
		sh.values(tree.InOrder())

	case "preorder":
		sh.values(tree.PreOrder())

	case "postorder":
		sh.values(tree.PostOrder())

	case "levelorder":
		sh.values(tree.LevelOrder())

	case "range":
		items, err := sh.items(arguments, 2)
		if nil != err {
			return err
		}
		if 2 != len(items) {
			return fault.ErrMissingArgument
		}
		sh.values(tree.RangeFind(items[0], items[1]))

	case "first":
		sh.optional(tree.First())

	case "last":
		sh.optional(tree.Last())

	case "depth":
		if 1 != len(arguments) {
			return fault.ErrMissingArgument
		}
		depth, err := strconv.Atoi(arguments[0])
		if nil != err || depth < 0 {
			return fault.ErrInvalidDepth
		}
		sh.values(tree.ValuesByDepth(depth))

	case "successor", "next":
		item, err := sh.item(arguments)
		if nil != err {
			return err
		}
		sh.optional(tree.Successor(item))

	case "predecessor", "prev":
		item, err := sh.item(arguments)
		if nil != err {
			return err
		}
		sh.optional(tree.Predecessor(item))

	case "height":
		fmt.Fprintf(sh.out, "%d\n", tree.Height())

	case "nodes":
		fmt.Fprintf(sh.out, "%d\n", tree.NumberOfNodes())

	case "size":
		fmt.Fprintf(sh.out, "%d\n", tree.Size())

	case "balanced":
		fmt.Fprintf(sh.out, "%t\n", tree.IsBalanced())

	case "rebalance":
		before := tree.Height()
		tree.Rebalance()
		sh.log.Infof("rebalance: height: %d → %d", before, tree.Height())
		fmt.Fprintf(sh.out, "height: %d\n", tree.Height())

	case "clear":
		tree.Clear()
		fmt.Fprintf(sh.out, "size: %d\n", tree.Size())

	case "print", "p":
		fmt.Fprint(sh.out, tree.String())

	case "draw":
		depth := tree.Fprint(sh.out)
		fmt.Fprintf(sh.out, "depth: %d\n", depth)

	case "check":
		for _, check := range []func() error{tree.CheckOrder, tree.CheckCount} {
			if err := check(); nil != err {
				sh.log.Warnf("check: %s", err)
				fmt.Fprintf(sh.out, "%s\n", err)
				return fault.ErrTreeInconsistent
			}
		}
		fmt.Fprintf(sh.out, "ok\n")

	case "help", "h", "?":
		shellUsage(sh.out)

	default:
		return fault.ErrUnknownCommand
	}
	return nil
}

// exactly one item argument
func (sh *shell[T]) item(arguments []string) (T, error) {
	if 1 != len(arguments) {
		var zero T
		return zero, fault.ErrMissingArgument
	}
	return sh.parse(arguments[0])
}

// at least minimum item arguments
func (sh *shell[T]) items(arguments []string, minimum int) ([]T, error) {
	if len(arguments) < minimum {
		return nil, fault.ErrMissingArgument
	}
	items := make([]T, 0, len(arguments))
	for _, s := range arguments {
		item, err := sh.parse(s)
		if nil != err {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (sh *shell[T]) values(values []T) {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = fmt.Sprint(v)
	}
	fmt.Fprintf(sh.out, "%s\n", strings.Join(s, " "))
}

func (sh *shell[T]) optional(value T, found bool) {
	if found {
		fmt.Fprintf(sh.out, "%v\n", value)
	} else {
		fmt.Fprintf(sh.out, "none\n")
	}
}
