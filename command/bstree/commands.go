// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(w io.Writer, program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Fprintf(w, "%s\n", version)
		return true

	case "help", "h", "?":
		usage(w, program)
		return true

	default:
		return false
	}
}

func usage(w io.Writer, program string) {
	fmt.Fprintf(w, "usage: %s [--help] [--verbose] [--version] --config-file=FILE [--script=FILE] [command arguments...]\n", program)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "the tree is built from the configuration items, then either the script\n")
	fmt.Fprintf(w, "file (one command per line) or the single command is run\n")
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  version                    (v)      - display version string\n")
	fmt.Fprintf(w, "\n")
	shellUsage(w)
}

func shellUsage(w io.Writer) {
	fmt.Fprintf(w, "supported commands:\n\n")
	fmt.Fprintf(w, "  help                       (h)      - display this message\n")
	fmt.Fprintf(w, "  add ITEM...                (a)      - add items, duplicates allowed\n")
	fmt.Fprintf(w, "  remove ITEM...             (rm)     - remove one copy of each item, nothing if any is missing\n")
	fmt.Fprintf(w, "  find ITEM                  (f)      - look up an item\n")
	fmt.Fprintf(w, "  contains ITEM                       - true if item is present\n")
	fmt.Fprintf(w, "  replace ITEM NEW                    - overwrite a value in place (ordering is not checked)\n")
	fmt.Fprintf(w, "  inorder                    (list)   - items in ascending order\n")
	fmt.Fprintf(w, "  preorder                            - items in pre-order\n")
	fmt.Fprintf(w, "  postorder                           - items in post-order\n")
	fmt.Fprintf(w, "  levelorder                          - items breadth first\n")
	fmt.Fprintf(w, "  range LOW HIGH                      - items from LOW to HIGH inclusive\n")
	fmt.Fprintf(w, "  first                               - lowest item\n")
	fmt.Fprintf(w, "  last                                - highest item\n")
	fmt.Fprintf(w, "  depth N                             - items N levels below the root, left to right\n")
	fmt.Fprintf(w, "  successor ITEM             (next)   - smallest item greater than ITEM\n")
	fmt.Fprintf(w, "  predecessor ITEM           (prev)   - largest item less than ITEM\n")
	fmt.Fprintf(w, "  height                              - edges on the longest path\n")
	fmt.Fprintf(w, "  nodes                               - count of reachable nodes\n")
	fmt.Fprintf(w, "  size                                - number of items\n")
	fmt.Fprintf(w, "  balanced                            - approximate balance test\n")
	fmt.Fprintf(w, "  rebalance                           - rebuild to minimum height\n")
	fmt.Fprintf(w, "  clear                               - remove all items\n")
	fmt.Fprintf(w, "  print                      (p)      - tree rotated counter-clockwise\n")
	fmt.Fprintf(w, "  draw                                - tree with branch graphics\n")
	fmt.Fprintf(w, "  check                               - verify ordering and size\n")
	fmt.Fprintf(w, "\n")
}
