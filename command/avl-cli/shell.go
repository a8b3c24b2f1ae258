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

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
)

// a line oriented command interpreter over a single tree
type shell[T any] struct {
	tree    *avl.Tree[T]
	parse   func(string) (T, error)
	out     io.Writer
	log     *logger.L
	verbose bool // print includes node data
	quiet   bool // no confirmation for insert/delete
}

func newShell[T any](tree *avl.Tree[T], parse func(string) (T, error), out io.Writer, log *logger.L) *shell[T] {
	return &shell[T]{
		tree:  tree,
		parse: parse,
		out:   out,
		log:   log,
	}
}

// value parsers for the supported key types
func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if nil != err {
		return 0, fault.ErrValueParseFail
	}
	return n, nil
}

func parseString(s string) (string, error) {
	return s, nil
}

var shellHelp = [][2]string{
	{"insert VALUE...", "add values, existing values are ignored"},
	{"delete VALUE...", "remove values (alias: remove)"},
	{"contains VALUE", "true if the value is present"},
	{"size", "number of values"},
	{"empty", "true if there are no values"},
	{"clear", "remove all values"},
	{"first | last", "lowest or highest value"},
	{"get INDEX", "value at a zero based sorted index"},
	{"index VALUE", "sorted index of a value"},
	{"preorder | inorder | postorder", "list values in tree order"},
	{"reverse", "list values in descending order"},
	{"print", "draw the tree"},
	{"check", "verify the tree invariants"},
	{"stats", "node allocation counters"},
	{"help", "display this message"},
}

func printShellHelp(w io.Writer) {
	for _, h := range shellHelp {
		fmt.Fprintf(w, "  %-32s - %s\n", h[0], h[1])
	}
}

// run - execute every line from the reader, errors in a command are
// reported and processing continues
func (sh *shell[T]) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		sh.log.Debugf("line: %d  command: %q", lineNumber, line)
		if err := sh.execute(line); nil != err {
			sh.log.Warnf("line: %d  command: %q  error: %s", lineNumber, line, err)
			fmt.Fprintf(sh.out, "error: %s\n", err)
		}
	}
	if err := scanner.Err(); nil != err {
		fault.Critical("shell: input read failed")
		sh.log.Errorf("line: %d  read error: %s", lineNumber, err)
		return err
	}
	return nil
}

// execute - perform one command
func (sh *shell[T]) execute(line string) error {
	words := strings.Fields(line)
	command := strings.ToLower(words[0])
	arguments := words[1:]

	switch command {
	case "insert", "add":
		return sh.eachValue(arguments, func(s string, v T) {
			if sh.tree.Insert(v) {
				sh.confirm("inserted: %s", s)
			} else {
				sh.confirm("present: %s", s)
			}
		})

	case "delete", "remove":
		return sh.eachValue(arguments, func(s string, v T) {
			if sh.tree.Delete(v) {
				sh.confirm("deleted: %s", s)
			} else {
				sh.confirm("absent: %s", s)
			}
		})

	case "contains":
		return sh.oneValue(arguments, func(v T) {
			fmt.Fprintf(sh.out, "%t\n", sh.tree.Contains(v))
		})

	case "size", "count":
		fmt.Fprintf(sh.out, "%d\n", sh.tree.Count())

	case "empty":
		fmt.Fprintf(sh.out, "%t\n", sh.tree.IsEmpty())

	case "clear":
		sh.tree.Clear()
		sh.confirm("cleared")

	case "first":
		sh.printOptional(sh.tree.First())

	case "last":
		sh.printOptional(sh.tree.Last())

	case "get":
		if 1 != len(arguments) {
			return fault.ErrMissingParameters
		}
		index, err := strconv.Atoi(arguments[0])
		if nil != err {
			return fault.ErrValueParseFail
		}
		sh.printOptional(sh.tree.Get(index))

	case "index":
		return sh.oneValue(arguments, func(v T) {
			if index, found := sh.tree.Search(v); found {
				fmt.Fprintf(sh.out, "%d\n", index)
			} else {
				fmt.Fprintf(sh.out, "absent\n")
			}
		})

	case "preorder", "inorder", "postorder":
		order, err := avl.ParseOrder(command)
		if nil != err {
			return err
		}
		values := make([]string, 0, sh.tree.Count())
		sh.tree.Traverse(order, func(v T) {
			values = append(values, fmt.Sprint(v))
		})
		fmt.Fprintf(sh.out, "%s\n", strings.Join(values, " "))

	case "reverse":
		values := make([]string, 0, sh.tree.Count())
		for v := range sh.tree.Backward() {
			values = append(values, fmt.Sprint(v))
		}
		fmt.Fprintf(sh.out, "%s\n", strings.Join(values, " "))

	case "print":
		depth := sh.tree.Print(sh.out, sh.verbose)
		sh.log.Debugf("print depth: %d", depth)

	case "check":
		if err := sh.tree.Check(); nil != err {
			fault.Criticalf("tree check failed: %s", err)
			return err
		}
		fmt.Fprintf(sh.out, "ok\n")

	case "stats":
		s := sh.tree.Stats()
		fmt.Fprintf(sh.out, "allocated: %d  reused: %d  released: %d  pooled: %d\n", s.Allocated, s.Reused, s.Released, s.Pooled)

	case "help", "?":
		printShellHelp(sh.out)

	default:
		return fault.ErrUnknownCommand
	}
	return nil
}

// parse all arguments before applying any of them
func (sh *shell[T]) eachValue(arguments []string, f func(string, T)) error {
	if 0 == len(arguments) {
		return fault.ErrMissingParameters
	}
	values := make([]T, len(arguments))
	for i, s := range arguments {
		v, err := sh.parse(s)
		if nil != err {
			return err
		}
		values[i] = v
	}
	for i, v := range values {
		f(arguments[i], v)
	}
	return nil
}

func (sh *shell[T]) oneValue(arguments []string, f func(T)) error {
	if 1 != len(arguments) {
		return fault.ErrMissingParameters
	}
	v, err := sh.parse(arguments[0])
	if nil != err {
		return err
	}
	f(v)
	return nil
}

func (sh *shell[T]) printOptional(v T, ok bool) {
	if ok {
		fmt.Fprintf(sh.out, "%v\n", v)
	} else {
		fmt.Fprintf(sh.out, "none\n")
	}
}

func (sh *shell[T]) confirm(format string, arguments ...interface{}) {
	if sh.quiet {
		return
	}
	fmt.Fprintf(sh.out, format+"\n", arguments...)
}
