package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const helpText = "Available commands: (l)ist, search TERM, equip NAME, like TERM, categories, items CATEGORY, show N, toggle, sort COLUMN, reset, exit"

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Equip(ctx context.Context, name string) error
	Like(ctx context.Context, term string) error
	Categories(ctx context.Context) error
	Items(ctx context.Context, category string) error
	Show(ctx context.Context, n int) error
	Toggle(ctx context.Context) error
	Sort(ctx context.Context, column string) error
	Reset(ctx context.Context) error
}

// runREPL starts a read–eval–print loop over the dungeon browser.
//
// It reads a line from the scanner, takes the first token as the command
// and the rest of the line as its argument, and dispatches to a. The loop
// exits on scanner EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("compass %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		cmd, arg := splitCommand(scanner.Text())
		if cmd == "" {
			continue
		}

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, arg)

		case "equip":
			if arg == "" {
				printlnFn("usage: equip NAME")
				continue
			}
			_ = a.Equip(ctx, arg)

		case "like":
			_ = a.Like(ctx, arg)

		case "categories":
			_ = a.Categories(ctx)

		case "items":
			if arg == "" {
				printlnFn("usage: items CATEGORY")
				continue
			}
			_ = a.Items(ctx, arg)

		case "show":
			n, err := strconv.Atoi(arg)
			if err != nil {
				printlnFn("usage: show N")
				continue
			}
			_ = a.Show(ctx, n)

		case "toggle":
			_ = a.Toggle(ctx)

		case "sort":
			if arg == "" {
				printlnFn("usage: sort COLUMN")
				continue
			}
			_ = a.Sort(ctx, arg)

		case "reset":
			_ = a.Reset(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// splitCommand separates the command word from the rest of the line. The
// argument keeps its inner spacing so multi-word terms survive.
func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}
	cmd, arg, _ := strings.Cut(line, " ")
	return cmd, strings.TrimSpace(arg)
}
