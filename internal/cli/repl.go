package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isAdmin() bool
	Search(ctx context.Context, handle string) error
	Find(ctx context.Context, query string) error
	Add(ctx context.Context) error
	List(ctx context.Context) error
	StatsCmd(ctx context.Context) error
	Export(ctx context.Context, format, path string) error
	Admin(ctx context.Context) error
	Check(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the directory CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	help                 — show available commands
//	search <handle>      — exact handle lookup (case-insensitive)
//	find <text>          — free-text search over names and handles
//	add                  — register a new entry (interactive)
//	list                 — print the full roster
//	stats                — roster totals
//	export csv|json [f]  — dump the roster, to a file when f is given
//	admin                — unlock admin mode (prompts for the secret)
//	check                — backing store connectivity check
//	exit | quit          — leave the program
//
// Any errors returned by command handlers are ignored here; handlers
// print their own messages. This keeps the REPL loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("hub%s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: search <handle>, find <text>, add, list, stats, export csv|json [file], admin, check, exit")

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "find":
			_ = a.Find(ctx, strings.Join(args, " "))

		case "add":
			_ = a.Add(ctx)

		case "list":
			_ = a.List(ctx)

		case "stats":
			_ = a.StatsCmd(ctx)

		case "export":
			format, path := "csv", ""
			if len(args) > 0 {
				format = args[0]
			}
			if len(args) > 1 {
				path = args[1]
			}
			_ = a.Export(ctx, format, path)

		case "admin":
			_ = a.Admin(ctx)

		case "check":
			_ = a.Check(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command: " + cmd)
		}
	}
}
