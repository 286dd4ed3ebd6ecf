package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Popular(ctx context.Context) error
	Categories(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the timediary CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a' with the remaining tokens as
// arguments. Unknown commands are reported back to the user. The loop exits
// on scanner EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always available:
//	  - help                 — show available commands
//	  - list [category]      — list latest diaries, optionally by category
//	  - popular              — list diaries by view count
//	  - show <id>            — open a diary (counts a view)
//	  - categories           — list the content categories
//	  - stats                — show the site counters
//	  - exit | quit          — leave the program
//
//	Not logged in:
//	  - login [username]     — log in, registering unknown usernames
//
//	Logged in:
//	  - comment <id>         — comment on a diary
//	  - whoami               — show the current account
//	  - logout               — log out
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("timediary> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: list [category], popular, show <id>, categories, stats, exit")
			if a.isLoggedIn() {
				printlnFn("Account commands: comment <id>, whoami, logout")
			} else {
				printlnFn("Account commands: login [username]")
			}

		case "login":
			_ = a.Login(ctx, args)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "l", "list":
			_ = a.List(ctx, args)

		case "popular":
			_ = a.Popular(ctx)

		case "categories":
			_ = a.Categories(ctx)

		case "show":
			_ = a.Show(ctx, args)

		case "comment":
			_ = a.Comment(ctx, args)

		case "stats":
			_ = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
