package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printFn are test seams for user-facing output. In tests,
// replace them with stubs.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Strength(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Get(ctx context.Context, path string) error
	Logout(ctx context.Context) error
}

func prompt(status string) string {
	if status == "" {
		return "gauth> "
	}
	return "gauth " + status + "> "
}

// runREPL starts a simple read–eval–print loop for the gophauth CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help              show available commands
//	  - login             authenticate
//	  - signup | register create an account
//	  - strength          rate a password without signing up
//	  - exit | quit       leave the program
//
//	Logged in:
//	  - help              show available commands
//	  - whoami            show the signed-in user
//	  - get <path>        authenticated GET against the API, prints JSON
//	  - strength          rate a password
//	  - logout            log out
//	  - exit | quit       leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printFn(prompt(statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			printlnFn()
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, get <path>, strength, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, strength, exit")
			}

		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in, logout first")
				continue
			}
			_ = a.Login(ctx)

		case "signup", "register":
			if a.isLoggedIn() {
				printlnFn("Already logged in, logout first")
				continue
			}
			_ = a.Signup(ctx)

		case "strength":
			_ = a.Strength(ctx)

		case "whoami":
			if !a.isLoggedIn() {
				printlnFn("Not logged in")
				continue
			}
			_ = a.WhoAmI(ctx)

		case "get":
			if !a.isLoggedIn() {
				printlnFn("Not logged in")
				continue
			}
			if len(args) == 0 {
				printlnFn("Usage: get <path>")
				continue
			}
			_ = a.Get(ctx, args[0])

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
