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
	seedEnabled() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Categories(ctx context.Context) error
	Menu(ctx context.Context, args []string) error
	AddItem(ctx context.Context) error
	ShowCart(ctx context.Context) error
	IncreaseItem(ctx context.Context, id string) error
	DecreaseItem(ctx context.Context, id string) error
	RemoveItem(ctx context.Context, id string) error
	ClearCart(ctx context.Context) error
	Order(ctx context.Context) error
	Seed(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the storefront CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always available:
//	  - help                     — show available commands
//	  - categories               — list menu categories
//	  - menu [category] [query]  — browse the menu, optionally filtered
//	  - add                      — pick an item and customizations into the cart
//	  - cart                     — show the cart with totals
//	  - inc | dec | remove <id>  — change a cart line's quantity
//	  - clear                    — empty the cart
//	  - exit | quit              — leave the program
//
//	Not logged in:
//	  - register                 — create an account
//	  - login                    — authenticate
//
//	Logged in:
//	  - profile                  — show the current user
//	  - order                    — review totals and place the order
//	  - logout                   — log out
//
//	Debug mode only:
//	  - seed                     — populate a development catalog
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fc> %s ", statusFn()))
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
			printlnFn("Browse: categories, menu [category] [query], add, cart, inc <id>, dec <id>, remove <id>, clear")
			if a.isLoggedIn() {
				printlnFn("Account: profile, order, logout, exit")
			} else {
				printlnFn("Account: register, login, exit")
			}
			if a.seedEnabled() {
				printlnFn("Development: seed")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "categories":
			_ = a.Categories(ctx)

		case "menu":
			_ = a.Menu(ctx, args)

		case "add":
			_ = a.AddItem(ctx)

		case "cart":
			_ = a.ShowCart(ctx)

		case "inc", "dec", "remove":
			if len(args) == 0 {
				printlnFn("Usage: " + cmd + " <item-id>")
				continue
			}
			switch cmd {
			case "inc":
				_ = a.IncreaseItem(ctx, args[0])
			case "dec":
				_ = a.DecreaseItem(ctx, args[0])
			case "remove":
				_ = a.RemoveItem(ctx, args[0])
			}

		case "clear":
			_ = a.ClearCart(ctx)

		case "order":
			_ = a.Order(ctx)

		case "seed":
			if !a.seedEnabled() {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.Seed(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
