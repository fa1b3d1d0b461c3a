package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Categories(ctx context.Context, page int) error
	AddCategory(ctx context.Context) error
	EditCategory(ctx context.Context) error
	DeleteCategory(ctx context.Context) error
	Products(ctx context.Context, page int) error
	AddProduct(ctx context.Context) error
	EditProduct(ctx context.Context) error
	DeleteProduct(ctx context.Context) error
	Employees(ctx context.Context, page int) error
	AddEmployee(ctx context.Context) error
	EditEmployee(ctx context.Context) error
	DeleteEmployee(ctx context.Context) error
	Salaries(ctx context.Context) error
	AddSalary(ctx context.Context) error
}

// pageArg interprets an optional trailing argument of a list command as
// a 1-based page number; anything unparseable falls back to page 1.
func pageArg(args []string) int {
	if len(args) == 0 {
		return 1
	}
	if p := cast.ToInt(args[0]); p > 1 {
		return p
	}
	return 1
}

// runREPL starts the read-eval-print loop of the console.
//
// It reads a line from the provided scanner, parses the first token as
// the command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// List commands accept an optional page number ("products 2"). Any
// errors returned by command handlers are ignored here; handlers report
// their own errors through the toast center. This keeps the REPL loop
// resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sa> %s > ", statusFn()))
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
			if a.isLoggedIn() {
				printlnFn("Available commands: categories, addcat, editcat, delcat,")
				printlnFn("  products, addprod, editprod, delprod,")
				printlnFn("  employees, addemp, editemp, delemp,")
				printlnFn("  salaries, addsalary, profile, logout, exit")
				printlnFn("List commands take an optional page number, e.g. 'products 2'.")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "c", "categories":
			_ = a.Categories(ctx, pageArg(args))

		case "addcat":
			_ = a.AddCategory(ctx)

		case "editcat":
			_ = a.EditCategory(ctx)

		case "delcat":
			_ = a.DeleteCategory(ctx)

		case "p", "products":
			_ = a.Products(ctx, pageArg(args))

		case "addprod":
			_ = a.AddProduct(ctx)

		case "editprod":
			_ = a.EditProduct(ctx)

		case "delprod":
			_ = a.DeleteProduct(ctx)

		case "e", "employees":
			_ = a.Employees(ctx, pageArg(args))

		case "addemp":
			_ = a.AddEmployee(ctx)

		case "editemp":
			_ = a.EditEmployee(ctx)

		case "delemp":
			_ = a.DeleteEmployee(ctx)

		case "salaries":
			_ = a.Salaries(ctx)

		case "addsalary":
			_ = a.AddSalary(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
