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
	Use(ctx context.Context, args []string) error
	List(ctx context.Context) error
	Refresh(ctx context.Context) error
	Form(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Set(ctx context.Context, args []string) error
	Save(ctx context.Context) error
	Cancel(ctx context.Context) error
	Delete(ctx context.Context, args []string) error
	Choices(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: login [username picture], exit"
	helpLoggedIn  = `Available commands:
  use artists|artworks|exhibitions   switch collection
  (l)ist | refresh                   show or reload the collection
  form [field value...]              show or fill the create form
  add                                create from the form
  edit <id> | set <field> <value...> edit a record
  save | cancel                      commit or discard the edit
  delete <id>                        delete after confirmation
  choices <field>                    list values of a reference field
  logout | exit`
)

// runREPL starts a read-eval-print loop for the ArtLog CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches the remaining tokens to methods on 'a'. Collection commands
// require a login. The loop exits on EOF or when the user types "exit" or
// "quit".
//
// Errors returned by command handlers are ignored here; handlers print their
// own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	interactive := isTerminal()
	for {
		if interactive {
			printlnFn(fmt.Sprintf("artlog%s> ", statusFn()))
		}
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue

		case "login":
			_ = a.Login(ctx, args)
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			if isCatalogCommand(cmd) {
				printlnFn("Please log in first")
			} else {
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "logout":
			_ = a.Logout(ctx)
		case "use":
			_ = a.Use(ctx, args)
		case "l", "list":
			_ = a.List(ctx)
		case "refresh":
			_ = a.Refresh(ctx)
		case "form":
			_ = a.Form(ctx, args)
		case "add":
			_ = a.Add(ctx)
		case "edit":
			_ = a.Edit(ctx, args)
		case "set":
			_ = a.Set(ctx, args)
		case "save":
			_ = a.Save(ctx)
		case "cancel":
			_ = a.Cancel(ctx)
		case "delete":
			_ = a.Delete(ctx, args)
		case "choices":
			_ = a.Choices(ctx, args)
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func isCatalogCommand(cmd string) bool {
	switch cmd {
	case "logout", "use", "l", "list", "refresh", "form", "add", "edit", "set", "save", "cancel", "delete", "choices":
		return true
	}
	return false
}
