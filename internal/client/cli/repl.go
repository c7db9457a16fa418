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
	Send(ctx context.Context, paths []string) error
	Pick(ctx context.Context, paths []string) error
	Status(ctx context.Context) error
	Cancel(ctx context.Context) error
	Copy(ctx context.Context) error
	Reset(ctx context.Context) error
}

// runREPL reads commands from scanner and dispatches them to a until EOF
// or "exit"/"quit".
//
//	send <paths...>  upload files and folders (folders are flattened)
//	pick <files...>  upload plain files
//	status           show the current view
//	cancel           abandon the running upload
//	copy             copy the share link to the clipboard
//	reset | new      start over
//	help             list commands
//	exit | quit      leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ds %s> ", statusFn()))
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
			printlnFn("Available commands: send, pick, status, cancel, copy, new, exit")

		case "send":
			_ = a.Send(ctx, args)

		case "pick":
			_ = a.Pick(ctx, args)

		case "status":
			_ = a.Status(ctx)

		case "cancel":
			_ = a.Cancel(ctx)

		case "copy":
			_ = a.Copy(ctx)

		case "reset", "new":
			_ = a.Reset(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
