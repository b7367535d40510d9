package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	Text(ctx context.Context) error
	Smart(ctx context.Context) error
	IcBin(ctx context.Context) error
	Scan(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Edit(ctx context.Context, arg string) error
	Copy(ctx context.Context, arg string) error
	Delete(ctx context.Context, arg string) error
	Clear(ctx context.Context) error
	Purge(ctx context.Context) error
}

const helpText = `Available commands:
  text          generate a text QR
  smart         generate a Smart QR
  icbin         generate an IC BIN QR
  scan          file a scanned code
  (l)ist        list history, newest first
  search <q>    find Smart entries by part number
  edit <n>      regenerate entry n with its fields prefilled
  copy <n>      copy entry n to the clipboard
  delete <n>    delete entry n
  clear         empty the history
  purge         remove the stored history entirely
  exit | quit   leave the program`

// runREPL reads one command per line from r and dispatches it to a. The
// loop ends on EOF or "exit"/"quit". Handler errors are not fatal; handlers
// report them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("qr %s > ", statusFn()))

		line, err := r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), cmd))

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "text":
			_ = a.Text(ctx)

		case "smart":
			_ = a.Smart(ctx)

		case "icbin":
			_ = a.IcBin(ctx)

		case "scan":
			_ = a.Scan(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, arg)

		case "edit", "copy", "delete":
			if arg == "" {
				printlnFn(fmt.Sprintf("Usage: %s <n>", cmd))
				continue
			}
			switch cmd {
			case "edit":
				_ = a.Edit(ctx, arg)
			case "copy":
				_ = a.Copy(ctx, arg)
			default:
				_ = a.Delete(ctx, arg)
			}

		case "clear":
			_ = a.Clear(ctx)

		case "purge":
			_ = a.Purge(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
