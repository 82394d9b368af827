package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Filter(ctx context.Context, args []string) error
	Search(ctx context.Context, text string) error
	Arrive(ctx context.Context, id string, arrived bool) error
	Export(ctx context.Context, format string) error
	Import(ctx context.Context, path string) error
	Title(ctx context.Context, text string) error
	Stats(ctx context.Context) error
	Reset(ctx context.Context) error
}

const helpText = `Available commands:
  (l)ist                          show guests matching the current filter
  filter <dimension> <value|all>  dimension: status, accommodation, group, arrived
  filter clear                    drop every filter and the search text
  search [text]                   match name or invite name; empty clears
  arrive <id> | depart <id>       set or clear the arrived flag
  export csv|pdf|print            write the filtered list
  import <file.json>              replace the guest list
  title [text]                    show or change the event title
  stats                           totals per status, group and lodging
  reset                           restore the default guest list and title
  exit | quit`

// runREPL reads commands line by line and dispatches them to a. Handler
// errors are printed and the loop continues. The loop exits on EOF, on
// "exit"/"quit", or when ctx is done.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("gk %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		rest := strings.Join(args, " ")

		var err error
		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			err = a.List(ctx)

		case "filter":
			err = a.Filter(ctx, args)

		case "search":
			err = a.Search(ctx, rest)

		case "arrive", "depart":
			if len(args) != 1 {
				printlnFn("Usage:", cmd, "<id>")
				continue
			}
			err = a.Arrive(ctx, args[0], cmd == "arrive")

		case "export":
			if len(args) != 1 {
				printlnFn("Usage: export csv|pdf|print")
				continue
			}
			err = a.Export(ctx, args[0])

		case "import":
			if len(args) != 1 {
				printlnFn("Usage: import <file.json>")
				continue
			}
			err = a.Import(ctx, args[0])

		case "title":
			err = a.Title(ctx, rest)

		case "stats":
			err = a.Stats(ctx)

		case "reset":
			err = a.Reset(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
