package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"memdex/registry"
)

// REPL is an interactive session over a single in-memory index.
type REPL struct {
	scanner *bufio.Scanner
	out     io.Writer
	index   *registry.Index
}

func NewREPL(s *bufio.Scanner, out io.Writer, ix *registry.Index) *REPL {
	return &REPL{scanner: s, out: out, index: ix}
}

func (r *REPL) Start() {
	r.printHelp()
	r.printPrompt()
	for r.scanner.Scan() {
		if quit := r.processInput(r.scanner.Text()); quit {
			return
		}
		r.printPrompt()
	}
}

func (r *REPL) printHelp() {
	fmt.Fprintln(r.out, `
memdex REPL

Available Commands:
  ADD <key> [key...] Insert one or more keys into the index
  GET <key>          Check whether a key is present
  KEYS               Print every key in ascending order
  STATS              Print degree, key count and tree height
  VIZ                Render the tree level by level
  SAVE <file>        Write a snappy-compressed snapshot of the keys
  LOAD <file>        Replay a snapshot into the index
  EXIT               Terminate this session`)
}

func (r *REPL) printPrompt() {
	fmt.Fprint(r.out, "> ")
}

// processInput handles one line and reports whether the session is over.
func (r *REPL) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return false
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		fmt.Fprintf(r.out, "Unknown command %q\n", command)
	case "add":
		r.processAdd(fields[1:])
	case "get":
		r.processGet(fields[1:])
	case "keys":
		r.processKeys()
	case "stats":
		r.processStats()
	case "viz":
		fmt.Fprintln(r.out, r.index.Visualize())
	case "save":
		r.processSave(fields[1:])
	case "load":
		r.processLoad(fields[1:])
	case "exit":
		return true
	}
	return false
}

func (r *REPL) processAdd(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(r.out, "Usage: ADD <key> [key...]")
		return
	}
	for _, key := range args {
		if err := r.index.Insert(key); err != nil {
			fmt.Fprintf(r.out, "Error inserting %q: %v\n", key, err)
			return
		}
	}
	fmt.Fprintf(r.out, "Inserted %d key(s)\n", len(args))
}

func (r *REPL) processGet(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "Usage: GET <key>")
		return
	}
	found, err := r.index.Search(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	if found {
		fmt.Fprintf(r.out, "Found key: %s\n", args[0])
	} else {
		fmt.Fprintf(r.out, "Key not found: %s\n", args[0])
	}
}

func (r *REPL) processKeys() {
	keys := r.index.Keys()
	if len(keys) == 0 {
		fmt.Fprintln(r.out, "(empty)")
		return
	}
	fmt.Fprintln(r.out, strings.Join(keys, " "))
}

func (r *REPL) processStats() {
	stats := r.index.Stats()
	fmt.Fprintf(r.out, "degree=%d keys=%d height=%d\n", stats.Degree, stats.Keys, stats.Height)
}

func (r *REPL) processSave(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "Usage: SAVE <file>")
		return
	}
	f, err := os.Create(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "Error creating snapshot file: %v\n", err)
		return
	}
	defer f.Close()

	if err := r.index.Export(f); err != nil {
		fmt.Fprintf(r.out, "Error writing snapshot: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "Saved %d key(s) to %s\n", r.index.Len(), args[0])
}

func (r *REPL) processLoad(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "Usage: LOAD <file>")
		return
	}
	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "Error opening snapshot file: %v\n", err)
		return
	}
	defer f.Close()

	if err := r.index.Import(f); err != nil {
		fmt.Fprintf(r.out, "Error reading snapshot: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "Index now holds %d key(s)\n", r.index.Len())
}
