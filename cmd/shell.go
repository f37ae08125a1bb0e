package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"orderstat-btree/internal/tree"
	"orderstat-btree/pkg/config"
	"orderstat-btree/pkg/logger"
)

// runShell drives an interactive session against an in-memory tree.
func runShell(cfg *config.Config, log *logger.Logger) {
	degree := cfg.TreeDegree
	if len(os.Args) >= 3 {
		d, err := strconv.Atoi(os.Args[2])
		if err != nil || d < 2 {
			log.Errorf("Invalid degree %q: must be an integer >= 2", os.Args[2])
			os.Exit(1)
		}
		degree = d
	}
	currentTree := tree.NewTree(degree, log)

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	// history file
	historyFile := filepath.Join(os.TempDir(), ".btree_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	fmt.Printf("order-statistic b-tree shell (degree %d)\n", degree)
	fmt.Println("Type 'help' for available commands")

	for {
		input, err := line.Prompt("btree> ")
		if err != nil {
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if input == "exit" || input == "quit" {
			break
		}
		runShellCommand(currentTree, input)
	}

	if f, err := os.Create(historyFile); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}

func runShellCommand(t *tree.Tree, input string) {
	fields := strings.Fields(input)
	switch fields[0] {
	case "help":
		printShellHelp()

	case "insert":
		key, ok := shellKey(fields)
		if !ok {
			return
		}
		before := t.Size()
		t.Insert(key)
		if t.Size() == before {
			fmt.Printf("%d already present\n", key)
		} else {
			fmt.Printf("inserted %d\n", key)
		}

	case "delete":
		key, ok := shellKey(fields)
		if !ok {
			return
		}
		before := t.Size()
		t.Delete(key)
		if t.Size() == before {
			fmt.Printf("%d not present\n", key)
		} else {
			fmt.Printf("deleted %d\n", key)
		}

	case "search":
		key, ok := shellKey(fields)
		if !ok {
			return
		}
		if t.Search(key) {
			fmt.Println("found")
		} else {
			fmt.Println("not found")
		}

	case "rank":
		key, ok := shellKey(fields)
		if !ok {
			return
		}
		if rank, found := t.Rank(key); found {
			fmt.Println(rank)
		} else {
			fmt.Println(-1)
		}

	case "select":
		if len(fields) != 2 {
			fmt.Println("usage: select <k>")
			return
		}
		k, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Printf("invalid position %q\n", fields[1])
			return
		}
		if key, found := t.Select(k); found {
			fmt.Println(key)
		} else {
			fmt.Println(-1)
		}

	case "range", "keysInRange":
		if lo, hi, ok := shellRange(fields); ok {
			printShellKeys(t.KeysInRange(lo, hi))
		}

	case "primes", "primesInRange":
		if lo, hi, ok := shellRange(fields); ok {
			printShellKeys(t.PrimesInRange(lo, hi))
		}

	case "min":
		if key, found := t.Min(); found {
			fmt.Println(key)
		} else {
			fmt.Println("tree is empty")
		}

	case "max":
		if key, found := t.Max(); found {
			fmt.Println(key)
		} else {
			fmt.Println("tree is empty")
		}

	case "size":
		fmt.Println(t.Size())

	case "height":
		fmt.Println(t.Height())

	case "print":
		t.PrintTreeStructure()

	case "validate":
		if t.ValidateTree() {
			fmt.Println("tree is valid")
		} else {
			fmt.Println("tree is INVALID")
		}

	case "dump":
		fmt.Print(t.Dump())

	default:
		fmt.Printf("unknown command %q, type 'help'\n", fields[0])
	}
}

// shellKey parses the single positive-integer argument of a command.
func shellKey(fields []string) (uint64, bool) {
	if len(fields) != 2 {
		fmt.Printf("usage: %s <key>\n", fields[0])
		return 0, false
	}
	key, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil || key < 1 {
		fmt.Printf("invalid key %q: must be a positive integer\n", fields[1])
		return 0, false
	}
	return key, true
}

// shellRange parses the two bounds of a range command.
func shellRange(fields []string) (uint64, uint64, bool) {
	if len(fields) != 3 {
		fmt.Printf("usage: %s <lo> <hi>\n", fields[0])
		return 0, 0, false
	}
	lo, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		fmt.Printf("invalid lower bound %q\n", fields[1])
		return 0, 0, false
	}
	hi, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		fmt.Printf("invalid upper bound %q\n", fields[2])
		return 0, 0, false
	}
	return lo, hi, true
}

func printShellKeys(keys []uint64) {
	if len(keys) == 0 {
		fmt.Println(-1)
		return
	}
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = strconv.FormatUint(key, 10)
	}
	fmt.Println(strings.Join(parts, " "))
}

func printShellHelp() {
	fmt.Println("Commands:")
	fmt.Println("  insert <key>          - insert a key (duplicates ignored)")
	fmt.Println("  delete <key>          - delete a key (absent keys ignored)")
	fmt.Println("  search <key>          - check whether a key is present")
	fmt.Println("  rank <key>            - 1-based rank of a key, -1 if absent")
	fmt.Println("  select <k>            - k-th smallest key, -1 if out of range")
	fmt.Println("  range <lo> <hi>       - keys in [lo, hi], -1 if none")
	fmt.Println("  primes <lo> <hi>      - prime keys in [lo, hi], -1 if none")
	fmt.Println("  min | max             - smallest / largest key")
	fmt.Println("  size | height         - tree size / height")
	fmt.Println("  print | dump          - show the tree structure")
	fmt.Println("  validate              - check the tree invariants")
	fmt.Println("  exit | quit           - leave the shell")
}
