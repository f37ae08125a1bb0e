package main

import (
	"fmt"
	"os"
	"strconv"

	"orderstat-btree/internal/driver"
	"orderstat-btree/internal/tree"
	"orderstat-btree/pkg/config"
	"orderstat-btree/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.LogLevel, os.Stderr)

	if len(os.Args) >= 2 && os.Args[1] == "shell" {
		runShell(cfg, log)
		return
	}

	if len(os.Args) != 5 {
		printUsage(log)
		os.Exit(1)
	}

	degree, err := strconv.Atoi(os.Args[1])
	if err != nil || degree < 2 {
		log.Errorf("Invalid degree %q: must be an integer >= 2", os.Args[1])
		os.Exit(1)
	}

	currentTree := tree.NewTree(degree, log)
	run := driver.New(currentTree, log, cfg.OutputPath)

	if err := run.LoadInsertions(os.Args[2]); err != nil {
		log.Errorf("Insertions failed: %v", err)
		os.Exit(1)
	}
	if err := run.LoadDeletions(os.Args[3]); err != nil {
		log.Errorf("Deletions failed: %v", err)
		os.Exit(1)
	}
	if err := run.RunCommands(os.Args[4]); err != nil {
		log.Errorf("Commands failed: %v", err)
		os.Exit(1)
	}

	log.Infof("Results written to %s", cfg.OutputPath)
}

func printUsage(log *logger.Logger) {
	log.Infof("Usage: ./main <t> <keystoinsert.txt> <keystodelete.txt> <commands.txt>")
	log.Infof("       ./main shell [t]")
	log.Infof("Batch mode:")
	log.Infof("  t                 - minimum degree of the tree (>= 2)")
	log.Infof("  keystoinsert.txt  - one positive integer per line, inserted in file order")
	log.Infof("  keystodelete.txt  - one positive integer per line, deleted in file order")
	log.Infof("  commands.txt      - select k | rank x | keysInRange x y | primesInRange x y")
	log.Infof("Results are written to output.txt (override with OUTPUT_PATH), one line per command.")
}
