// Package driver translates the text-file command surface into calls
// on the tree and renders results line-by-line into the output file.
// All file I/O of a batch run lives here; the tree itself never touches
// the filesystem.
package driver

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"orderstat-btree/internal/tree"
	"orderstat-btree/pkg/logger"
)

// Driver executes a batch run: bulk insertions, bulk deletions, then a
// command script.
type Driver struct {
	tree       *tree.Tree
	log        *logger.Logger
	outputPath string
}

// New creates a Driver operating on the given tree and writing command
// results to outputPath.
func New(t *tree.Tree, log *logger.Logger, outputPath string) *Driver {
	return &Driver{
		tree:       t,
		log:        log,
		outputPath: outputPath,
	}
}

// LoadInsertions inserts every key listed in the file, in file order.
// Keys already present are silently ignored by the tree.
func (d *Driver) LoadInsertions(path string) error {
	keys, err := readKeys(path)
	if err != nil {
		return fmt.Errorf("failed to read insertion keys: %w", err)
	}
	for _, key := range keys {
		d.tree.Insert(key)
	}
	d.log.Infof("Loaded %d insertion keys from %s, tree size now %d", len(keys), path, d.tree.Size())
	return nil
}

// LoadDeletions deletes every key listed in the file, in file order.
// Absent keys are silently ignored by the tree.
func (d *Driver) LoadDeletions(path string) error {
	keys, err := readKeys(path)
	if err != nil {
		return fmt.Errorf("failed to read deletion keys: %w", err)
	}
	for _, key := range keys {
		d.tree.Delete(key)
	}
	d.log.Infof("Applied %d deletion keys from %s, tree size now %d", len(keys), path, d.tree.Size())
	return nil
}

// RunCommands executes the command file and writes exactly one result
// line per command, in command order, to the output path.
func (d *Driver) RunCommands(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open command file: %w", err)
	}
	defer file.Close()

	out, err := os.Create(d.outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()
	writer := bufio.NewWriter(out)

	scanner := bufio.NewScanner(file)
	lineNo := 0
	executed := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result, err := d.execute(line)
		if err != nil {
			return fmt.Errorf("command %q (line %d): %w", line, lineNo, err)
		}
		fmt.Fprintln(writer, result)
		executed++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read command file: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	d.log.Infof("Executed %d commands from %s into %s", executed, path, d.outputPath)
	return nil
}

// execute runs a single command line and renders its result.
func (d *Driver) execute(line string) (string, error) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "select":
		if len(fields) != 2 {
			return "", fmt.Errorf("select expects one argument")
		}
		k, err := strconv.Atoi(fields[1])
		if err != nil {
			return "", fmt.Errorf("invalid position %q", fields[1])
		}
		key, ok := d.tree.Select(k)
		if !ok {
			return "-1", nil
		}
		return strconv.FormatUint(key, 10), nil

	case "rank":
		if len(fields) != 2 {
			return "", fmt.Errorf("rank expects one argument")
		}
		key, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid key %q", fields[1])
		}
		rank, ok := d.tree.Rank(key)
		if !ok {
			return "-1", nil
		}
		return strconv.Itoa(rank), nil

	case "keysInRange":
		lo, hi, err := parseRange(fields)
		if err != nil {
			return "", err
		}
		return renderKeys(d.tree.KeysInRange(lo, hi)), nil

	case "primesInRange":
		lo, hi, err := parseRange(fields)
		if err != nil {
			return "", err
		}
		return renderKeys(d.tree.PrimesInRange(lo, hi)), nil

	default:
		return "", fmt.Errorf("unknown command %q", fields[0])
	}
}

// parseRange extracts the two bounds of a range command.
func parseRange(fields []string) (uint64, uint64, error) {
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("%s expects two arguments", fields[0])
	}
	lo, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid lower bound %q", fields[1])
	}
	hi, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid upper bound %q", fields[2])
	}
	return lo, hi, nil
}

// renderKeys formats a result set: space-separated keys, or -1 when
// the set is empty.
func renderKeys(keys []uint64) string {
	if len(keys) == 0 {
		return "-1"
	}
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = strconv.FormatUint(key, 10)
	}
	return strings.Join(parts, " ")
}

// readKeys parses one positive integer per line, skipping blank lines.
func readKeys(path string) ([]uint64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var keys []uint64
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, err := strconv.ParseUint(line, 10, 64)
		if err != nil || key < 1 {
			return nil, fmt.Errorf("line %d: invalid key %q", lineNo, line)
		}
		keys = append(keys, key)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}
