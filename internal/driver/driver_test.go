package driver

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"orderstat-btree/internal/tree"
	"orderstat-btree/pkg/logger"
)

func writeLines(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runBatch(t *testing.T, degree int, inserts, deletes, commands []string) []string {
	t.Helper()
	dir := t.TempDir()
	insertPath := writeLines(t, dir, "keystoinsert.txt", inserts...)
	deletePath := writeLines(t, dir, "keystodelete.txt", deletes...)
	commandPath := writeLines(t, dir, "commands.txt", commands...)
	outputPath := filepath.Join(dir, "output.txt")

	log := logger.New(logger.Error, io.Discard)
	d := New(tree.NewTree(degree, log), log, outputPath)
	if err := d.LoadInsertions(insertPath); err != nil {
		t.Fatalf("LoadInsertions: %v", err)
	}
	if err := d.LoadDeletions(deletePath); err != nil {
		t.Fatalf("LoadDeletions: %v", err)
	}
	if err := d.RunCommands(commandPath); err != nil {
		t.Fatalf("RunCommands: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("output file does not end with a newline: %q", out)
	}
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func TestBatchRun(t *testing.T) {
	inserts := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}
	deletes := []string{"5", "3", "8", "1", "10"}
	commands := []string{
		"select 2",
		"rank 4",
		"keysInRange 6 9",
		"primesInRange 1 10",
		"select 0",
		"select 99",
		"rank 5",
	}
	want := []string{"4", "2", "6 7 9", "2 7", "-1", "-1", "-1"}

	got := runBatch(t, 2, inserts, deletes, commands)
	if len(got) != len(want) {
		t.Fatalf("got %d output lines, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i+1, got[i], want[i])
		}
	}
}

func TestBatchDuplicatesAndAbsents(t *testing.T) {
	inserts := []string{"7", "7", "7"}
	deletes := []string{"7", "7", "9"}
	commands := []string{"select 1", "rank 7", "keysInRange 1 100"}
	want := []string{"-1", "-1", "-1"}

	got := runBatch(t, 2, inserts, deletes, commands)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i+1, got[i], want[i])
		}
	}
}

func TestBatchBlankLinesTolerated(t *testing.T) {
	inserts := []string{"2", "", "4", "  ", "6"}
	deletes := []string{""}
	commands := []string{"", "keysInRange 1 10"}
	got := runBatch(t, 3, inserts, deletes, commands)
	if len(got) != 1 || got[0] != "2 4 6" {
		t.Errorf("got %v, want [2 4 6]", got)
	}
}

func TestMalformedCommandFails(t *testing.T) {
	dir := t.TempDir()
	insertPath := writeLines(t, dir, "ins.txt", "1")
	commandPath := writeLines(t, dir, "cmd.txt", "frobnicate 1 2")
	outputPath := filepath.Join(dir, "output.txt")

	log := logger.New(logger.Error, io.Discard)
	d := New(tree.NewTree(2, log), log, outputPath)
	if err := d.LoadInsertions(insertPath); err != nil {
		t.Fatal(err)
	}
	if err := d.RunCommands(commandPath); err == nil {
		t.Error("RunCommands accepted an unknown command")
	}
}

func TestInvalidKeyFileFails(t *testing.T) {
	dir := t.TempDir()
	insertPath := writeLines(t, dir, "ins.txt", "1", "zero", "3")
	log := logger.New(logger.Error, io.Discard)
	d := New(tree.NewTree(2, log), log, filepath.Join(dir, "output.txt"))
	if err := d.LoadInsertions(insertPath); err == nil {
		t.Error("LoadInsertions accepted a non-numeric key")
	}

	if err := d.LoadInsertions(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("LoadInsertions accepted a missing file")
	}
}
