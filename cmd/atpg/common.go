package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/circuitlab/atpg/internal/circuit"
	"github.com/circuitlab/atpg/internal/netlist"
)

// loadCircuit opens and parses a netlist file.
func loadCircuit(path string) (*circuit.Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening netlist %q", path)
	}
	defer f.Close()
	return netlist.Parse(path, f)
}

// readLines reads a batch file, skipping blank lines and '#' comments.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading batch file %q", path)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// runBatch runs one(fields) for every line of the batch file at path,
// reporting each line's error to stderr without stopping, and exits the
// process with status 1 if any line failed (spec §7's exit-code contract).
func runBatch(path string, one func([]string) error) error {
	lines, err := readLines(path)
	if err != nil {
		return err
	}
	var failed bool
	for _, line := range lines {
		if err := one(strings.Fields(line)); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", line, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
	return nil
}
