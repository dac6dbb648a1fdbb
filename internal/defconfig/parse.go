package defconfig

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// ParseFile reads a defconfig file.
func ParseFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read defconfig %s: %w", path, err)
	}

	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return entries, nil
}

// Parse parses KEY=VALUE lines in file order. Lines that are empty, start
// with '#' or start with a space are skipped. The value is everything after
// the first '=' exactly as written: quotes, '#' and '$' are kept, since the
// value is pasted into config.h and auto.conf unchanged.
// A repeated key yields one entry per occurrence; Resolve folds them.
func Parse(data []byte) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || line[0] == '#' || line[0] == ' ' {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok || key == "" || value == "" {
			return nil, fmt.Errorf("line %d: expected KEY=VALUE, got %q", n, line)
		}

		entries = append(entries, Entry{Key: key, Value: value})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan defconfig: %w", err)
	}

	return entries, nil
}
