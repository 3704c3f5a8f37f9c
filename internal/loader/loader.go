// Package loader reads raw sequence text from files. It owns no alphabet
// knowledge: it upper-cases and trims what it reads and leaves decoding to
// the alphabet package.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadText returns the whole file upper-cased with surrounding whitespace
// removed.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return Normalize(string(data)), nil
}

// Normalize upper-cases text and trims surrounding whitespace.
func Normalize(text string) string {
	return strings.ToUpper(strings.TrimSpace(text))
}

// ReadLines returns the normalized, non-empty lines of a file. It is used for
// inputs that list one sequence per line.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return ParseLines(file)
}

// ParseLines is ReadLines over a reader.
func ParseLines(r io.Reader) ([]string, error) {
	lines := make([]string, 0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	for scanner.Scan() {
		line := Normalize(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}
	return lines, nil
}
