package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineLength bounds a single input line; unwrapped genome FASTA can be
// long.
const maxLineLength = 64 * 1024 * 1024

// Record is one FASTA entry. Text is the concatenated, upper-cased sequence
// lines.
type Record struct {
	ID          string
	Description string
	Text        string
}

// ReadFASTA reads every record of a FASTA file.
func ReadFASTA(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return ParseFASTA(file)
}

// ParseFASTA parses FASTA format from a reader. Text before the first header
// is an error.
func ParseFASTA(r io.Reader) ([]Record, error) {
	records := make([]Record, 0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var (
		current *Record
		bases   strings.Builder
		lineNum int
	)

	flush := func() {
		if current != nil {
			current.Text = Normalize(bases.String())
			records = append(records, *current)
			bases.Reset()
		}
	}

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		if line[0] == '>' {
			flush()

			parts := strings.SplitN(line[1:], " ", 2)
			current = &Record{ID: parts[0]}
			if len(parts) > 1 {
				current.Description = strings.TrimSpace(parts[1])
			}
			continue
		}

		if current == nil {
			return nil, fmt.Errorf("line %d: sequence data before first header", lineNum)
		}
		bases.WriteString(line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	return records, nil
}

// ReadSequence loads a single sequence from path. FASTA input yields the
// first record; anything else is read as flat text.
func ReadSequence(path string) (string, error) {
	text, err := ReadText(path)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(text, ">") {
		return text, nil
	}

	records, err := ParseFASTA(strings.NewReader(text))
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return "", fmt.Errorf("no sequences found in %s", path)
	}
	return records[0].Text, nil
}

// ReadSequences loads every sequence from path: each FASTA record, or each
// non-empty line of flat text.
func ReadSequences(path string) ([]string, error) {
	text, err := ReadText(path)
	if err != nil {
		return nil, err
	}

	if !strings.HasPrefix(text, ">") {
		return ParseLines(strings.NewReader(text))
	}

	records, err := ParseFASTA(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.Text
	}
	return out, nil
}
