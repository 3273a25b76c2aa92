package sieve

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ReadTitles reads one title per line from r, skipping blank lines.
// Handles are assigned from the 1-based line number of the source line
// ("L1", "L2", ...), so a handle stays tied to its position in the source
// even when blank lines are skipped.
func ReadTitles(r io.Reader) ([]Candidate, error) {
	var out []Candidate

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		title := sc.Text()
		if title == "" {
			continue
		}
		out = append(out, Candidate{
			Handle: fmt.Sprintf("L%d", line),
			Title:  title,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading titles: %w", err)
	}
	return out, nil
}

// LoadTitles reads candidates from a file via ReadTitles.
func LoadTitles(path string) ([]Candidate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening titles file: %w", err)
	}
	defer f.Close()
	return ReadTitles(f)
}
