// Package leaderboard keeps the ten best scores in a "name: score" text file.
package leaderboard

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Size is the number of entries kept.
const Size = 10

// ErrMalformedLine is returned by ParseLine for a line that is not "name: score".
var ErrMalformedLine = errors.New("malformed leaderboard line")

// Entry is one leaderboard row. An empty Name marks an unused slot.
type Entry struct {
	Name  string
	Score int
}

// Leaderboard is a fixed-size list sorted by score, highest first.
type Leaderboard struct {
	path    string
	entries [Size]Entry
}

// New creates an empty leaderboard backed by path.
func New(path string) *Leaderboard {
	return &Leaderboard{path: path}
}

// Load reads the leaderboard from path. A missing file yields an empty
// leaderboard. Malformed lines are logged and skipped.
func Load(path string) (*Leaderboard, error) {
	lb := New(path)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return lb, nil
	}
	if err != nil {
		return lb, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	i := 0
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() && i < Size {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := ParseLine(line)
		if err != nil {
			log.Printf("leaderboard: skipping %q: %v", line, err)
			continue
		}
		lb.entries[i] = e
		i++
	}
	if err := sc.Err(); err != nil {
		return lb, fmt.Errorf("failed to scan leaderboard: %w", err)
	}

	lb.sort()
	return lb, nil
}

// ParseLine parses one "name: score" line.
func ParseLine(line string) (Entry, error) {
	name, score, ok := strings.Cut(line, ": ")
	if !ok {
		return Entry{}, ErrMalformedLine
	}
	n, err := strconv.Atoi(strings.TrimSpace(score))
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	if name == "null" {
		name = ""
	}
	return Entry{Name: name, Score: n}, nil
}

// Path returns the backing file.
func (lb *Leaderboard) Path() string { return lb.path }

// Name returns the name at index, or "" when out of range.
func (lb *Leaderboard) Name(i int) string {
	if i < 0 || i >= Size {
		return ""
	}
	return lb.entries[i].Name
}

// Score returns the score at index, or 0 when out of range.
func (lb *Leaderboard) Score(i int) int {
	if i < 0 || i >= Size {
		return 0
	}
	return lb.entries[i].Score
}

// Entries returns a copy of all rows, unused ones included.
func (lb *Leaderboard) Entries() []Entry {
	out := make([]Entry, Size)
	copy(out, lb.entries[:])
	return out
}

// Qualifies reports whether score would make it onto the board.
func (lb *Leaderboard) Qualifies(score int) bool {
	return score > lb.entries[Size-1].Score
}

// SortNewEntry scans from the bottom up and overwrites the first entry
// the score beats, then re-sorts. It reports whether the entry was added.
func (lb *Leaderboard) SortNewEntry(name string, score int) bool {
	added := false
	for i := Size - 1; i >= 0; i-- {
		if score > lb.entries[i].Score {
			lb.entries[i] = Entry{Name: name, Score: score}
			added = true
			break
		}
	}
	lb.sort()
	return added
}

// sort is a bubble sort from the bottom up; equal scores keep their order.
func (lb *Leaderboard) sort() {
	for pass := 0; pass < Size-1; pass++ {
		swapped := false
		for i := Size - 1; i > 0; i-- {
			if lb.entries[i].Score > lb.entries[i-1].Score {
				lb.entries[i], lb.entries[i-1] = lb.entries[i-1], lb.entries[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// Save writes all rows to the backing file. Unused rows are written as
// "null: 0" so the file always has Size lines.
func (lb *Leaderboard) Save() error {
	var buf bytes.Buffer
	for _, e := range lb.entries {
		name := e.Name
		if name == "" {
			name = "null"
		}
		fmt.Fprintf(&buf, "%s: %d\n", name, e.Score)
	}

	if dir := filepath.Dir(lb.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create leaderboard dir: %w", err)
		}
	}
	if err := os.WriteFile(lb.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write leaderboard: %w", err)
	}
	return nil
}

// Reset clears every row and truncates the backing file.
func (lb *Leaderboard) Reset() error {
	lb.entries = [Size]Entry{}
	if err := os.WriteFile(lb.path, nil, 0o644); err != nil {
		return fmt.Errorf("failed to reset leaderboard: %w", err)
	}
	return nil
}
