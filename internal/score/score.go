// internal/score/score.go
package score

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Entry is one leaderboard record.
type Entry struct {
	Name  string
	Score int
}

// Store persists the leaderboard as whitespace-separated `name score`
// records in a single file. Appends are synchronous; the file is re-read
// and re-sorted after each append. A missing or malformed file reads as an
// empty leaderboard.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads and parses every record, sorted by score descending.
// A non-numeric score aborts the parse.
func (s *Store) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read score file: %w", err)
	}

	fields := strings.Fields(string(data))
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("score file has a dangling field")
	}

	entries := make([]Entry, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		value, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return nil, fmt.Errorf("malformed score for %q: %w", fields[i], err)
		}
		entries = append(entries, Entry{Name: fields[i], Score: value})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries, nil
}

// Append writes one record to the end of the file and returns the freshly
// re-read, sorted leaderboard.
func (s *Store) Append(name string, value int) ([]Entry, error) {
	if name == "" {
		name = "ANON"
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open score file: %w", err)
	}
	_, werr := fmt.Fprintf(f, "%s %d ", name, value)
	cerr := f.Close()
	if werr != nil {
		return nil, fmt.Errorf("failed to append score: %w", werr)
	}
	if cerr != nil {
		return nil, fmt.Errorf("failed to close score file: %w", cerr)
	}
	return s.Load()
}

// Top returns at most n highest entries from an already-sorted slice.
func Top(entries []Entry, n int) []Entry {
	if len(entries) <= n {
		return entries
	}
	return entries[:n]
}
