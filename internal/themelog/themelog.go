// Package themelog keeps an append-only log of listening-passage themes on
// disk so successive generations can be steered away from repeating
// subject matter.
package themelog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultKeep is how many recent entries are consulted for deduplication.
const DefaultKeep = 5

// Entry records one listening-passage generation.
type Entry struct {
	Timestamp     time.Time `json:"timestamp"`
	Level         string    `json:"level"`
	WordCount     int       `json:"word_count"`
	Theme         string    `json:"theme"`
	SpeakerGender string    `json:"speaker_gender"`
	Preview       string    `json:"preview"`
}

// Log is a flat JSON-array file rewritten in full on every append. It is
// not safe for concurrent writers; expected usage is a single operator,
// and an interleaved write loses at worst one entry.
type Log struct {
	path string
}

// Open returns a Log backed by the file at path. The file need not exist.
func Open(path string) *Log {
	return &Log{path: path}
}

// Append adds an entry to the end of the log. The whole array is read,
// extended, and rewritten.
func (l *Log) Append(e Entry) error {
	entries := l.read()
	entries = append(entries, e)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal theme log: %w", err)
	}

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create theme log dir: %w", err)
		}
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("write theme log: %w", err)
	}
	return nil
}

// Recent returns the newest k entries, oldest first.
func (l *Log) Recent(k int) []Entry {
	entries := l.read()
	if k > 0 && len(entries) > k {
		entries = entries[len(entries)-k:]
	}
	return entries
}

// RecentThemes returns the theme field of the newest k entries, for the
// prompt builder's avoid list.
func (l *Log) RecentThemes(k int) []string {
	entries := l.Recent(k)
	themes := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Theme != "" {
			themes = append(themes, e.Theme)
		}
	}
	return themes
}

// read loads the log file. A missing or corrupted file is an empty log,
// never an error: losing dedup history is not worth failing a generation.
func (l *Log) read() []Entry {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}
	return entries
}
