// Package history holds the ordered collection of conversion records and its
// JSON file persistence.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Store defines the operations the rest of the tool needs from the
// conversion history.
type Store interface {
	Load() error
	Contains(url string) bool
	Append(rec Record)
	Remove(url string) int
	Records() []Record
	Len() int
	PruneBefore(cutoff time.Time) int
	PurgeAll()
	Persist() error
}

// FileStore implements Store backed by a single JSON array file. The file is
// rewritten wholesale on Persist; a missing file on Load is an empty history,
// not an error. All access happens from one goroutine, so there is no lock.
type FileStore struct {
	path    string
	records []Record
}

// NewFileStore creates a FileStore bound to path. Call Load before use.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the persisted records. A missing file initializes an empty
// collection; malformed JSON is a real error.
func (s *FileStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.records = nil
			return nil
		}
		return fmt.Errorf("read history file: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parse history file: %w", err)
	}
	s.records = records
	return nil
}

// Contains reports whether any record has exactly this URL.
func (s *FileStore) Contains(url string) bool {
	for _, r := range s.records {
		if r.URL == url {
			return true
		}
	}
	return false
}

// Append adds a record to the end of the history. The caller must have
// checked Contains first; Append does not re-check the uniqueness invariant.
func (s *FileStore) Append(rec Record) {
	s.records = append(s.records, rec)
}

// Remove deletes every record with the given URL and returns how many were
// removed (at most one, given the uniqueness invariant).
func (s *FileStore) Remove(url string) int {
	kept := s.records[:0]
	removed := 0
	for _, r := range s.records {
		if r.URL == url {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept
	return removed
}

// Records returns the history in insertion order. The slice is a copy.
func (s *FileStore) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *FileStore) Len() int {
	return len(s.records)
}

// PruneBefore removes records dated strictly before cutoff and returns the
// number removed. Records on the cutoff day stay. Records whose date does
// not parse are kept.
func (s *FileStore) PruneBefore(cutoff time.Time) int {
	day := cutoff.Format(DateFormat)
	kept := s.records[:0]
	removed := 0
	for _, r := range s.records {
		if _, err := time.Parse(DateFormat, r.Date); err == nil && r.Date < day {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept
	return removed
}

// PurgeAll empties the in-memory history. Persist afterwards to empty the
// file as well.
func (s *FileStore) PurgeAll() {
	s.records = nil
}

// Persist atomically rewrites the whole history file: the JSON is written to
// a temp file in the same directory and renamed over the target.
func (s *FileStore) Persist() error {
	records := s.records
	if records == nil {
		records = []Record{}
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".history-*.json")
	if err != nil {
		return fmt.Errorf("create temp history file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp history file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace history file: %w", err)
	}
	return nil
}
