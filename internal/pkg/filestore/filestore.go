// Package filestore implements a keyed record store over a directory of
// JSON files, one record per file. Records are human-inspectable and the
// whole collection is loaded into memory once at startup; every insert or
// save rewrites the affected record's file.
//
// The store itself is not safe for concurrent use. Callers are expected to
// serialize access behind their own lock.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrNotFound reports a lookup for an id the store does not hold.
	ErrNotFound = errors.New("record not found")
	// ErrConflict reports an insert with an id the store already holds.
	ErrConflict = errors.New("record id already exists")
)

// Record is any entity with a stable, extractable id.
type Record interface {
	RecordID() uint32
}

// Store is an ordered in-memory collection of records backed by one JSON
// file per record. Load order is ascending id; records inserted at runtime
// are appended, so iteration order is insertion order, not id order.
type Store[T Record] struct {
	dir     string
	records []T
}

// LoadOrInit opens the store rooted at dir, creating the directory if
// needed, and loads every record file found there.
func LoadOrInit[T Record](dir string) (*Store[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir %s: %w", dir, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read store dir %s: %w", dir, err)
	}

	ids := make([]uint64, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		id, err := strconv.ParseUint(strings.TrimSuffix(entry.Name(), ".json"), 10, 32)
		if err != nil {
			// Foreign files in the data dir are skipped, not fatal.
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	s := &Store[T]{dir: dir, records: make([]T, 0, len(ids))}
	for _, id := range ids {
		var rec T
		b, err := os.ReadFile(s.path(uint32(id)))
		if err != nil {
			return nil, fmt.Errorf("read record %d: %w", id, err)
		}
		if err := json.Unmarshal(b, &rec); err != nil {
			return nil, fmt.Errorf("decode record %d: %w", id, err)
		}
		s.records = append(s.records, rec)
	}
	return s, nil
}

// Insert adds a new record and writes its file. It fails with ErrConflict
// if the id is already present.
func (s *Store[T]) Insert(rec T) error {
	id := rec.RecordID()
	for _, existing := range s.records {
		if existing.RecordID() == id {
			return fmt.Errorf("insert record %d: %w", id, ErrConflict)
		}
	}
	if err := s.write(rec); err != nil {
		return err
	}
	s.records = append(s.records, rec)
	return nil
}

// FindByID returns the stored record for id. The returned value is the
// store's own handle; mutations through it must be followed by Save.
func (s *Store[T]) FindByID(id uint32) (T, error) {
	for _, rec := range s.records {
		if rec.RecordID() == id {
			return rec, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("find record %d: %w", id, ErrNotFound)
}

// Save rewrites the file of an already-stored record after an in-memory
// mutation.
func (s *Store[T]) Save(rec T) error {
	id := rec.RecordID()
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	return s.write(rec)
}

// All returns the collection in iteration order. The slice is a copy; the
// records themselves are shared handles.
func (s *Store[T]) All() []T {
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports the number of stored records.
func (s *Store[T]) Len() int {
	return len(s.records)
}

func (s *Store[T]) path(id uint32) string {
	return filepath.Join(s.dir, fmt.Sprintf("%d.json", id))
}

// write serializes the record and replaces its file atomically via a
// temp-file rename, so a crash mid-write never leaves a truncated record.
func (s *Store[T]) write(rec T) error {
	id := rec.RecordID()
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode record %d: %w", id, err)
	}

	target := s.path(id)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write record %d: %w", id, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("persist record %d: %w", id, err)
	}
	return nil
}
