// Package store maintains the authoritative, uniquely-id'd collection of
// Source aggregates behind a single mutex.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/light-bringer/source-service/internal/app/source/domain"
	"github.com/light-bringer/source-service/internal/pkg/clock"
	"github.com/light-bringer/source-service/internal/pkg/filestore"
	"github.com/light-bringer/source-service/internal/pkg/logging"
)

// EntityStore guards the loaded Source collection with one mutex. Every
// operation acquires the lock, runs synchronously, and releases it before
// returning; nothing suspends while holding it. Returned aggregates are
// deep copies, so callers can stream them without the lock.
type EntityStore struct {
	mu     sync.Mutex
	pack   *filestore.Store[*domain.Source]
	clock  clock.Clock
	logger *slog.Logger
}

// New wraps a loaded record collection.
func New(pack *filestore.Store[*domain.Source], clk clock.Clock, logger *slog.Logger) *EntityStore {
	s := &EntityStore{
		pack:   pack,
		clock:  clk,
		logger: logging.Default(logger).With("component", "entity_store"),
	}
	s.logger.Info("source store loaded", "sources", pack.Len())
	return s
}

// nextID scans the collection and returns max(id)+1, or 1 when empty.
// O(n) per call is a deliberate simplicity trade-off. Callers must hold mu;
// uniqueness holds only while insertion happens under the same lock window.
func (s *EntityStore) nextID() uint32 {
	var latest uint32
	for _, src := range s.pack.All() {
		if src.ID > latest {
			latest = src.ID
		}
	}
	return latest + 1
}

// Create allocates the next id, inserts the new aggregate and re-fetches it,
// all inside one critical section, so concurrent creators can never be
// handed the same id.
func (s *EntityStore) Create(data domain.SourceData, createdBy string) (*domain.Source, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := domain.NewSource(s.nextID(), data, createdBy, s.clock.Now())
	if err := s.pack.Insert(src); err != nil {
		if errors.Is(err, filestore.ErrConflict) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrIDConflict, src.ID)
		}
		return nil, fmt.Errorf("insert source: %w", err)
	}

	stored, err := s.pack.FindByID(src.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: created source %d not found", domain.ErrStoreInconsistent, src.ID)
	}
	return stored.Clone(), nil
}

// Get returns a copy of the aggregate with the given id.
func (s *EntityStore) Get(id uint32) (*domain.Source, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, err := s.find(id)
	if err != nil {
		return nil, err
	}
	return src.Clone(), nil
}

// Mutate applies fn to one aggregate under the lock and persists the
// result. If fn fails, nothing is persisted. The updated copy is returned
// so callers can read the outcome without another lookup.
func (s *EntityStore) Mutate(id uint32, fn func(*domain.Source) error) (*domain.Source, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if err := fn(src); err != nil {
		return nil, err
	}
	if err := s.pack.Save(src); err != nil {
		return nil, fmt.Errorf("persist source %d: %w", id, err)
	}
	return src.Clone(), nil
}

// Snapshot returns a consistent copy of the whole collection in the
// store's insertion order (not guaranteed sorted by id).
func (s *EntityStore) Snapshot() []*domain.Source {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.pack.All()
	out := make([]*domain.Source, 0, len(all))
	for _, src := range all {
		out = append(out, src.Clone())
	}
	return out
}

// find resolves an id to the stored handle. Callers must hold mu.
func (s *EntityStore) find(id uint32) (*domain.Source, error) {
	src, err := s.pack.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrSourceNotFound, id)
	}
	return src, nil
}
