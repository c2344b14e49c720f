package contracts

import (
	"github.com/light-bringer/source-service/internal/app/source/domain"
)

// SourceStore is the interface use cases and queries depend on. Every
// method is one exclusive-access window over the shared collection;
// returned aggregates are detached copies.
type SourceStore interface {
	// Create allocates the next id and inserts a new aggregate atomically.
	Create(data domain.SourceData, createdBy string) (*domain.Source, error)
	// Get returns the aggregate with the given id, or domain.ErrSourceNotFound.
	Get(id uint32) (*domain.Source, error)
	// Mutate applies fn to one aggregate under the store lock and persists
	// the result, returning the updated copy.
	Mutate(id uint32, fn func(*domain.Source) error) (*domain.Source, error)
	// Snapshot returns the whole collection in insertion order.
	Snapshot() []*domain.Source
}
