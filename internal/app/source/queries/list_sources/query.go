package list_sources

import (
	"context"

	"github.com/light-bringer/source-service/internal/app/source/contracts"
)

// Query handles the list sources read.
type Query struct {
	store contracts.SourceStore
}

// NewQuery creates a new list sources query.
func NewQuery(store contracts.SourceStore) *Query {
	return &Query{store: store}
}

// Execute materializes every source record in store order. The snapshot is
// taken inside one lock window; the result is detached and safe to stream
// without the lock.
func (q *Query) Execute(ctx context.Context) ([]*contracts.SourceDTO, error) {
	snapshot := q.store.Snapshot()
	out := make([]*contracts.SourceDTO, 0, len(snapshot))
	for _, src := range snapshot {
		out = append(out, contracts.SourceToDTO(src))
	}
	return out, nil
}
