package get_source

import (
	"context"

	"github.com/light-bringer/source-service/internal/app/source/contracts"
)

// Request identifies the source to fetch.
type Request struct {
	SourceID uint32
}

// Query handles the get source read.
type Query struct {
	store contracts.SourceStore
}

// NewQuery creates a new get source query.
func NewQuery(store contracts.SourceStore) *Query {
	return &Query{store: store}
}

// Execute returns the full source record, or domain.ErrSourceNotFound.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.SourceDTO, error) {
	src, err := q.store.Get(req.SourceID)
	if err != nil {
		return nil, err
	}
	return contracts.SourceToDTO(src), nil
}
