package price_history

import (
	"context"
	"fmt"

	"github.com/light-bringer/source-service/internal/app/source/contracts"
	"github.com/light-bringer/source-service/internal/app/source/domain"
)

// Request identifies the (source, sku) pair whose history is wanted.
type Request struct {
	SourceID uint32
	SKU      uint32
}

// Query handles the price history read.
type Query struct {
	store contracts.SourceStore
}

// NewQuery creates a new price history query.
func NewQuery(store contracts.SourceStore) *Query {
	return &Query{store: store}
}

// Execute returns the full ordered quote history for the pair. An unknown
// source id or a SKU with no entries on that source is NotFound.
func (q *Query) Execute(ctx context.Context, req *Request) ([]contracts.PriceEntryDTO, error) {
	src, err := q.store.Get(req.SourceID)
	if err != nil {
		return nil, err
	}

	history, ok := src.PriceHistory(req.SKU)
	if !ok {
		return nil, fmt.Errorf("%w: source %d, sku %d", domain.ErrPriceNotFound, req.SourceID, req.SKU)
	}
	return contracts.PriceHistoryToDTO(history), nil
}
