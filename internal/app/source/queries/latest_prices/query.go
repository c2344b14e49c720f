package latest_prices

import (
	"context"

	"github.com/light-bringer/source-service/internal/app/source/contracts"
)

// Request identifies the source whose price list is wanted.
type Request struct {
	SourceID uint32
}

// Query handles the per-source latest price listing.
type Query struct {
	store contracts.SourceStore
}

// NewQuery creates a new latest prices query.
func NewQuery(store contracts.SourceStore) *Query {
	return &Query{store: store}
}

// Execute returns the latest quote for every SKU with at least one entry
// on the source, in ascending SKU order. An existing source with an empty
// ledger yields an empty list, not an error.
func (q *Query) Execute(ctx context.Context, req *Request) ([]contracts.PriceInfoDTO, error) {
	src, err := q.store.Get(req.SourceID)
	if err != nil {
		return nil, err
	}

	list := src.PriceList()
	out := make([]contracts.PriceInfoDTO, 0, len(list))
	for _, item := range list {
		out = append(out, contracts.PriceInfoDTO{
			SourceID: src.ID,
			SKU:      item.SKU,
			Price:    contracts.PriceEntryToDTO(item.Price),
		})
	}
	return out, nil
}
