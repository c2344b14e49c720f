package price_across_sources

import (
	"context"

	"github.com/light-bringer/source-service/internal/app/source/contracts"
)

// Request identifies the SKU to look up across the whole store.
type Request struct {
	SKU uint32
}

// Query handles the cross-source latest price lookup.
type Query struct {
	store contracts.SourceStore
}

// NewQuery creates a new price across sources query.
func NewQuery(store contracts.SourceStore) *Query {
	return &Query{store: store}
}

// Execute returns the latest quote on every source that has quoted the
// SKU, in store order. Sources without an entry are excluded; an empty
// result is permitted.
func (q *Query) Execute(ctx context.Context, req *Request) ([]contracts.PriceInfoDTO, error) {
	var out []contracts.PriceInfoDTO
	for _, src := range q.store.Snapshot() {
		latest, ok := src.LatestPrice(req.SKU)
		if !ok {
			continue
		}
		out = append(out, contracts.PriceInfoDTO{
			SourceID: src.ID,
			SKU:      req.SKU,
			Price:    contracts.PriceEntryToDTO(latest),
		})
	}
	return out, nil
}
