package add_price

import (
	"context"

	"github.com/light-bringer/source-service/internal/app/source/contracts"
	"github.com/light-bringer/source-service/internal/app/source/domain"
	"github.com/light-bringer/source-service/internal/pkg/clock"
)

// Request contains one new price quote for a (source, sku) pair.
type Request struct {
	SourceID  uint32
	SKU       uint32
	NetPrice  uint32
	Comment   string
	CreatedBy string
}

// Result is the full price history of the pair after the append, so the
// caller can observe the new entry in context.
type Result struct {
	SourceID uint32
	SKU      uint32
	History  []contracts.PriceEntryDTO
}

// Interactor handles the add price use case.
type Interactor struct {
	store contracts.SourceStore
	clock clock.Clock
}

// NewInteractor creates a new add price interactor.
func NewInteractor(store contracts.SourceStore, clk clock.Clock) *Interactor {
	return &Interactor{store: store, clock: clk}
}

// Execute appends a quote with a server-assigned timestamp. The append and
// its persistence happen in one store lock window; the SKU's sequence is
// created on first insert.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	// 1. Validate request
	if req.CreatedBy == "" {
		return nil, domain.ErrCreatedByRequired
	}

	// 2. Append under the store lock
	entry := domain.NewPriceEntry(req.NetPrice, req.Comment, req.CreatedBy, i.clock.Now())
	src, err := i.store.Mutate(req.SourceID, func(s *domain.Source) error {
		s.AddPrice(req.SKU, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 3. Read back the updated history from the returned copy
	history, ok := src.PriceHistory(req.SKU)
	if !ok {
		return nil, domain.ErrStoreInconsistent
	}

	return &Result{
		SourceID: req.SourceID,
		SKU:      req.SKU,
		History:  contracts.PriceHistoryToDTO(history),
	}, nil
}
