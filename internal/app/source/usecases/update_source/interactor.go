package update_source

import (
	"context"

	"github.com/light-bringer/source-service/internal/app/source/contracts"
	"github.com/light-bringer/source-service/internal/app/source/domain"
)

// Request contains the full replacement contact block for a source.
// Updates are always whole-record replacements, never partial patches.
type Request struct {
	SourceID uint32
	Name     string
	Address  string
	Email    []string
	Phone    []string
}

// Interactor handles the update source use case.
type Interactor struct {
	store contracts.SourceStore
}

// NewInteractor creates a new update source interactor.
func NewInteractor(store contracts.SourceStore) *Interactor {
	return &Interactor{store: store}
}

// Execute wholesale-replaces the contact block and returns the updated
// record. Identity, creation metadata and the price ledger are untouched.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*contracts.SourceDTO, error) {
	if req.Name == "" {
		return nil, domain.ErrNameRequired
	}

	src, err := i.store.Mutate(req.SourceID, func(s *domain.Source) error {
		s.UpdateData(req.Name, req.Address, req.Email, req.Phone)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return contracts.SourceToDTO(src), nil
}
