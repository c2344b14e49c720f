package create_source

import (
	"context"

	"github.com/light-bringer/source-service/internal/app/source/contracts"
	"github.com/light-bringer/source-service/internal/app/source/domain"
)

// Request contains the data needed to create a source.
type Request struct {
	Name      string
	Address   string
	Email     []string
	Phone     []string
	CreatedBy string
}

// Interactor handles the create source use case.
type Interactor struct {
	store contracts.SourceStore
}

// NewInteractor creates a new create source interactor.
func NewInteractor(store contracts.SourceStore) *Interactor {
	return &Interactor{store: store}
}

// Execute creates a new source and returns the stored record, including
// its assigned id and creation time.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*contracts.SourceDTO, error) {
	// 1. Validate request
	if err := i.validate(req); err != nil {
		return nil, err
	}

	// 2. Allocate id + insert + re-fetch, one critical section in the store
	data := domain.NewSourceData(req.Name, req.Address, req.Email, req.Phone)
	src, err := i.store.Create(data, req.CreatedBy)
	if err != nil {
		return nil, err
	}

	// 3. Return the stored record
	return contracts.SourceToDTO(src), nil
}

// validate validates the request. Email and phone entries are accepted
// verbatim, unvalidated, order preserved.
func (i *Interactor) validate(req *Request) error {
	if req.Name == "" {
		return domain.ErrNameRequired
	}
	if req.CreatedBy == "" {
		return domain.ErrCreatedByRequired
	}
	return nil
}
