package contracts

import (
	"time"

	"github.com/light-bringer/source-service/internal/app/source/domain"
)

// SourceDTO is a data transfer object for source reads.
type SourceDTO struct {
	ID        uint32
	Name      string
	Address   string
	Email     []string
	Phone     []string
	CreatedBy string
	CreatedAt time.Time
}

// PriceEntryDTO is a data transfer object for one price quote.
type PriceEntryDTO struct {
	NetPrice  uint32
	Comment   string
	CreatedBy string
	CreatedAt time.Time
}

// PriceInfoDTO pairs a latest quote with the source and SKU it belongs to.
type PriceInfoDTO struct {
	SourceID uint32
	SKU      uint32
	Price    PriceEntryDTO
}

// SourceToDTO is the single mapping point from aggregate to DTO. Every
// read path goes through it, so CreatedAt always lands in the timestamp
// field and CreatedBy in the actor field.
func SourceToDTO(src *domain.Source) *SourceDTO {
	return &SourceDTO{
		ID:        src.ID,
		Name:      src.Data.Name,
		Address:   src.Data.Address,
		Email:     src.Data.Email,
		Phone:     src.Data.Phone,
		CreatedBy: src.CreatedBy,
		CreatedAt: src.CreatedAt,
	}
}

// PriceEntryToDTO maps one ledger entry.
func PriceEntryToDTO(entry domain.PriceEntry) PriceEntryDTO {
	return PriceEntryDTO{
		NetPrice:  entry.NetPrice,
		Comment:   entry.Comment,
		CreatedBy: entry.CreatedBy,
		CreatedAt: entry.CreatedAt,
	}
}

// PriceHistoryToDTO maps a full ledger sequence in order.
func PriceHistoryToDTO(entries []domain.PriceEntry) []PriceEntryDTO {
	out := make([]PriceEntryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, PriceEntryToDTO(entry))
	}
	return out
}
