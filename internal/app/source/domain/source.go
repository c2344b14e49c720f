package domain

import (
	"sort"
	"time"
)

// PriceEntry is one immutable price quote for a SKU. Entries are never
// edited or removed once appended to a ledger.
type PriceEntry struct {
	NetPrice  uint32    `json:"net_price"` // smallest currency unit
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"` // server-assigned
	CreatedBy string    `json:"created_by"` // client-supplied actor id
}

// NewPriceEntry creates a quote with a server-assigned timestamp.
func NewPriceEntry(netPrice uint32, comment, createdBy string, now time.Time) PriceEntry {
	return PriceEntry{
		NetPrice:  netPrice,
		Comment:   comment,
		CreatedAt: now,
		CreatedBy: createdBy,
	}
}

// PriceLedger maps a SKU to its ordered, append-only quote history.
// Insertion order is chronological order; the latest price is the last
// element. A sequence is never empty once its key exists.
type PriceLedger map[uint32][]PriceEntry

// SourceData is the mutable contact block of a Source. Email and phone
// order is caller-supplied and preserved; duplicates are allowed and no
// format validation is applied.
type SourceData struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Email   []string `json:"email"`
	Phone   []string `json:"phone"`
}

// NewSourceData builds a contact block.
func NewSourceData(name, address string, email, phone []string) SourceData {
	return SourceData{
		Name:    name,
		Address: address,
		Email:   email,
		Phone:   phone,
	}
}

// Source is the aggregate root: a supplier with contact data and a price
// ledger. ID, CreatedBy and CreatedAt are immutable after creation; Data is
// only ever replaced wholesale; the ledger only grows.
type Source struct {
	ID        uint32      `json:"id"`
	Data      SourceData  `json:"data"`
	Prices    PriceLedger `json:"prices"`
	CreatedBy string      `json:"created_by"`
	CreatedAt time.Time   `json:"created_at"`
}

// SKUPrice pairs a SKU with its latest quote, for price list views.
type SKUPrice struct {
	SKU   uint32
	Price PriceEntry
}

// NewSource creates a Source aggregate with an empty ledger.
func NewSource(id uint32, data SourceData, createdBy string, now time.Time) *Source {
	return &Source{
		ID:        id,
		Data:      data,
		Prices:    make(PriceLedger),
		CreatedBy: createdBy,
		CreatedAt: now,
	}
}

// RecordID implements the keyed-record contract of the file store.
func (s *Source) RecordID() uint32 {
	return s.ID
}

// UpdateData wholesale-replaces the contact block. Identity, creation
// metadata and the ledger are untouched.
func (s *Source) UpdateData(name, address string, email, phone []string) *Source {
	s.Data = NewSourceData(name, address, email, phone)
	return s
}

// AddPrice appends a quote to the ledger entry for sku, creating the
// sequence on first insert. It returns the full updated history so the
// caller can observe the appended entry in context.
func (s *Source) AddPrice(sku uint32, entry PriceEntry) []PriceEntry {
	if s.Prices == nil {
		s.Prices = make(PriceLedger)
	}
	s.Prices[sku] = append(s.Prices[sku], entry)
	return s.Prices[sku]
}

// LatestPrice returns the last quote for sku, reporting absence when the
// SKU has no entries.
func (s *Source) LatestPrice(sku uint32) (PriceEntry, bool) {
	entries := s.Prices[sku]
	if len(entries) == 0 {
		return PriceEntry{}, false
	}
	return entries[len(entries)-1], true
}

// PriceHistory returns the full ordered quote sequence for sku, reporting
// absence when the SKU has no entries.
func (s *Source) PriceHistory(sku uint32) ([]PriceEntry, bool) {
	entries := s.Prices[sku]
	if len(entries) == 0 {
		return nil, false
	}
	return entries, true
}

// SKUs returns every SKU with at least one quote, in ascending order.
func (s *Source) SKUs() []uint32 {
	skus := make([]uint32, 0, len(s.Prices))
	for sku := range s.Prices {
		skus = append(skus, sku)
	}
	sort.Slice(skus, func(i, j int) bool { return skus[i] < skus[j] })
	return skus
}

// PriceList returns the latest quote for every SKU with at least one
// entry, in ascending SKU order.
func (s *Source) PriceList() []SKUPrice {
	list := make([]SKUPrice, 0, len(s.Prices))
	for _, sku := range s.SKUs() {
		price, ok := s.LatestPrice(sku)
		if !ok {
			continue
		}
		list = append(list, SKUPrice{SKU: sku, Price: price})
	}
	return list
}

// Clone deep-copies the aggregate so callers can hold it without sharing
// ledger or contact slices with the store.
func (s *Source) Clone() *Source {
	out := &Source{
		ID:        s.ID,
		CreatedBy: s.CreatedBy,
		CreatedAt: s.CreatedAt,
		Data: SourceData{
			Name:    s.Data.Name,
			Address: s.Data.Address,
			Email:   append([]string(nil), s.Data.Email...),
			Phone:   append([]string(nil), s.Data.Phone...),
		},
		Prices: make(PriceLedger, len(s.Prices)),
	}
	for sku, entries := range s.Prices {
		out.Prices[sku] = append([]PriceEntry(nil), entries...)
	}
	return out
}
