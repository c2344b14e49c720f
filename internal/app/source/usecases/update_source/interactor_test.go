package update_source

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/source-service/internal/app/source/domain"
	"github.com/light-bringer/source-service/internal/app/source/store"
	"github.com/light-bringer/source-service/internal/pkg/clock"
	"github.com/light-bringer/source-service/internal/pkg/filestore"
)

var testTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestInteractor_Execute(t *testing.T) {
	pack, err := filestore.LoadOrInit[*domain.Source](t.TempDir())
	require.NoError(t, err)
	entityStore := store.New(pack, clock.NewMockClock(testTime), nil)
	interactor := NewInteractor(entityStore)

	src, err := entityStore.Create(
		domain.NewSourceData("Before", "1 Old Rd", []string{"old@x.com"}, []string{"555-0"}),
		"alice",
	)
	require.NoError(t, err)
	_, err = entityStore.Mutate(src.ID, func(s *domain.Source) error {
		s.AddPrice(42, domain.NewPriceEntry(1000, "", "alice", testTime))
		return nil
	})
	require.NoError(t, err)

	t.Run("replaces the whole contact block", func(t *testing.T) {
		dto, err := interactor.Execute(context.Background(), &Request{
			SourceID: src.ID,
			Name:     "After",
			Address:  "2 New Rd",
			Email:    []string{"new@x.com"},
		})
		require.NoError(t, err)

		assert.Equal(t, src.ID, dto.ID)
		assert.Equal(t, "After", dto.Name)
		assert.Equal(t, "2 New Rd", dto.Address)
		assert.Equal(t, []string{"new@x.com"}, dto.Email)
		// Omitted fields are replaced, not merged
		assert.Empty(t, dto.Phone)
		// Creation metadata is untouched
		assert.Equal(t, "alice", dto.CreatedBy)
		assert.Equal(t, testTime, dto.CreatedAt)
	})

	t.Run("ledger survives the replacement", func(t *testing.T) {
		updated, err := entityStore.Get(src.ID)
		require.NoError(t, err)
		history, ok := updated.PriceHistory(42)
		require.True(t, ok)
		assert.Len(t, history, 1)
	})

	t.Run("empty name is rejected without mutating", func(t *testing.T) {
		_, err := interactor.Execute(context.Background(), &Request{SourceID: src.ID})
		assert.ErrorIs(t, err, domain.ErrNameRequired)

		current, err := entityStore.Get(src.ID)
		require.NoError(t, err)
		assert.Equal(t, "After", current.Data.Name)
	})

	t.Run("unknown source is NotFound", func(t *testing.T) {
		_, err := interactor.Execute(context.Background(), &Request{SourceID: 999, Name: "X"})
		assert.ErrorIs(t, err, domain.ErrSourceNotFound)
	})
}
