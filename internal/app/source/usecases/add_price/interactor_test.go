package add_price

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

func setup(t *testing.T) (*Interactor, *store.EntityStore, *clock.MockClock) {
	t.Helper()
	pack, err := filestore.LoadOrInit[*domain.Source](t.TempDir())
	require.NoError(t, err)
	clk := clock.NewMockClock(testTime)
	entityStore := store.New(pack, clk, nil)
	return NewInteractor(entityStore, clk), entityStore, clk
}

func TestInteractor_Execute(t *testing.T) {
	interactor, entityStore, clk := setup(t)
	src, err := entityStore.Create(domain.NewSourceData("Acme", "1 Main St", nil, nil), "alice")
	require.NoError(t, err)

	t.Run("first quote creates the sequence", func(t *testing.T) {
		result, err := interactor.Execute(context.Background(), &Request{
			SourceID:  src.ID,
			SKU:       42,
			NetPrice:  1000,
			Comment:   "intro",
			CreatedBy: "alice",
		})
		require.NoError(t, err)
		assert.Equal(t, src.ID, result.SourceID)
		assert.Equal(t, uint32(42), result.SKU)
		require.Len(t, result.History, 1)
		assert.Equal(t, uint32(1000), result.History[0].NetPrice)
		assert.Equal(t, testTime, result.History[0].CreatedAt)
	})

	t.Run("second quote appends and returns both", func(t *testing.T) {
		clk.Advance(time.Minute)
		result, err := interactor.Execute(context.Background(), &Request{
			SourceID:  src.ID,
			SKU:       42,
			NetPrice:  900,
			Comment:   "discount",
			CreatedBy: "bob",
		})
		require.NoError(t, err)
		require.Len(t, result.History, 2)
		assert.Equal(t, "intro", result.History[0].Comment)
		assert.Equal(t, "discount", result.History[1].Comment)
		assert.Equal(t, "bob", result.History[1].CreatedBy)
		assert.True(t, result.History[1].CreatedAt.After(result.History[0].CreatedAt))
	})

	t.Run("unknown source is NotFound", func(t *testing.T) {
		_, err := interactor.Execute(context.Background(), &Request{
			SourceID:  999,
			SKU:       42,
			NetPrice:  1,
			CreatedBy: "alice",
		})
		assert.ErrorIs(t, err, domain.ErrSourceNotFound)
	})

	t.Run("missing actor is rejected", func(t *testing.T) {
		_, err := interactor.Execute(context.Background(), &Request{
			SourceID: src.ID,
			SKU:      42,
			NetPrice: 1,
		})
		assert.ErrorIs(t, err, domain.ErrCreatedByRequired)
	})
}
