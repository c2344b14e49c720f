package create_source

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

func setup(t *testing.T) *Interactor {
	t.Helper()
	pack, err := filestore.LoadOrInit[*domain.Source](t.TempDir())
	require.NoError(t, err)
	return NewInteractor(store.New(pack, clock.NewMockClock(testTime), nil))
}

func TestInteractor_Execute(t *testing.T) {
	interactor := setup(t)

	t.Run("creates and returns the stored record", func(t *testing.T) {
		dto, err := interactor.Execute(context.Background(), &Request{
			Name:      "Acme",
			Address:   "1 Main St",
			Email:     []string{"a@x.com"},
			Phone:     []string{"555-1"},
			CreatedBy: "alice",
		})
		require.NoError(t, err)
		assert.Equal(t, uint32(1), dto.ID)
		assert.Equal(t, "Acme", dto.Name)
		assert.Equal(t, []string{"a@x.com"}, dto.Email)
		assert.Equal(t, "alice", dto.CreatedBy)
		assert.Equal(t, testTime, dto.CreatedAt)
	})

	t.Run("ids are sequential", func(t *testing.T) {
		dto, err := interactor.Execute(context.Background(), &Request{Name: "Next", CreatedBy: "bob"})
		require.NoError(t, err)
		assert.Equal(t, uint32(2), dto.ID)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := interactor.Execute(context.Background(), &Request{CreatedBy: "alice"})
		assert.ErrorIs(t, err, domain.ErrNameRequired)
	})

	t.Run("missing actor is rejected", func(t *testing.T) {
		_, err := interactor.Execute(context.Background(), &Request{Name: "Acme"})
		assert.ErrorIs(t, err, domain.ErrCreatedByRequired)
	})

	t.Run("duplicate emails and phones are preserved verbatim", func(t *testing.T) {
		dto, err := interactor.Execute(context.Background(), &Request{
			Name:      "Dup",
			Email:     []string{"x@y.z", "x@y.z", "not-an-email"},
			CreatedBy: "alice",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"x@y.z", "x@y.z", "not-an-email"}, dto.Email)
	})
}
