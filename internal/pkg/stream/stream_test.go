package stream

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliver_Order(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	var got []int
	err := Deliver(context.Background(), items, func(n int) error {
		got = append(got, n)
		return nil
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestDeliver_Empty(t *testing.T) {
	err := Deliver(context.Background(), nil, func(n int) error {
		t.Fatal("send must not be called for an empty sequence")
		return nil
	}, nil)
	assert.NoError(t, err)
}

func TestDeliver_LargeSequence(t *testing.T) {
	// More items than the channel buffer, so the producer has to block.
	items := make([]int, 10_000)
	for i := range items {
		items[i] = i
	}

	delivered := 0
	err := Deliver(context.Background(), items, func(n int) error {
		assert.Equal(t, delivered, n)
		delivered++
		return nil
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, len(items), delivered)
}

func TestDeliver_SendFailureAborts(t *testing.T) {
	items := make([]int, 1000)
	sendErr := errors.New("consumer gone")

	calls := 0
	err := Deliver(context.Background(), items, func(int) error {
		calls++
		if calls == 3 {
			return sendErr
		}
		return nil
	}, nil)

	assert.ErrorIs(t, err, ErrDeliveryAborted)
	// Delivery stops at the first failure.
	assert.Equal(t, 3, calls)
}

func TestDeliver_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	items := make([]int, 1000)

	calls := 0
	err := Deliver(ctx, items, func(int) error {
		calls++
		if calls == 10 {
			cancel()
			return ctx.Err()
		}
		return nil
	}, nil)

	assert.ErrorIs(t, err, ErrDeliveryAborted)
	assert.Less(t, calls, len(items))
}
