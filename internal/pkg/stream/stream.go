// Package stream decouples result computation from result delivery.
//
// Multi-result operations materialize their full result list while the
// store lock is held, release it, and then hand the list to Deliver, which
// pushes items through a buffered channel to the consumer one at a time.
// Delivery failure aborts only the affected stream.
package stream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/light-bringer/source-service/internal/pkg/logging"
)

// ErrDeliveryAborted reports that the consumer went away (or its context
// ended) before the sequence was fully delivered. It is a per-stream
// condition, never a process fault.
var ErrDeliveryAborted = errors.New("stream delivery aborted")

// channelBuffer bounds the producer/consumer gap per stream.
const channelBuffer = 100

// Deliver pushes items, in order, to send until the list is exhausted, the
// context ends, or send fails. The first failure is logged once and
// surfaced as ErrDeliveryAborted; later items are not attempted.
func Deliver[T any](ctx context.Context, items []T, send func(T) error, logger *slog.Logger) error {
	logger = logging.Default(logger)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan T, channelBuffer)
	go func() {
		defer close(ch)
		for _, item := range items {
			select {
			case ch <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	delivered := 0
	for item := range ch {
		if err := send(item); err != nil {
			cancel()
			logger.Warn("stream delivery aborted",
				"delivered", delivered,
				"total", len(items),
				"error", err)
			return fmt.Errorf("%w after %d of %d items: %v", ErrDeliveryAborted, delivered, len(items), err)
		}
		delivered++
	}

	if err := ctx.Err(); err != nil && delivered < len(items) {
		logger.Warn("stream consumer gone",
			"delivered", delivered,
			"total", len(items))
		return fmt.Errorf("%w after %d of %d items: %v", ErrDeliveryAborted, delivered, len(items), err)
	}
	return nil
}
