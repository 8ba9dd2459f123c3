// Package tracker simulates courier progress by periodically advancing every
// open order one step along its lifecycle.
package tracker

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/therajusah/Ecommerce-app/internal/domain"
	"github.com/therajusah/Ecommerce-app/internal/store"
)

const DefaultInterval = 15 * time.Second

// OrderBook is the slice of an order store the tracker drives.
type OrderBook interface {
	OpenOrderIDs() []string
	Advance(orderID string) (domain.Order, error)
}

type Tracker struct {
	books    func() []OrderBook
	interval time.Duration
	logger   *zap.Logger
}

func New(books func() []OrderBook, interval time.Duration, logger *zap.Logger) *Tracker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Tracker{
		books:    books,
		interval: interval,
		logger:   logger,
	}
}

// Run ticks until ctx is cancelled.
func (t *Tracker) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.logger.Info("order tracker started", zap.Duration("interval", t.interval))

	for {
		select {
		case <-ctx.Done():
			t.logger.Info("order tracker stopped")
			return nil
		case <-ticker.C:
			t.advanceAll()
		}
	}
}

// advanceAll moves every open order one step. Orders that were cancelled or
// delivered between listing and advancing are rejected by the store and
// skipped.
func (t *Tracker) advanceAll() int {
	advanced := 0
	for _, book := range t.books() {
		for _, id := range book.OpenOrderIDs() {
			order, err := book.Advance(id)
			switch {
			case err == nil:
				advanced++
				t.logger.Info("order advanced",
					zap.String("order_id", id),
					zap.String("status", order.Status.String()))
			case errors.Is(err, store.ErrOrderTerminal), errors.Is(err, store.ErrOrderNotFound):
				t.logger.Debug("order skipped",
					zap.String("order_id", id),
					zap.Error(err))
			default:
				t.logger.Warn("failed to advance order",
					zap.String("order_id", id),
					zap.Error(err))
			}
		}
	}
	return advanced
}
