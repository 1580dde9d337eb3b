package order

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kirana-labs/kirana-backend/internal/domain"
)

// Build classifies the utterance, constructs an Order, and persists it
// together with the customer's order-count bump in one transaction. Every
// message is a new order; identical utterances are never deduplicated. A
// classification that yields no items is an error, so orders always carry
// at least one item.
//
// A persistence failure is not an error: the classified order is still
// returned with Stored=false so the caller can show the confirmation while
// skipping notification.
func (s *Service) Build(ctx context.Context, in BuildInput) (*BuildResult, error) {
	classified, err := s.classifier.Classify(ctx, in.Text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrClassificationFailed, err)
	}
	if len(classified.Items) == 0 {
		return nil, fmt.Errorf("%w: no items recognized", domain.ErrClassificationFailed)
	}

	items := make([]domain.ClassifiedItem, 0, len(classified.Items))
	for _, it := range classified.Items {
		items = append(items, domain.ClassifiedItem{
			Name:           it.Name,
			Quantity:       it.Quantity,
			CategoryName:   it.CategoryName,
			CategoryNumber: it.CategoryNumber,
		})
	}

	o := domain.NewOrder(in.CustomerPhone, in.CustomerName, in.Text, in.AudioRef, items, time.Now().UTC())

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.orders.Create(ctx, o); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if err := s.profiles.IncrementOrderCount(ctx, in.CustomerPhone); err != nil {
			return fmt.Errorf("increment order count: %w", err)
		}
		return nil
	})
	if err != nil {
		s.log.ErrorContext(ctx, "order persistence failed",
			slog.String("order_id", o.ID.String()),
			slog.String("customer", in.CustomerPhone),
			slog.String("error", err.Error()),
		)
		return &BuildResult{Order: o, Stored: false}, nil
	}

	s.log.InfoContext(ctx, "order stored",
		slog.String("order_id", o.ID.String()),
		slog.String("customer", in.CustomerPhone),
		slog.Int("items", o.TotalItems()),
		slog.Int("categories", o.TotalCategories()),
	)

	return &BuildResult{Order: o, Stored: true}, nil
}
