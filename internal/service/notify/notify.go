package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/kirana-labs/kirana-backend/internal/domain"
)

const notifyRule = "────────────────────────────────────────" // 40

// Notify sends the order to every active shopkeeper plus the configured test
// recipients. Each recipient is attempted independently. When at least one
// recipient was processed, the order's notified-recipient list is set to the
// full resolved set: it records who a dispatch attempt covered, not who
// confirmed receipt.
func (s *Service) Notify(ctx context.Context, order *domain.Order) (Result, error) {
	shopkeepers, err := s.profiles.ListActiveShopkeepers(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list active shopkeepers: %w", err)
	}

	recipients := make([]string, 0, len(shopkeepers)+len(s.testRecipients))
	for _, sk := range shopkeepers {
		recipients = append(recipients, sk.Phone)
	}
	for _, phone := range s.testRecipients {
		if !slices.Contains(recipients, phone) {
			recipients = append(recipients, phone)
		}
	}

	if len(recipients) == 0 {
		s.log.WarnContext(ctx, "no recipients to notify", slog.String("order_id", order.ID.String()))
		return Result{}, nil
	}

	body := formatNotification(order)

	result := Result{Outcomes: make([]RecipientOutcome, 0, len(recipients))}
	for _, phone := range recipients {
		result.Outcomes = append(result.Outcomes, RecipientOutcome{
			Phone:  phone,
			Status: s.sendOne(ctx, phone, body, order),
		})
	}

	if result.Processed() > 0 {
		if err := s.orders.SetNotifiedRecipients(ctx, order.ID, recipients); err != nil {
			// The fan-out already happened; losing the bookkeeping update
			// must not fail the dispatch.
			s.log.ErrorContext(ctx, "recording notified recipients failed",
				slog.String("order_id", order.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "notifications processed",
		slog.String("order_id", order.ID.String()),
		slog.Int("recipients", len(recipients)),
		slog.Int("processed", result.Processed()),
		slog.Int("failed", result.Failed()),
	)

	return result, nil
}

func (s *Service) sendOne(ctx context.Context, phone, body string, order *domain.Order) DeliveryStatus {
	err := s.messenger.Send(ctx, phone, body)
	if err == nil {
		return StatusDelivered
	}

	if errors.Is(err, domain.ErrRateLimited) {
		// Log the full message so it can be relayed by hand once the quota
		// resets.
		s.log.WarnContext(ctx, "delivery rate limited, message queued for manual follow-up",
			slog.String("order_id", order.ID.String()),
			slog.String("recipient", phone),
			slog.String("body", body),
		)
		return StatusRateLimited
	}

	s.log.WarnContext(ctx, "delivery failed",
		slog.String("order_id", order.ID.String()),
		slog.String("recipient", phone),
		slog.String("error", err.Error()),
	)
	return StatusFailed
}

// formatNotification renders the shopkeeper-facing order message.
func formatNotification(order *domain.Order) string {
	grouped := order.Grouped()

	var b strings.Builder
	b.WriteString("🔔 NEW ORDER RECEIVED!\n\n")
	fmt.Fprintf(&b, "👤 Customer: %s\n", order.CustomerName)
	fmt.Fprintf(&b, "📞 Phone: %s\n", order.CustomerPhone)
	fmt.Fprintf(&b, "🆔 Order ID: %s\n\n", order.ID)
	b.WriteString("📋 Items Requested:\n")
	b.WriteString(notifyRule + "\n")

	for _, category := range grouped.Categories {
		fmt.Fprintf(&b, "%s %s\n", domain.CategoryMarker(category), category)
		for _, item := range grouped.Items[category] {
			fmt.Fprintf(&b, "  • %s (%s)\n", item.Name, item.Quantity)
		}
	}

	b.WriteString(notifyRule + "\n")
	fmt.Fprintf(&b, "📊 Total Items: %d\n\n", order.TotalItems())
	b.WriteString("Reply to confirm or discuss delivery! ✅")
	return b.String()
}
