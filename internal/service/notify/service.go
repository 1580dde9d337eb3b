// Package notify fans an order out to every active shopkeeper. Delivery
// failures are isolated per recipient and reported as outcomes, never as
// errors that abort the fan-out.
package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/kirana-labs/kirana-backend/internal/domain"
)

type profileRepo interface {
	ListActiveShopkeepers(ctx context.Context) ([]*domain.Profile, error)
}

type orderRepo interface {
	SetNotifiedRecipients(ctx context.Context, id uuid.UUID, recipients []string) error
}

type messenger interface {
	Send(ctx context.Context, to, body string) error
}

// Service dispatches order notifications.
type Service struct {
	profiles  profileRepo
	orders    orderRepo
	messenger messenger
	// testRecipients is a config-driven allow-list merged into every
	// resolved recipient set, for staging numbers that have no Profile.
	testRecipients []string
	log            *slog.Logger
}

// NewService creates a new Notify service.
func NewService(
	log *slog.Logger,
	profiles profileRepo,
	orders orderRepo,
	messenger messenger,
	testRecipients []string,
) *Service {
	return &Service{
		profiles:       profiles,
		orders:         orders,
		messenger:      messenger,
		testRecipients: testRecipients,
		log:            log.With("service", "notify"),
	}
}
