// Package onboarding drives the conversation that turns an unknown identity
// into a customer or shopkeeper Profile. Progress lives in the session store;
// a completed conversation upserts the Profile and drops the session.
package onboarding

import (
	"context"
	"log/slog"

	"github.com/kirana-labs/kirana-backend/internal/domain"
)

type sessionStore interface {
	Get(phone string) *domain.Session
	Put(phone string, sess *domain.Session)
	Delete(phone string)
}

type profileRepo interface {
	UpsertCustomer(ctx context.Context, p *domain.Profile) error
	UpsertShopkeeper(ctx context.Context, p *domain.Profile) error
}

// Service runs the onboarding state machine.
type Service struct {
	sessions sessionStore
	profiles profileRepo
	log      *slog.Logger
}

// NewService creates a new Onboarding service.
func NewService(
	log *slog.Logger,
	sessions sessionStore,
	profiles profileRepo,
) *Service {
	return &Service{
		sessions: sessions,
		profiles: profiles,
		log:      log.With("service", "onboarding"),
	}
}

// Input is one inbound event applied to an open onboarding session.
// Latitude/Longitude are set only when the message is a shared location pin.
type Input struct {
	Phone     string
	Body      string
	Latitude  *float64
	Longitude *float64
}
