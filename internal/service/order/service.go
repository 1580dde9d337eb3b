// Package order turns a classified utterance into a persisted Order and
// formats the confirmation shown to the customer.
package order

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/kirana-labs/kirana-backend/internal/domain"
	"github.com/kirana-labs/kirana-backend/internal/provider"
)

type classifier interface {
	Classify(ctx context.Context, text string) (*provider.ClassificationResult, error)
}

type orderRepo interface {
	Create(ctx context.Context, o *domain.Order) error
}

type profileRepo interface {
	IncrementOrderCount(ctx context.Context, phone string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service builds orders from inbound utterances.
type Service struct {
	classifier classifier
	orders     orderRepo
	profiles   profileRepo
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Order service.
func NewService(
	log *slog.Logger,
	classifier classifier,
	orders orderRepo,
	profiles profileRepo,
	tx txManager,
) *Service {
	return &Service{
		classifier: classifier,
		orders:     orders,
		profiles:   profiles,
		tx:         tx,
		log:        log.With("service", "order"),
	}
}

// BuildInput describes one utterance to turn into an order. AudioRef is the
// cached voice-note path, or domain.AudioRefText for typed orders.
type BuildInput struct {
	CustomerPhone string
	CustomerName  string
	Text          string
	AudioRef      string
}

// BuildResult is the outcome of one Build call. Stored is false when
// classification succeeded but persistence did not; the caller must then
// skip notification.
type BuildResult struct {
	Order  *domain.Order
	Stored bool
}

// OrderID is a convenience accessor safe on a nil result.
func (r *BuildResult) OrderID() uuid.UUID {
	if r == nil || r.Order == nil {
		return uuid.Nil
	}
	return r.Order.ID
}
