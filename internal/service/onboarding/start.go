package onboarding

import (
	"context"
	"log/slog"
	"time"

	"github.com/kirana-labs/kirana-backend/internal/domain"
)

// Start opens a session for an unknown identity at the name prompt. An
// existing session for the same identity is replaced.
func (s *Service) Start(ctx context.Context, phone string) {
	s.sessions.Put(phone, domain.NewSession(phone, time.Now().UTC()))
	s.log.InfoContext(ctx, "onboarding started", slog.String("phone", phone))
}
