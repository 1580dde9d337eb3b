package onboarding

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kirana-labs/kirana-backend/internal/domain"
)

// Advance applies one event to the identity's open session and returns the
// next prompt. Invalid input re-prompts without advancing the step. If no
// session is open a new one is started at the name prompt.
func (s *Service) Advance(ctx context.Context, in Input) string {
	sess := s.sessions.Get(in.Phone)
	if sess == nil {
		s.Start(ctx, in.Phone)
		return replyAskName
	}

	switch sess.Step {
	case domain.StepAwaitingName:
		return s.handleName(ctx, sess, in)
	case domain.StepAwaitingRole:
		return s.handleRole(ctx, sess, in)
	case domain.StepAwaitingShopName:
		return s.handleShopName(ctx, sess, in)
	case domain.StepAwaitingShopDescription:
		return s.handleShopDescription(ctx, sess, in)
	case domain.StepAwaitingLocation:
		return s.handleLocation(ctx, sess, in)
	}

	// Unknown step means the stored session is corrupt; restart cleanly.
	s.log.WarnContext(ctx, "resetting session with unknown step",
		slog.String("phone", in.Phone),
		slog.String("step", sess.Step.String()),
	)
	s.Start(ctx, in.Phone)
	return replyAskName
}

func (s *Service) handleName(ctx context.Context, sess *domain.Session, in Input) string {
	name := strings.TrimSpace(in.Body)
	if name == "" {
		return replyAskName
	}
	sess.Name = name
	sess.Step = domain.StepAwaitingRole
	s.sessions.Put(in.Phone, sess)
	return replyAskedRole
}

func (s *Service) handleRole(ctx context.Context, sess *domain.Session, in Input) string {
	switch strings.ToLower(strings.TrimSpace(in.Body)) {
	case "1", "customer", "buying":
		sess.Role = domain.RoleCustomer
		sess.Step = domain.StepAwaitingLocation
		s.sessions.Put(in.Phone, sess)
		return replyCustomerLocation
	case "2", "shopkeeper", "seller", "selling":
		sess.Role = domain.RoleShopkeeper
		sess.Step = domain.StepAwaitingShopName
		s.sessions.Put(in.Phone, sess)
		return replyAskShopName
	}
	return replyRoleInvalid
}

func (s *Service) handleShopName(ctx context.Context, sess *domain.Session, in Input) string {
	shopName := strings.TrimSpace(in.Body)
	if shopName == "" {
		return replyShopNameMissing
	}
	sess.ShopName = shopName
	sess.Step = domain.StepAwaitingShopDescription
	s.sessions.Put(in.Phone, sess)
	return fmt.Sprintf("Nice! %s 🏪\n\nBriefly describe what you sell (or reply 'skip')", shopName)
}

// handleShopDescription always advances: "skip" (and an empty body) records
// no description.
func (s *Service) handleShopDescription(ctx context.Context, sess *domain.Session, in Input) string {
	desc := strings.TrimSpace(in.Body)
	if !strings.EqualFold(desc, "skip") {
		sess.ShopDesc = desc
	}
	sess.Step = domain.StepAwaitingLocation
	s.sessions.Put(in.Phone, sess)
	return replyShopLocation
}

func (s *Service) handleLocation(ctx context.Context, sess *domain.Session, in Input) string {
	if in.Latitude == nil || in.Longitude == nil {
		return replyLocationInvalid
	}
	sess.Location = &domain.Location{Latitude: *in.Latitude, Longitude: *in.Longitude}

	if err := s.complete(ctx, sess); err != nil {
		s.log.ErrorContext(ctx, "profile upsert failed",
			slog.String("phone", sess.Phone),
			slog.String("role", sess.Role.String()),
			slog.String("error", err.Error()),
		)
		// Session stays open so the user can resend the location.
		return replySaveFailed
	}

	s.sessions.Delete(sess.Phone)

	s.log.InfoContext(ctx, "onboarding complete",
		slog.String("phone", sess.Phone),
		slog.String("role", sess.Role.String()),
	)

	if sess.Role == domain.RoleShopkeeper {
		return fmt.Sprintf("✅ Welcome %s! 🎉\n\nYour profile is set up. You're ready to go! 🚀", sess.ShopName)
	}
	return fmt.Sprintf("✅ Welcome %s! 🎉\n\nYour profile is set up. You can now send me orders! 📝", sess.Name)
}

// complete upserts the finished Profile. The repository preserves the
// creation timestamp of an existing record.
func (s *Service) complete(ctx context.Context, sess *domain.Session) error {
	now := time.Now().UTC()
	profile := &domain.Profile{
		Phone:     sess.Phone,
		Role:      sess.Role,
		Name:      sess.Name,
		Location:  sess.Location,
		Status:    domain.ProfileStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if sess.Role == domain.RoleShopkeeper {
		profile.ShopName = sess.ShopName
		profile.Description = sess.ShopDesc
		return s.profiles.UpsertShopkeeper(ctx, profile)
	}
	return s.profiles.UpsertCustomer(ctx, profile)
}
