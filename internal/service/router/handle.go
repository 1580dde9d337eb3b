package router

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/kirana-labs/kirana-backend/internal/domain"
	"github.com/kirana-labs/kirana-backend/internal/service/onboarding"
	"github.com/kirana-labs/kirana-backend/internal/service/order"
)

// Handle processes one inbound event to completion and returns the reply.
// Events for the same identity are serialized through the session store's
// keyed lock. Every outcome, including collaborator failures, maps to a
// user-visible reply.
func (s *Service) Handle(ctx context.Context, ev Event) string {
	unlock := s.sessions.Lock(ev.From)
	defer unlock()

	s.log.InfoContext(ctx, "inbound event",
		slog.String("from", ev.From),
		slog.String("message_sid", ev.MessageSID),
		slog.Int("num_media", ev.NumMedia),
	)

	// An open session consumes the event regardless of its content.
	if s.sessions.Get(ev.From) != nil {
		return s.onboarding.Advance(ctx, onboarding.Input{
			Phone:     ev.From,
			Body:      ev.Body,
			Latitude:  ev.Latitude,
			Longitude: ev.Longitude,
		})
	}

	if ev.NumMedia > 0 {
		if !strings.HasPrefix(ev.MediaContentType, "audio/") {
			return replyMediaNotAudio
		}
		return s.handleVoice(ctx, ev)
	}

	return s.handleText(ctx, ev)
}

func (s *Service) handleVoice(ctx context.Context, ev Event) string {
	customer, shopkeeper, err := s.lookupProfiles(ctx, ev.From)
	if err != nil {
		s.log.ErrorContext(ctx, "profile lookup failed", slog.String("from", ev.From), slog.String("error", err.Error()))
		return replyServerError
	}
	if customer == nil && shopkeeper == nil {
		s.onboarding.Start(ctx, ev.From)
		return replyWelcomeAudio
	}

	audio, err := s.media.DownloadMedia(ctx, ev.MediaURL)
	if err != nil {
		s.log.ErrorContext(ctx, "media download failed", slog.String("from", ev.From), slog.String("error", err.Error()))
		return replyDownloadFailed
	}

	audioRef, err := s.audio.Save(ev.From, audio)
	if err != nil {
		// Losing the cached copy does not block the order.
		s.log.WarnContext(ctx, "audio cache write failed", slog.String("from", ev.From), slog.String("error", err.Error()))
		audioRef = ""
	}

	text, err := s.transcriber.Transcribe(ctx, audio, s.language)
	if err != nil {
		s.log.ErrorContext(ctx, "transcription failed", slog.String("from", ev.From), slog.String("error", err.Error()))
		return replyTranscriptionFailed
	}
	if strings.TrimSpace(text) == "" {
		s.log.WarnContext(ctx, "empty transcription result", slog.String("from", ev.From))
		return replyTranscriptionFailed
	}

	customerName := "Unknown Customer"
	if customer != nil {
		customerName = customer.Name
	}

	return s.buildAndNotify(ctx, order.BuildInput{
		CustomerPhone: ev.From,
		CustomerName:  customerName,
		Text:          text,
		AudioRef:      audioRef,
	})
}

func (s *Service) handleText(ctx context.Context, ev Event) string {
	text := strings.TrimSpace(ev.Body)
	if text == "" {
		return replyFallbackGreeting
	}

	customer, shopkeeper, err := s.lookupProfiles(ctx, ev.From)
	if err != nil {
		s.log.ErrorContext(ctx, "profile lookup failed", slog.String("from", ev.From), slog.String("error", err.Error()))
		return replyServerError
	}
	if customer == nil && shopkeeper == nil {
		s.onboarding.Start(ctx, ev.From)
		return replyWelcomeText
	}
	if customer == nil {
		return replyShopkeeperInfo
	}

	return s.buildAndNotify(ctx, order.BuildInput{
		CustomerPhone: ev.From,
		CustomerName:  customer.Name,
		Text:          text,
		AudioRef:      domain.AudioRefText,
	})
}

func (s *Service) buildAndNotify(ctx context.Context, in order.BuildInput) string {
	result, err := s.builder.Build(ctx, in)
	if err != nil {
		s.log.ErrorContext(ctx, "order build failed", slog.String("from", in.CustomerPhone), slog.String("error", err.Error()))
		return replyClassificationFailed
	}

	reply := order.FormatConfirmation(result.Order, result.Stored)

	// Unstored orders never notify: the customer sees the classification
	// but nothing claims to be saved.
	if result.Stored {
		if _, err := s.dispatcher.Notify(ctx, result.Order); err != nil {
			s.log.ErrorContext(ctx, "notification dispatch failed",
				slog.String("order_id", result.Order.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return reply
}

// lookupProfiles resolves the identity's customer and shopkeeper records.
// Absence is not an error; any other repo failure is.
func (s *Service) lookupProfiles(ctx context.Context, phone string) (customer, shopkeeper *domain.Profile, err error) {
	customer, err = s.profiles.GetCustomer(ctx, phone)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, nil, err
		}
		customer = nil
	}

	shopkeeper, err = s.profiles.GetShopkeeper(ctx, phone)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, nil, err
		}
		shopkeeper = nil
	}

	return customer, shopkeeper, nil
}
