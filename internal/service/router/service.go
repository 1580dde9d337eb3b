// Package router is the entry point for one inbound WhatsApp event. It
// decides between onboarding, order building, and informational replies, and
// guarantees the transport always gets a well-formed reply string.
package router

import (
	"context"
	"log/slog"

	"github.com/kirana-labs/kirana-backend/internal/domain"
	"github.com/kirana-labs/kirana-backend/internal/service/notify"
	"github.com/kirana-labs/kirana-backend/internal/service/onboarding"
	"github.com/kirana-labs/kirana-backend/internal/service/order"
)

type sessionStore interface {
	Get(phone string) *domain.Session
	Lock(phone string) func()
}

type profileRepo interface {
	GetCustomer(ctx context.Context, phone string) (*domain.Profile, error)
	GetShopkeeper(ctx context.Context, phone string) (*domain.Profile, error)
}

type onboardingService interface {
	Start(ctx context.Context, phone string)
	Advance(ctx context.Context, in onboarding.Input) string
}

type orderBuilder interface {
	Build(ctx context.Context, in order.BuildInput) (*order.BuildResult, error)
}

type dispatcher interface {
	Notify(ctx context.Context, o *domain.Order) (notify.Result, error)
}

type transcriber interface {
	Transcribe(ctx context.Context, audio []byte, language string) (string, error)
}

type mediaDownloader interface {
	DownloadMedia(ctx context.Context, url string) ([]byte, error)
}

type audioStore interface {
	Save(identity string, data []byte) (string, error)
}

// Event is one inbound message, already decoded from the webhook form.
// Latitude/Longitude are set only for shared location pins.
type Event struct {
	From             string
	Body             string
	NumMedia         int
	MediaURL         string
	MediaContentType string
	Latitude         *float64
	Longitude        *float64
	MessageSID       string
}

// Deps bundles the router's collaborators.
type Deps struct {
	Logger      *slog.Logger
	Sessions    sessionStore
	Profiles    profileRepo
	Onboarding  onboardingService
	Builder     orderBuilder
	Dispatcher  dispatcher
	Transcriber transcriber
	Media       mediaDownloader
	Audio       audioStore
	Language    string
}

// Service routes inbound events through the conversation pipeline.
type Service struct {
	sessions    sessionStore
	profiles    profileRepo
	onboarding  onboardingService
	builder     orderBuilder
	dispatcher  dispatcher
	transcriber transcriber
	media       mediaDownloader
	audio       audioStore
	language    string
	log         *slog.Logger
}

// NewService creates a new Router service.
func NewService(deps Deps) *Service {
	return &Service{
		sessions:    deps.Sessions,
		profiles:    deps.Profiles,
		onboarding:  deps.Onboarding,
		builder:     deps.Builder,
		dispatcher:  deps.Dispatcher,
		transcriber: deps.Transcriber,
		media:       deps.Media,
		audio:       deps.Audio,
		language:    deps.Language,
		log:         deps.Logger.With("service", "router"),
	}
}
