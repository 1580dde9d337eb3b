package domain

import "time"

// OnboardingStep is the current position in the onboarding conversation.
type OnboardingStep string

const (
	StepAwaitingName            OnboardingStep = "awaiting_name"
	StepAwaitingRole            OnboardingStep = "awaiting_role"
	StepAwaitingShopName        OnboardingStep = "awaiting_shop_name"
	StepAwaitingShopDescription OnboardingStep = "awaiting_shop_description"
	StepAwaitingLocation        OnboardingStep = "awaiting_location"
)

func (s OnboardingStep) String() string { return string(s) }

func (s OnboardingStep) IsValid() bool {
	switch s {
	case StepAwaitingName, StepAwaitingRole, StepAwaitingShopName,
		StepAwaitingShopDescription, StepAwaitingLocation:
		return true
	}
	return false
}

// Session is the transient onboarding progress for one identity. Sessions
// live only in memory: they are created on the first event from an unknown
// identity and destroyed when onboarding completes. Abandoned sessions do
// not expire.
type Session struct {
	Phone     string
	Step      OnboardingStep
	Name      string
	Role      Role
	ShopName  string
	ShopDesc  string
	Location  *Location
	CreatedAt time.Time
}

// NewSession starts onboarding for an identity at the name prompt.
func NewSession(phone string, now time.Time) *Session {
	return &Session{
		Phone:     phone,
		Step:      StepAwaitingName,
		CreatedAt: now,
	}
}
