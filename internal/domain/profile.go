package domain

import (
	"strconv"
	"time"
)

// Role tags a completed Profile. An identity has no role until onboarding
// finishes.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleShopkeeper Role = "shopkeeper"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleShopkeeper:
		return true
	}
	return false
}

// ProfileStatus represents the activity status of a profile. Only active
// shopkeepers receive order notifications.
type ProfileStatus string

const (
	ProfileStatusActive   ProfileStatus = "active"
	ProfileStatusInactive ProfileStatus = "inactive"
)

func (s ProfileStatus) String() string { return string(s) }

func (s ProfileStatus) IsValid() bool {
	switch s {
	case ProfileStatusActive, ProfileStatusInactive:
		return true
	}
	return false
}

// Location is a shared WhatsApp location pin.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Label renders the location in the format stored by the original handler.
func (l Location) Label() string {
	return "Lat: " + trimFloat(l.Latitude) + ", Lon: " + trimFloat(l.Longitude)
}

// Profile is the persisted record for an identity that completed onboarding.
// At most one Profile exists per identity per role collection.
type Profile struct {
	Phone       string
	Role        Role
	Name        string
	ShopName    string // shopkeeper only
	Description string // shopkeeper only, empty when skipped
	Location    *Location
	Status      ProfileStatus
	TotalOrders int // customer only, incremented on each stored order
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive reports whether the profile can participate (place or receive orders).
func (p *Profile) IsActive() bool { return p.Status == ProfileStatusActive }

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
