package entity

import "time"

// BuskingEvent is a scheduled street performance pinned to a map position.
type BuskingEvent struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	DateTime    time.Time `json:"dateTime"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	Owner       *Owner    `json:"user,omitempty"`
}

// CommunityEvent is a scheduled neighborhood meetup.
type CommunityEvent struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	DateTime    time.Time `json:"dateTime"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	Owner       *Owner    `json:"user,omitempty"`
}

// LessonEvent is an open lesson offer with a free-form category label.
type LessonEvent struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	Owner       *Owner    `json:"user,omitempty"`
}

// Business is a storefront registered by a business-capable user.
// Name is unique per owning user.
type Business struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Address   string          `json:"address"`
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	UserID    string          `json:"userId"`
	CreatedAt time.Time       `json:"createdAt"`
	Owner     *Owner          `json:"user,omitempty"`
	Events    []RealtimeEvent `json:"realtimeEvents,omitempty"`
}

// RealtimeEvent is a time-windowed promotion attached to a Business.
type RealtimeEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	BusinessID  string    `json:"businessId"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	Owner       *Owner    `json:"user,omitempty"`
	Business    *Business `json:"business,omitempty"`
}

// NayogiEvent is the ephemeral "here I am" listing. ExpiresAt is creation
// time plus 24 hours and rolls forward on every successful edit.
type NayogiEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	UserID      string    `json:"userId"`
	ExpiresAt   time.Time `json:"expiresAt"`
	CreatedAt   time.Time `json:"createdAt"`
	Owner       *Owner    `json:"user,omitempty"`
}

// NayogiTTL is the rolling lifetime of a nayogi listing.
const NayogiTTL = 24 * time.Hour

// Expired reports whether the listing has lapsed at time t. Lapsed rows are
// immutable even when a list call has not purged them yet.
func (n *NayogiEvent) Expired(t time.Time) bool {
	return !n.ExpiresAt.After(t)
}

// PlaceKind selects one of the two owner-less, admin-curated map layers.
type PlaceKind string

const (
	PlaceGarden  PlaceKind = "garden"
	PlaceHotspot PlaceKind = "hotspot"
)

// Place is a curated map pin (shared garden or hotspot). It has no owner;
// all writes are admin operations.
type Place struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	LinkURL     *string   `json:"linkUrl"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CreatedAt   time.Time `json:"createdAt"`
}
