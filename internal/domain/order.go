package domain

import (
	"time"

	"github.com/google/uuid"
)

// AudioRefText is the audio reference sentinel for orders placed via plain text.
const AudioRefText = "text_input"

// OrderStatus is the lifecycle state of an order. Orders are created pending;
// terminal states are set only through admin action.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// ClassifiedItem is one extracted grocery line. Produced exclusively by the
// classification collaborator; immutable once produced.
type ClassifiedItem struct {
	Name           string
	Quantity       string // free-form, e.g. "2kg", "1 dozen"
	CategoryName   string
	CategoryNumber int
}

// Order is the unit of work: one inbound utterance turned into a persisted,
// classified grocery request. Never mutated after creation except to append
// notified recipients.
type Order struct {
	ID            uuid.UUID
	CustomerPhone string
	CustomerName  string
	Text          string // transcribed or raw utterance
	Items         []ClassifiedItem
	AudioRef      string // cached audio path, or AudioRefText
	Status        OrderStatus
	// NotifiedRecipients records the full recipient set a dispatch attempt
	// covered. Append-only, "attempted" rather than "confirmed" semantics.
	NotifiedRecipients []string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewOrder constructs a pending order for the given utterance and items.
func NewOrder(customerPhone, customerName, text, audioRef string, items []ClassifiedItem, now time.Time) *Order {
	return &Order{
		ID:            uuid.New(),
		CustomerPhone: customerPhone,
		CustomerName:  customerName,
		Text:          text,
		Items:         items,
		AudioRef:      audioRef,
		Status:        OrderStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// TotalItems is derived, never hand-set.
func (o *Order) TotalItems() int { return len(o.Items) }

// TotalCategories is derived from the grouping.
func (o *Order) TotalCategories() int { return len(o.Grouped().Categories) }

// Grouped returns the order's items grouped by category.
func (o *Order) Grouped() *GroupedItems { return GroupByCategory(o.Items) }

// GroupedItems holds items keyed by category, with Categories preserving the
// first-seen order so rendering is deterministic across runs.
type GroupedItems struct {
	Categories []string
	Items      map[string][]ClassifiedItem
}

// GroupByCategory groups classified items by category name, preserving the
// order in which categories first appear in the item sequence.
func GroupByCategory(items []ClassifiedItem) *GroupedItems {
	g := &GroupedItems{Items: make(map[string][]ClassifiedItem)}
	for _, item := range items {
		if _, seen := g.Items[item.CategoryName]; !seen {
			g.Categories = append(g.Categories, item.CategoryName)
		}
		g.Items[item.CategoryName] = append(g.Items[item.CategoryName], item)
	}
	return g
}

// Breakdown returns the per-category item counts.
func (g *GroupedItems) Breakdown() map[string]int {
	counts := make(map[string]int, len(g.Categories))
	for category, items := range g.Items {
		counts[category] = len(items)
	}
	return counts
}

// TotalItems sums item counts across all categories.
func (g *GroupedItems) TotalItems() int {
	total := 0
	for _, items := range g.Items {
		total += len(items)
	}
	return total
}
