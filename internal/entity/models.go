package entity

import (
	"time"

	"github.com/samber/mo"
)

// User is an account allowed to log in. Password holds the bcrypt hash, never the plain text.
// Absent profile fields are stored as NULL.
type User struct {
	ID       int64             `json:"id"`
	Fullname mo.Option[string] `json:"fullname"`
	Email    mo.Option[string] `json:"email"`
	Contact  mo.Option[string] `json:"contact"`
	Username mo.Option[string] `json:"username"`
	Password string            `json:"-"`
	Admin    bool              `json:"admin"`
}

// Page is an offset-based window over a listing.
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of rows skipped before this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// InventoryFilter narrows the inventory full-details listing.
type InventoryFilter struct {
	// ProductName matches product names containing the value, case-insensitively.
	ProductName mo.Option[string]
	Page        Page
}

// --- Events ---

// Event represents a domain event.
type Event interface {
	EventType() string
}

// Change actions carried by ResourceChanged.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ResourceChanged is emitted after a successful write to one of the resource tables.
type ResourceChanged struct {
	EventID    string    `json:"event_id"`
	Resource   string    `json:"resource"`
	Action     string    `json:"action"`
	ID         int64     `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e ResourceChanged) EventType() string { return "ResourceChanged" }
