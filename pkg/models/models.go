package models

import (
	"errors"
	"fmt"
	"time"
)

// PostType says whether a posting reports a lost item or a found one.
type PostType string

const (
	PostTypeLost  PostType = "lost"
	PostTypeFound PostType = "found"
)

// Valid reports whether the post type is a known value.
func (t PostType) Valid() bool {
	return t == PostTypeLost || t == PostTypeFound
}

// ItemStatus represents the recovery state of an item.
type ItemStatus string

const (
	ItemStatusOpen      ItemStatus = "open"
	ItemStatusRecovered ItemStatus = "recovered"
)

// Valid reports whether the status is a known value.
func (s ItemStatus) Valid() bool {
	return s == ItemStatusOpen || s == ItemStatusRecovered
}

// Item is a lost-or-found posting.
type Item struct {
	ID          string     `json:"id"`
	PostType    PostType   `json:"post_type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Location    string     `json:"location"`
	Thumbnail   string     `json:"thumbnail"`
	Date        time.Time  `json:"date"` // event date, not creation time
	ContactName string     `json:"contact_name"`
	Email       string     `json:"email"`
	Status      ItemStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// RecoveredBy identifies the person who recovered an item.
type RecoveredBy struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Recovery records that a specific item has been recovered. At most one
// recovery may exist per original item.
type Recovery struct {
	ID                string      `json:"id"`
	OriginalItemID    string      `json:"original_item_id"`
	RecoveredBy       RecoveredBy `json:"recovered_by"`
	RecoveredLocation string      `json:"recovered_location"`
	RecoveredDate     time.Time   `json:"recovered_date"`
	CreatedAt         time.Time   `json:"created_at"`
}

// ItemInput is the caller-supplied shape for creating or replacing an item.
// Status is optional on creation and defaults to open.
type ItemInput struct {
	PostType    PostType   `json:"post_type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Location    string     `json:"location"`
	Thumbnail   string     `json:"thumbnail"`
	Date        time.Time  `json:"date"`
	ContactName string     `json:"contact_name"`
	Email       string     `json:"email"`
	Status      ItemStatus `json:"status,omitempty"`
}

// Validate checks required fields and enum membership.
func (in *ItemInput) Validate() error {
	if !in.PostType.Valid() {
		return fmt.Errorf("post_type must be %q or %q", PostTypeLost, PostTypeFound)
	}
	if in.Title == "" {
		return errors.New("title is required")
	}
	if in.Email == "" {
		return errors.New("email is required")
	}
	if in.Date.IsZero() {
		return errors.New("date is required")
	}
	if in.Status != "" && !in.Status.Valid() {
		return fmt.Errorf("status must be %q or %q", ItemStatusOpen, ItemStatusRecovered)
	}
	return nil
}

// RecoveryInput is the caller-supplied shape for creating a recovery claim.
type RecoveryInput struct {
	OriginalItemID    string      `json:"original_item_id"`
	RecoveredBy       RecoveredBy `json:"recovered_by"`
	RecoveredLocation string      `json:"recovered_location"`
	RecoveredDate     time.Time   `json:"recovered_date"`
}

// Validate checks required fields.
func (in *RecoveryInput) Validate() error {
	if in.OriginalItemID == "" {
		return errors.New("original_item_id is required")
	}
	if in.RecoveredBy.Name == "" {
		return errors.New("recovered_by.name is required")
	}
	if in.RecoveredBy.Email == "" {
		return errors.New("recovered_by.email is required")
	}
	return nil
}

// StatusPatch is the body for the item status patch endpoint.
type StatusPatch struct {
	Status ItemStatus `json:"status"`
}

// Validate checks enum membership.
func (p *StatusPatch) Validate() error {
	if !p.Status.Valid() {
		return fmt.Errorf("status must be %q or %q", ItemStatusOpen, ItemStatusRecovered)
	}
	return nil
}
