package domain

import (
	"time"

	"github.com/google/uuid"
)

// Story is an ephemeral highlight on the public site. Expired stories stay
// in storage for the admin but drop out of the public listing.
type Story struct {
	ID          uuid.UUID  `json:"id" db:"story_id"`
	Title       string     `json:"title" db:"title"`
	Image       string     `json:"image" db:"image"`
	Thumbnail   string     `json:"thumbnail" db:"thumbnail"`
	Description *string    `json:"description,omitempty" db:"description"`
	SortOrder   int        `json:"sort_order" db:"sort_order"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty" db:"expires_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

type CreateStoryInput struct {
	Title       string     `json:"title" validate:"required"`
	Image       string     `json:"image" validate:"required"`
	Thumbnail   string     `json:"thumbnail"`
	Description *string    `json:"description,omitempty"`
	SortOrder   int        `json:"sort_order"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

type UpdateStoryInput struct {
	Title       *string    `json:"title,omitempty"`
	Image       *string    `json:"image,omitempty"`
	Thumbnail   *string    `json:"thumbnail,omitempty"`
	Description *string    `json:"description,omitempty"`
	SortOrder   *int       `json:"sort_order,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}
