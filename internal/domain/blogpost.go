package domain

import (
	"time"

	"github.com/google/uuid"
)

type BlogPost struct {
	ID          uuid.UUID  `json:"id" db:"post_id"`
	Title       string     `json:"title" db:"title"`
	Slug        string     `json:"slug" db:"slug"`
	Excerpt     *string    `json:"excerpt,omitempty" db:"excerpt"`
	Content     string     `json:"content" db:"content"`
	Image       *string    `json:"image,omitempty" db:"image"`
	Published   bool       `json:"published" db:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty" db:"published_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

type CreatePostInput struct {
	Title     string  `json:"title" validate:"required,min=2"`
	Slug      string  `json:"slug" validate:"required"`
	Excerpt   *string `json:"excerpt,omitempty"`
	Content   string  `json:"content" validate:"required"`
	Image     *string `json:"image,omitempty"`
	Published bool    `json:"published"`
}

type UpdatePostInput struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,min=2"`
	Slug      *string `json:"slug,omitempty"`
	Excerpt   *string `json:"excerpt,omitempty"`
	Content   *string `json:"content,omitempty"`
	Image     *string `json:"image,omitempty"`
	Published *bool   `json:"published,omitempty"`
}
