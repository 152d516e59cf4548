package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Project struct {
	ID          uuid.UUID      `json:"id" db:"project_id"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	Image       string         `json:"image" db:"image"`
	Status      string         `json:"status" db:"status"`
	Priority    string         `json:"priority" db:"priority"`
	Client      string         `json:"client" db:"client"`
	StartDate   *time.Time     `json:"start_date,omitempty" db:"start_date"`
	EndDate     *time.Time     `json:"end_date,omitempty" db:"end_date"`
	Budget      int64          `json:"budget" db:"budget"`
	Currency    string         `json:"currency" db:"currency"`
	Tags        pq.StringArray `json:"tags" db:"tags"`
	Progress    int            `json:"progress" db:"progress"`
	TeamMembers pq.StringArray `json:"team_members" db:"team_members"`
	Featured    bool           `json:"featured" db:"featured"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

type CreateProjectInput struct {
	Title       string     `json:"title" validate:"required,min=2"`
	Description string     `json:"description" validate:"required"`
	Image       string     `json:"image"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Client      string     `json:"client"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Budget      int64      `json:"budget"`
	Currency    string     `json:"currency"`
	Tags        []string   `json:"tags"`
	Progress    int        `json:"progress" validate:"min=0,max=100"`
	TeamMembers []string   `json:"team_members"`
	Featured    bool       `json:"featured"`
}

type UpdateProjectInput struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=2"`
	Description *string    `json:"description,omitempty"`
	Image       *string    `json:"image,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	Client      *string    `json:"client,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Budget      *int64     `json:"budget,omitempty"`
	Currency    *string    `json:"currency,omitempty"`
	Tags        *[]string  `json:"tags,omitempty"`
	Progress    *int       `json:"progress,omitempty" validate:"omitempty,min=0,max=100"`
	TeamMembers *[]string  `json:"team_members,omitempty"`
	Featured    *bool      `json:"featured,omitempty"`
}
