package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ServicePackage is a priced service tier. Features and the set of add-ons
// the tier already includes for free are native text[] columns, not
// serialized blobs.
type ServicePackage struct {
	ID                    uuid.UUID      `json:"id" db:"package_id"`
	Name                  string         `json:"name" db:"name"`
	Description           string         `json:"description" db:"description"`
	ShortDescription      string         `json:"short_description" db:"short_description"`
	Price                 int64          `json:"price" db:"price"`
	Currency              string         `json:"currency" db:"currency"`
	Category              string         `json:"category" db:"category"`
	Features              pq.StringArray `json:"features" db:"features"`
	IncludedExtraFeatures pq.StringArray `json:"included_extra_features" db:"included_extra_features"`
	Duration              string         `json:"duration" db:"duration"`
	DeliveryTime          string         `json:"delivery_time" db:"delivery_time"`
	MaxRevisions          int            `json:"max_revisions" db:"max_revisions"`
	Popular               bool           `json:"popular" db:"popular"`
	Active                bool           `json:"active" db:"active"`
	CreatedAt             time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at" db:"updated_at"`
}

type CreatePackageInput struct {
	Name                  string   `json:"name" validate:"required,min=2"`
	Description           string   `json:"description" validate:"required"`
	ShortDescription      string   `json:"short_description"`
	Price                 int64    `json:"price" validate:"required,min=0"`
	Currency              string   `json:"currency"`
	Category              string   `json:"category"`
	Features              []string `json:"features"`
	IncludedExtraFeatures []string `json:"included_extra_features"`
	Duration              string   `json:"duration"`
	DeliveryTime          string   `json:"delivery_time"`
	MaxRevisions          int      `json:"max_revisions"`
	Popular               bool     `json:"popular"`
	Active                *bool    `json:"active"`
}

type UpdatePackageInput struct {
	Name                  *string   `json:"name,omitempty" validate:"omitempty,min=2"`
	Description           *string   `json:"description,omitempty"`
	ShortDescription      *string   `json:"short_description,omitempty"`
	Price                 *int64    `json:"price,omitempty" validate:"omitempty,min=0"`
	Currency              *string   `json:"currency,omitempty"`
	Category              *string   `json:"category,omitempty"`
	Features              *[]string `json:"features,omitempty"`
	IncludedExtraFeatures *[]string `json:"included_extra_features,omitempty"`
	Duration              *string   `json:"duration,omitempty"`
	DeliveryTime          *string   `json:"delivery_time,omitempty"`
	MaxRevisions          *int      `json:"max_revisions,omitempty"`
	Popular               *bool     `json:"popular,omitempty"`
	Active                *bool     `json:"active,omitempty"`
}
