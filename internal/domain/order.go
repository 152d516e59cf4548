package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderConfirmed  OrderStatus = "CONFIRMED"
	OrderInProgress OrderStatus = "IN_PROGRESS"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderConfirmed, OrderCancelled},
	OrderConfirmed:  {OrderInProgress, OrderCancelled},
	OrderInProgress: {OrderCompleted, OrderCancelled},
	OrderCompleted:  {},
	OrderCancelled:  {},
}

func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) IsTerminal() bool {
	next, ok := orderTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether next is a legal successor of s. Terminal
// states have no successors.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "UNPAID"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return true
	default:
		return false
	}
}

// Order is one configured purchase: a package, the chosen add-ons, an
// optional design template and the site metadata collected by the wizard.
// TotalAmount is always the server-computed figure.
type Order struct {
	ID               uuid.UUID      `json:"id" db:"order_id"`
	OrderNumber      string         `json:"order_number" db:"order_number"`
	UserID           uuid.UUID      `json:"user_id" db:"user_id"`
	PackageID        uuid.UUID      `json:"package_id" db:"package_id"`
	SiteName         string         `json:"site_name" db:"site_name"`
	Domain           string         `json:"domain" db:"domain"`
	Description      string         `json:"description" db:"description"`
	ThemeColor       string         `json:"theme_color" db:"theme_color"`
	ExtraFeatures    pq.StringArray `json:"extra_features" db:"extra_features"`
	SSLCertificate   bool           `json:"ssl_certificate" db:"ssl_certificate"`
	Analytics        bool           `json:"analytics" db:"analytics"`
	FastLoading      bool           `json:"fast_loading" db:"fast_loading"`
	MobileResponsive bool           `json:"mobile_responsive" db:"mobile_responsive"`
	SocialMedia      bool           `json:"social_media" db:"social_media"`
	GuestPurchase    bool           `json:"guest_purchase" db:"guest_purchase"`
	DesignTemplate   *string        `json:"design_template,omitempty" db:"design_template"`
	TotalAmount      int64          `json:"total_amount" db:"total_amount"`
	Currency         string         `json:"currency" db:"currency"`
	Status           OrderStatus    `json:"status" db:"status"`
	PaymentStatus    PaymentStatus  `json:"payment_status" db:"payment_status"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at" db:"updated_at"`
}

// OrderWithDetails carries the user and package summaries the admin list
// shows next to each order.
type OrderWithDetails struct {
	Order
	UserName     string `json:"user_name" db:"user_name"`
	UserEmail    string `json:"user_email" db:"user_email"`
	PackageName  string `json:"package_name" db:"package_name"`
	PackagePrice int64  `json:"package_price" db:"package_price"`
}

type CreateOrderInput struct {
	PackageID        uuid.UUID `json:"package_id" validate:"required"`
	SiteName         string    `json:"site_name" validate:"required"`
	Domain           string    `json:"domain" validate:"required"`
	Description      string    `json:"description" validate:"required"`
	ThemeColor       string    `json:"theme_color"`
	ExtraFeatures    []string  `json:"extra_features"`
	SSLCertificate   bool      `json:"ssl_certificate"`
	Analytics        bool      `json:"analytics"`
	FastLoading      bool      `json:"fast_loading"`
	MobileResponsive bool      `json:"mobile_responsive"`
	SocialMedia      bool      `json:"social_media"`
	GuestPurchase    bool      `json:"guest_purchase"`
	DesignTemplate   *string   `json:"design_template,omitempty"`

	// TotalAmount is what the client displayed. The server recomputes the
	// price and rejects a mismatch instead of trusting this value.
	TotalAmount *int64 `json:"total_amount,omitempty"`
	Currency    string `json:"currency"`
}

type UpdateOrderInput struct {
	Status        *OrderStatus   `json:"status,omitempty"`
	PaymentStatus *PaymentStatus `json:"payment_status,omitempty"`
}
