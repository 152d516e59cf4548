package order

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/repository"
	"zentproje-backend/internal/service/notification"
)

const (
	defaultThemeColor = "#3B82F6"
	defaultCurrency   = "TRY"

	// createRetries bounds how often Create regenerates the order number
	// after a uniqueness collision.
	createRetries = 3
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input domain.CreateOrderInput) (*domain.OrderWithDetails, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.OrderWithDetails, error)
	List(ctx context.Context, params domain.PaginationParams) (*domain.PaginatedResponse[domain.OrderWithDetails], error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.OrderWithDetails, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateOrderInput) (*domain.OrderWithDetails, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	orderRepo repository.OrderRepository
	pkgRepo   repository.PackageRepository
	notifSvc  notification.Service
}

func NewService(orderRepo repository.OrderRepository, pkgRepo repository.PackageRepository, notifSvc notification.Service) Service {
	return &service{
		orderRepo: orderRepo,
		pkgRepo:   pkgRepo,
		notifSvc:  notifSvc,
	}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, input domain.CreateOrderInput) (*domain.OrderWithDetails, error) {
	pkg, err := s.pkgRepo.GetByID(ctx, input.PackageID)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, domain.ErrPackageNotFound
	}
	if !pkg.Active {
		return nil, domain.ErrPackageInactive
	}

	total, err := Quote(pkg, input.ExtraFeatures, input.DesignTemplate)
	if err != nil {
		return nil, err
	}
	if input.TotalAmount != nil && *input.TotalAmount != total {
		return nil, fmt.Errorf("%w: got %d, computed %d", domain.ErrTotalMismatch, *input.TotalAmount, total)
	}

	themeColor := input.ThemeColor
	if themeColor == "" {
		themeColor = defaultThemeColor
	}

	order := &domain.Order{
		ID:               uuid.New(),
		UserID:           userID,
		PackageID:        input.PackageID,
		SiteName:         input.SiteName,
		Domain:           input.Domain,
		Description:      input.Description,
		ThemeColor:       themeColor,
		ExtraFeatures:    dedupe(input.ExtraFeatures),
		SSLCertificate:   input.SSLCertificate,
		Analytics:        input.Analytics,
		FastLoading:      input.FastLoading,
		MobileResponsive: input.MobileResponsive,
		SocialMedia:      input.SocialMedia,
		GuestPurchase:    input.GuestPurchase,
		DesignTemplate:   input.DesignTemplate,
		TotalAmount:      total,
		Currency:         defaultCurrency,
		Status:           domain.OrderPending,
		PaymentStatus:    domain.PaymentUnpaid,
	}

	for attempt := 0; ; attempt++ {
		order.OrderNumber = GenerateOrderNumber()
		err = s.orderRepo.Create(ctx, order)
		if err == nil {
			break
		}
		if err == repository.ErrOrderNumberTaken && attempt < createRetries {
			continue
		}
		return nil, err
	}

	details, err := s.orderRepo.GetByID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	// The order is already committed; a failed notification must not
	// bubble up to the customer.
	if s.notifSvc != nil {
		if err := s.notifSvc.NotifyNewOrder(ctx, details); err != nil {
			log.Printf("Failed to create order notification for %s: %v", order.OrderNumber, err)
		}
	}

	return details, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.OrderWithDetails, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (s *service) List(ctx context.Context, params domain.PaginationParams) (*domain.PaginatedResponse[domain.OrderWithDetails], error) {
	params.Validate()

	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	resp := domain.NewPaginatedResponse(orders, params.Page, params.PageSize, total)
	return &resp, nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.OrderWithDetails, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateOrderInput) (*domain.OrderWithDetails, error) {
	details, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, domain.ErrOrderNotFound
	}

	order := details.Order

	if input.Status != nil && *input.Status != order.Status {
		if !input.Status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidTransition, *input.Status)
		}
		if !order.Status.CanTransitionTo(*input.Status) {
			return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, *input.Status)
		}
		order.Status = *input.Status
	}

	if input.PaymentStatus != nil {
		if !input.PaymentStatus.IsValid() {
			return nil, fmt.Errorf("invalid payment status %q", *input.PaymentStatus)
		}
		order.PaymentStatus = *input.PaymentStatus
	}

	if err := s.orderRepo.Update(ctx, &order); err != nil {
		return nil, err
	}

	details.Order = order
	return details, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.orderRepo.Delete(ctx, id)
}

const orderNumberCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderNumber builds a human-readable reference like
// ORD-1719412345678-K3G7Q1ZBA: the millisecond timestamp plus nine random
// characters. Uniqueness is still enforced by the database.
func GenerateOrderNumber() string {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform is broken; fall back to
		// the timestamp alone rather than panicking.
		return fmt.Sprintf("ORD-%d-%09d", time.Now().UnixMilli(), time.Now().UnixNano()%1e9)
	}
	for i, b := range buf {
		buf[i] = orderNumberCharset[int(b)%len(orderNumberCharset)]
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), buf)
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
