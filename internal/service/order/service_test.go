package order

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/mocks"
	"zentproje-backend/internal/repository"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-\d{13}-[A-Z0-9]{9}$`)

func TestGenerateOrderNumberFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := GenerateOrderNumber()
		assert.Regexp(t, orderNumberPattern, n)
	}
}

func TestGenerateOrderNumberVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		n := GenerateOrderNumber()
		assert.False(t, seen[n], "duplicate order number %s", n)
		seen[n] = true
	}
}

func activePackage() *domain.ServicePackage {
	return &domain.ServicePackage{
		ID:     uuid.New(),
		Name:   "Kurumsal",
		Price:  5000,
		Active: true,
	}
}

func validInput(pkgID uuid.UUID) domain.CreateOrderInput {
	return domain.CreateOrderInput{
		PackageID:   pkgID,
		SiteName:    "zentproje",
		Domain:      "zentproje.com",
		Description: "Kurumsal web sitesi",
	}
}

func TestCreateOrder(t *testing.T) {
	pkg := activePackage()
	userID := uuid.New()

	orderRepo := new(mocks.OrderRepository)
	pkgRepo := new(mocks.PackageRepository)
	notifSvc := new(mocks.NotificationService)

	pkgRepo.On("GetByID", mock.Anything, pkg.ID).Return(pkg, nil)
	orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil).Once()
	orderRepo.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return(&domain.OrderWithDetails{UserName: "Test", PackageName: pkg.Name}, nil)
	notifSvc.On("NotifyNewOrder", mock.Anything, mock.Anything).Return(nil).Once()

	svc := NewService(orderRepo, pkgRepo, notifSvc)

	input := validInput(pkg.ID)
	input.ExtraFeatures = []string{"blog", "seo"}

	created, err := svc.Create(context.Background(), userID, input)
	require.NoError(t, err)
	require.NotNil(t, created)

	persisted := orderRepo.Calls[0].Arguments.Get(1).(*domain.Order)
	assert.Equal(t, int64(7700), persisted.TotalAmount)
	assert.Equal(t, domain.OrderPending, persisted.Status)
	assert.Equal(t, domain.PaymentUnpaid, persisted.PaymentStatus)
	assert.Equal(t, "TRY", persisted.Currency)
	assert.Regexp(t, orderNumberPattern, persisted.OrderNumber)

	notifSvc.AssertExpectations(t)
}

func TestCreateOrderRejectsMismatchedTotal(t *testing.T) {
	pkg := activePackage()

	orderRepo := new(mocks.OrderRepository)
	pkgRepo := new(mocks.PackageRepository)
	pkgRepo.On("GetByID", mock.Anything, pkg.ID).Return(pkg, nil)

	svc := NewService(orderRepo, pkgRepo, nil)

	input := validInput(pkg.ID)
	wrong := int64(1)
	input.TotalAmount = &wrong

	_, err := svc.Create(context.Background(), uuid.New(), input)
	assert.ErrorIs(t, err, domain.ErrTotalMismatch)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOrderAcceptsMatchingTotal(t *testing.T) {
	pkg := activePackage()

	orderRepo := new(mocks.OrderRepository)
	pkgRepo := new(mocks.PackageRepository)
	pkgRepo.On("GetByID", mock.Anything, pkg.ID).Return(pkg, nil)
	orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	orderRepo.On("GetByID", mock.Anything, mock.Anything).Return(&domain.OrderWithDetails{}, nil)

	svc := NewService(orderRepo, pkgRepo, nil)

	input := validInput(pkg.ID)
	right := pkg.Price
	input.TotalAmount = &right

	_, err := svc.Create(context.Background(), uuid.New(), input)
	assert.NoError(t, err)
}

func TestCreateOrderInactivePackage(t *testing.T) {
	pkg := activePackage()
	pkg.Active = false

	orderRepo := new(mocks.OrderRepository)
	pkgRepo := new(mocks.PackageRepository)
	pkgRepo.On("GetByID", mock.Anything, pkg.ID).Return(pkg, nil)

	svc := NewService(orderRepo, pkgRepo, nil)

	_, err := svc.Create(context.Background(), uuid.New(), validInput(pkg.ID))
	assert.ErrorIs(t, err, domain.ErrPackageInactive)
}

func TestCreateOrderUnknownPackage(t *testing.T) {
	orderRepo := new(mocks.OrderRepository)
	pkgRepo := new(mocks.PackageRepository)
	pkgRepo.On("GetByID", mock.Anything, mock.Anything).Return(nil, nil)

	svc := NewService(orderRepo, pkgRepo, nil)

	_, err := svc.Create(context.Background(), uuid.New(), validInput(uuid.New()))
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)
}

func TestCreateOrderRetriesOnNumberCollision(t *testing.T) {
	pkg := activePackage()

	orderRepo := new(mocks.OrderRepository)
	pkgRepo := new(mocks.PackageRepository)
	pkgRepo.On("GetByID", mock.Anything, pkg.ID).Return(pkg, nil)
	orderRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrOrderNumberTaken).Once()
	orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	orderRepo.On("GetByID", mock.Anything, mock.Anything).Return(&domain.OrderWithDetails{}, nil)

	svc := NewService(orderRepo, pkgRepo, nil)

	_, err := svc.Create(context.Background(), uuid.New(), validInput(pkg.ID))
	require.NoError(t, err)
	orderRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestCreateOrderSurvivesNotificationFailure(t *testing.T) {
	pkg := activePackage()

	orderRepo := new(mocks.OrderRepository)
	pkgRepo := new(mocks.PackageRepository)
	notifSvc := new(mocks.NotificationService)

	pkgRepo.On("GetByID", mock.Anything, pkg.ID).Return(pkg, nil)
	orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	orderRepo.On("GetByID", mock.Anything, mock.Anything).Return(&domain.OrderWithDetails{}, nil)
	notifSvc.On("NotifyNewOrder", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	svc := NewService(orderRepo, pkgRepo, notifSvc)

	created, err := svc.Create(context.Background(), uuid.New(), validInput(pkg.ID))
	require.NoError(t, err)
	assert.NotNil(t, created)
}

func detailsWithStatus(status domain.OrderStatus) *domain.OrderWithDetails {
	return &domain.OrderWithDetails{
		Order: domain.Order{
			ID:            uuid.New(),
			Status:        status,
			PaymentStatus: domain.PaymentUnpaid,
		},
	}
}

func TestUpdateOrderLegalTransition(t *testing.T) {
	details := detailsWithStatus(domain.OrderPending)

	orderRepo := new(mocks.OrderRepository)
	orderRepo.On("GetByID", mock.Anything, details.Order.ID).Return(details, nil)
	orderRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(orderRepo, new(mocks.PackageRepository), nil)

	next := domain.OrderConfirmed
	updated, err := svc.Update(context.Background(), details.Order.ID, domain.UpdateOrderInput{Status: &next})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderConfirmed, updated.Status)
}

func TestUpdateOrderIllegalTransition(t *testing.T) {
	details := detailsWithStatus(domain.OrderPending)

	orderRepo := new(mocks.OrderRepository)
	orderRepo.On("GetByID", mock.Anything, details.Order.ID).Return(details, nil)

	svc := NewService(orderRepo, new(mocks.PackageRepository), nil)

	next := domain.OrderCompleted
	_, err := svc.Update(context.Background(), details.Order.ID, domain.UpdateOrderInput{Status: &next})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateOrderTerminalStateFrozen(t *testing.T) {
	details := detailsWithStatus(domain.OrderCancelled)

	orderRepo := new(mocks.OrderRepository)
	orderRepo.On("GetByID", mock.Anything, details.Order.ID).Return(details, nil)

	svc := NewService(orderRepo, new(mocks.PackageRepository), nil)

	next := domain.OrderPending
	_, err := svc.Update(context.Background(), details.Order.ID, domain.UpdateOrderInput{Status: &next})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpdateOrderInvalidPaymentStatus(t *testing.T) {
	details := detailsWithStatus(domain.OrderPending)

	orderRepo := new(mocks.OrderRepository)
	orderRepo.On("GetByID", mock.Anything, details.Order.ID).Return(details, nil)

	svc := NewService(orderRepo, new(mocks.PackageRepository), nil)

	bad := domain.PaymentStatus("MAYBE")
	_, err := svc.Update(context.Background(), details.Order.ID, domain.UpdateOrderInput{PaymentStatus: &bad})
	assert.Error(t, err)
}
