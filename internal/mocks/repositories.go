package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"zentproje-backend/internal/domain"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.User, int64, error) {
	args := m.Called(ctx, params)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type PackageRepository struct {
	mock.Mock
}

func (m *PackageRepository) Create(ctx context.Context, pkg *domain.ServicePackage) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *PackageRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServicePackage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServicePackage), args.Error(1)
}

func (m *PackageRepository) List(ctx context.Context, activeOnly bool) ([]domain.ServicePackage, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServicePackage), args.Error(1)
}

func (m *PackageRepository) Update(ctx context.Context, pkg *domain.ServicePackage) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *PackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.OrderWithDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderWithDetails), args.Error(1)
}

func (m *OrderRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.OrderWithDetails, int64, error) {
	args := m.Called(ctx, params)
	var orders []domain.OrderWithDetails
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.OrderWithDetails)
	}
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.OrderWithDetails, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderWithDetails), args.Error(1)
}

func (m *OrderRepository) Update(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) Create(ctx context.Context, notif *domain.AdminNotification) error {
	args := m.Called(ctx, notif)
	return args.Error(0)
}

func (m *NotificationRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.AdminNotification, int64, error) {
	args := m.Called(ctx, params)
	var notifications []domain.AdminNotification
	if args.Get(0) != nil {
		notifications = args.Get(0).([]domain.AdminNotification)
	}
	return notifications, args.Get(1).(int64), args.Error(2)
}

func (m *NotificationRepository) ListUnreadSince(ctx context.Context, since time.Time) ([]domain.AdminNotification, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdminNotification), args.Error(1)
}

func (m *NotificationRepository) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NotificationRepository) MarkAllAsRead(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *NotificationRepository) CountUnread(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type ContactRepository struct {
	mock.Mock
}

func (m *ContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *ContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *ContactRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.Contact, int64, error) {
	args := m.Called(ctx, params)
	var contacts []domain.Contact
	if args.Get(0) != nil {
		contacts = args.Get(0).([]domain.Contact)
	}
	return contacts, args.Get(1).(int64), args.Error(2)
}

func (m *ContactRepository) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ContactRepository) CountUnread(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type BlogPostRepository struct {
	mock.Mock
}

func (m *BlogPostRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *BlogPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}

func (m *BlogPostRepository) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}

func (m *BlogPostRepository) List(ctx context.Context, publishedOnly bool, params domain.PaginationParams) ([]domain.BlogPost, int64, error) {
	args := m.Called(ctx, publishedOnly, params)
	var posts []domain.BlogPost
	if args.Get(0) != nil {
		posts = args.Get(0).([]domain.BlogPost)
	}
	return posts, args.Get(1).(int64), args.Error(2)
}

func (m *BlogPostRepository) Update(ctx context.Context, post *domain.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *BlogPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type BackupRepository struct {
	mock.Mock
}

func (m *BackupRepository) DumpAll(ctx context.Context) (*domain.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

func (m *BackupRepository) RestoreAll(ctx context.Context, snapshot *domain.Snapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}
