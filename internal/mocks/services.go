package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"zentproje-backend/internal/domain"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) Feed(ctx context.Context, adminKey string, params domain.PaginationParams) (*domain.NotificationFeed, error) {
	args := m.Called(ctx, adminKey, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NotificationFeed), args.Error(1)
}

func (m *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NotificationService) MarkAllAsRead(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *NotificationService) UnreadCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationService) NotifyNewOrder(ctx context.Context, order *domain.OrderWithDetails) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *NotificationService) NotifyNewContact(ctx context.Context, contact *domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *NotificationService) NotifyNewUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
