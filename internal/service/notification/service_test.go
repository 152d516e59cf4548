package notification

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/mocks"
)

func TestFeedWithoutRedis(t *testing.T) {
	repo := new(mocks.NotificationRepository)

	rows := []domain.AdminNotification{
		{ID: uuid.New(), Type: domain.NotifOrder, Title: "Yeni Sipariş"},
	}
	repo.On("List", mock.Anything, mock.Anything).Return(rows, int64(1), nil)
	repo.On("ListUnreadSince", mock.Anything, mock.AnythingOfType("time.Time")).Return(rows, nil)
	repo.On("CountUnread", mock.Anything).Return(int64(1), nil)

	svc := NewService(repo, nil, nil)

	feed, err := svc.Feed(context.Background(), "admin", domain.DefaultPagination())
	require.NoError(t, err)
	assert.Equal(t, int64(1), feed.UnreadCount)
	assert.Len(t, feed.NewNotifications, 1)
	assert.Equal(t, int64(1), feed.Notifications.TotalItems)

	// Without Redis the watermark falls back to the default lookback.
	since := repo.Calls[1].Arguments.Get(1).(time.Time)
	assert.WithinDuration(t, time.Now().Add(-watermarkWindow), since, 2*time.Second)
}

func TestNotifyNewOrderCreatesOneRow(t *testing.T) {
	repo := new(mocks.NotificationRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.AdminNotification")).Return(nil).Once()

	svc := NewService(repo, nil, nil)

	details := &domain.OrderWithDetails{
		Order: domain.Order{
			ID:          uuid.New(),
			OrderNumber: "ORD-1-AAAAAAAAA",
		},
		UserName:    "Müşteri",
		PackageName: "Kurumsal",
	}

	require.NoError(t, svc.NotifyNewOrder(context.Background(), details))

	created := repo.Calls[0].Arguments.Get(1).(*domain.AdminNotification)
	assert.Equal(t, domain.NotifOrder, created.Type)
	require.NotNil(t, created.RelatedID)
	assert.Equal(t, details.Order.ID, *created.RelatedID)
	assert.Contains(t, created.Message, "ORD-1-AAAAAAAAA")
	repo.AssertExpectations(t)
}

func TestNotifyNewContact(t *testing.T) {
	repo := new(mocks.NotificationRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	svc := NewService(repo, nil, nil)

	contact := &domain.Contact{
		ID:      uuid.New(),
		Name:    "Ziyaretçi",
		Email:   "ziyaretci@example.com",
		Message: "Merhaba",
	}

	require.NoError(t, svc.NotifyNewContact(context.Background(), contact))

	created := repo.Calls[0].Arguments.Get(1).(*domain.AdminNotification)
	assert.Equal(t, domain.NotifContact, created.Type)
	assert.Contains(t, created.Message, contact.Email)
}

func TestNotifyNewUser(t *testing.T) {
	repo := new(mocks.NotificationRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	svc := NewService(repo, nil, nil)

	user := &domain.User{ID: uuid.New(), Name: "Yeni", Email: "yeni@example.com"}
	require.NoError(t, svc.NotifyNewUser(context.Background(), user))

	created := repo.Calls[0].Arguments.Get(1).(*domain.AdminNotification)
	assert.Equal(t, domain.NotifUser, created.Type)
}
