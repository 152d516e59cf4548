package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/mocks"
)

func TestCreateContact(t *testing.T) {
	repo := new(mocks.ContactRepository)
	notifSvc := new(mocks.NotificationService)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Contact")).Return(nil)
	notifSvc.On("NotifyNewContact", mock.Anything, mock.Anything).Return(nil).Once()

	svc := NewService(repo, notifSvc)

	created, err := svc.Create(context.Background(), domain.CreateContactInput{
		Name:    "Ziyaretçi",
		Email:   "ziyaretci@example.com",
		Message: "Web sitesi fiyatları hakkında bilgi almak istiyorum",
	})
	require.NoError(t, err)
	assert.False(t, created.IsRead)
	notifSvc.AssertExpectations(t)
}

func TestCreateContactSurvivesNotificationFailure(t *testing.T) {
	repo := new(mocks.ContactRepository)
	notifSvc := new(mocks.NotificationService)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifSvc.On("NotifyNewContact", mock.Anything, mock.Anything).Return(errors.New("db down"))

	svc := NewService(repo, notifSvc)

	created, err := svc.Create(context.Background(), domain.CreateContactInput{
		Name:    "Ziyaretçi",
		Email:   "ziyaretci@example.com",
		Message: "Merhaba, teklif rica ediyorum",
	})
	require.NoError(t, err)
	assert.NotNil(t, created)
}
