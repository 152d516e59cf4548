package packages

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/mocks"
)

func TestCreateValidatesIncludedFeatures(t *testing.T) {
	repo := new(mocks.PackageRepository)
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), domain.CreatePackageInput{
		Name:                  "Kurumsal",
		Price:                 5000,
		IncludedExtraFeatures: []string{"seo", "no-such-addon"},
	})
	assert.ErrorIs(t, err, domain.ErrUnknownAddon)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateDefaults(t *testing.T) {
	repo := new(mocks.PackageRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ServicePackage")).Return(nil)

	svc := NewService(repo, nil)

	pkg, err := svc.Create(context.Background(), domain.CreatePackageInput{
		Name:  "Kurumsal",
		Price: 5000,
	})
	require.NoError(t, err)
	assert.Equal(t, "TRY", pkg.Currency)
	assert.True(t, pkg.Active)
}

func TestUpdateValidatesIncludedFeatures(t *testing.T) {
	pkg := &domain.ServicePackage{
		ID:       uuid.New(),
		Name:     "Kurumsal",
		Price:    5000,
		Currency: "TRY",
		Active:   true,
	}

	repo := new(mocks.PackageRepository)
	repo.On("GetByID", mock.Anything, pkg.ID).Return(pkg, nil)

	svc := NewService(repo, nil)

	features := []string{"bogus"}
	_, err := svc.Update(context.Background(), pkg.ID, domain.UpdatePackageInput{
		IncludedExtraFeatures: &features,
	})
	assert.ErrorIs(t, err, domain.ErrUnknownAddon)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateUnknownPackage(t *testing.T) {
	repo := new(mocks.PackageRepository)
	repo.On("GetByID", mock.Anything, mock.Anything).Return(nil, nil)

	svc := NewService(repo, nil)

	name := "X"
	_, err := svc.Update(context.Background(), uuid.New(), domain.UpdatePackageInput{Name: &name})
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)
}
