package blog

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

func TestCreateStampsPublishedAt(t *testing.T) {
	repo := new(mocks.BlogPostRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.BlogPost")).Return(nil)

	svc := NewService(repo)

	draft, err := svc.Create(context.Background(), domain.CreatePostInput{
		Title:   "Taslak",
		Slug:    "taslak",
		Content: "...",
	})
	require.NoError(t, err)
	assert.Nil(t, draft.PublishedAt)

	published, err := svc.Create(context.Background(), domain.CreatePostInput{
		Title:     "Yayında",
		Slug:      "yayinda",
		Content:   "...",
		Published: true,
	})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	assert.WithinDuration(t, time.Now(), *published.PublishedAt, 2*time.Second)
}

func TestUpdateStampsPublishedAtOnFirstPublication(t *testing.T) {
	post := &domain.BlogPost{
		ID:      uuid.New(),
		Title:   "Taslak",
		Slug:    "taslak",
		Content: "...",
	}

	repo := new(mocks.BlogPostRepository)
	repo.On("GetByID", mock.Anything, post.ID).Return(post, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo)

	publish := true
	updated, err := svc.Update(context.Background(), post.ID, domain.UpdatePostInput{Published: &publish})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	first := *updated.PublishedAt

	// Unpublish then republish: the original timestamp survives.
	unpublish := false
	_, err = svc.Update(context.Background(), post.ID, domain.UpdatePostInput{Published: &unpublish})
	require.NoError(t, err)

	updated, err = svc.Update(context.Background(), post.ID, domain.UpdatePostInput{Published: &publish})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	assert.Equal(t, first, *updated.PublishedAt)
}

func TestGetBySlugHidesDrafts(t *testing.T) {
	draft := &domain.BlogPost{
		ID:        uuid.New(),
		Slug:      "taslak",
		Published: false,
	}

	repo := new(mocks.BlogPostRepository)
	repo.On("GetBySlug", mock.Anything, "taslak").Return(draft, nil)
	repo.On("GetBySlug", mock.Anything, "yok").Return(nil, nil)

	svc := NewService(repo)

	_, err := svc.GetBySlug(context.Background(), "taslak")
	assert.ErrorIs(t, err, domain.ErrPostNotFound)

	_, err = svc.GetBySlug(context.Background(), "yok")
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}
