package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gceelixir/symposium/internal/store"
)

func TestBlogCreateDerivesSlug(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	svc := NewBlogService(store.NewBlogStore(db))

	post, err := svc.Create(context.Background(), PostInput{
		Title:   "ELIXIR'26 Registrations Open!",
		Author:  "Organizing Team",
		Content: "Body",
	})
	require.NoError(t, err)
	assert.Equal(t, "elixir-26-registrations-open", post.Slug)
	assert.False(t, post.Published)

	fetched, err := svc.GetBySlug(context.Background(), post.Slug)
	require.NoError(t, err)
	assert.Equal(t, post.ID, fetched.ID)
}

func TestBlogUpdateRefreshesSlugAndTimestamp(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	svc := NewBlogService(store.NewBlogStore(db))

	post, err := svc.Create(context.Background(), PostInput{
		Title:   "Old Title",
		Author:  "Organizing Team",
		Content: "Body",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), post.ID, PostInput{
		Title:     "Brand New Title",
		Author:    "Organizing Team",
		Content:   "Body v2",
		Published: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "brand-new-title", updated.Slug)
	assert.True(t, updated.Published)
	assert.False(t, updated.UpdatedAt.Before(post.CreatedAt))
}
