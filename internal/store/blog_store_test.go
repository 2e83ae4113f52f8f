package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gceelixir/symposium/internal/blog"
)

func samplePost(title string, published bool, at time.Time) *blog.Post {
	return &blog.Post{
		ID:        uuid.New(),
		Slug:      blog.Slugify(title),
		Title:     title,
		Author:    "Organizing Team",
		Summary:   "Summary",
		Content:   "Content body",
		Published: published,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func TestBlogCreateAndGetBySlug(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewBlogStore(db)
	post := samplePost("Registrations Open", true, time.Now().UTC().Truncate(time.Second))
	require.NoError(t, store.Create(context.Background(), post))

	fetched, err := store.GetBySlug(context.Background(), "registrations-open")
	require.NoError(t, err)
	assert.Equal(t, post.ID, fetched.ID)
	assert.Equal(t, post.Title, fetched.Title)
	assert.True(t, fetched.Published)
}

func TestBlogListPublishedHidesDrafts(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewBlogStore(db)
	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, store.Create(context.Background(), samplePost("Live Post", true, now.Add(-time.Hour))))
	require.NoError(t, store.Create(context.Background(), samplePost("Draft Post", false, now)))

	published, err := store.ListPublished(context.Background())
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "Live Post", published[0].Title)

	all, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestBlogUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewBlogStore(db)
	post := samplePost("Old Title", false, time.Now().UTC().Truncate(time.Second))
	require.NoError(t, store.Create(context.Background(), post))

	post.Title = "New Title"
	post.Slug = blog.Slugify(post.Title)
	post.Published = true
	require.NoError(t, store.Update(context.Background(), post))

	fetched, err := store.GetByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Title", fetched.Title)
	assert.True(t, fetched.Published)

	require.NoError(t, store.Delete(context.Background(), post.ID))
	_, err = store.GetByID(context.Background(), post.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
