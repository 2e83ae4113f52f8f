package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gceelixir/symposium/internal/blog"
	"github.com/gceelixir/symposium/internal/store"
)

type BlogService struct {
	store *store.BlogStore
}

func NewBlogService(store *store.BlogStore) *BlogService {
	return &BlogService{store: store}
}

type PostInput struct {
	Title     string `json:"title" validate:"required"`
	Author    string `json:"author" validate:"required"`
	Summary   string `json:"summary"`
	Content   string `json:"content" validate:"required"`
	Published bool   `json:"published"`
}

func (s *BlogService) Create(ctx context.Context, in PostInput) (*blog.Post, error) {
	now := time.Now().UTC()
	post := blog.Post{
		ID:        uuid.New(),
		Slug:      blog.Slugify(in.Title),
		Title:     in.Title,
		Author:    in.Author,
		Summary:   in.Summary,
		Content:   in.Content,
		Published: in.Published,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, &post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}
	return &post, nil
}

func (s *BlogService) Update(ctx context.Context, id uuid.UUID, in PostInput) (*blog.Post, error) {
	post, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Slug = blog.Slugify(in.Title)
	post.Title = in.Title
	post.Author = in.Author
	post.Summary = in.Summary
	post.Content = in.Content
	post.Published = in.Published
	post.UpdatedAt = time.Now().UTC()
	if err := s.store.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("updating post: %w", err)
	}
	return post, nil
}

func (s *BlogService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	return s.store.GetBySlug(ctx, slug)
}

func (s *BlogService) ListPublished(ctx context.Context) ([]blog.Post, error) {
	return s.store.ListPublished(ctx)
}

func (s *BlogService) ListAll(ctx context.Context) ([]blog.Post, error) {
	return s.store.ListAll(ctx)
}
