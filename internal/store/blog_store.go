package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gceelixir/symposium/internal/blog"
)

type BlogStore struct {
	db *sqlx.DB
}

func NewBlogStore(db *sqlx.DB) *BlogStore {
	return &BlogStore{db: db}
}

func (s *BlogStore) Create(ctx context.Context, post *blog.Post) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO blog_posts (id, slug, title, author, summary, content, published, created_at, updated_at)
        VALUES (:id, :slug, :title, :author, :summary, :content, :published, :created_at, :updated_at)`, post)
	return err
}

func (s *BlogStore) Update(ctx context.Context, post *blog.Post) error {
	_, err := s.db.NamedExecContext(ctx, `UPDATE blog_posts SET slug = :slug, title = :title, author = :author, summary = :summary, content = :content, published = :published, updated_at = :updated_at
        WHERE id = :id`, post)
	return err
}

func (s *BlogStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM blog_posts WHERE id = ?", id)
	return err
}

func (s *BlogStore) GetByID(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	var post blog.Post
	err := s.db.GetContext(ctx, &post, "SELECT * FROM blog_posts WHERE id = ?", id)
	return &post, err
}

func (s *BlogStore) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	var post blog.Post
	err := s.db.GetContext(ctx, &post, "SELECT * FROM blog_posts WHERE slug = ?", slug)
	return &post, err
}

// ListPublished is the public feed, newest first.
func (s *BlogStore) ListPublished(ctx context.Context) ([]blog.Post, error) {
	var posts []blog.Post
	err := s.db.SelectContext(ctx, &posts, "SELECT * FROM blog_posts WHERE published = 1 ORDER BY created_at DESC")
	return posts, err
}

// ListAll includes drafts, for the admin console.
func (s *BlogStore) ListAll(ctx context.Context) ([]blog.Post, error) {
	var posts []blog.Post
	err := s.db.SelectContext(ctx, &posts, "SELECT * FROM blog_posts ORDER BY created_at DESC")
	return posts, err
}
