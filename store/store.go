package store

import (
	"context"
	"errors"

	"github.com/student-hub/backend/model"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrInvalidInput = errors.New("invalid input")
)

// PostStore owns the canonical post collection and every mutation on it.
// List order is newest-first; a created post appears at the head.
type PostStore interface {
	List(ctx context.Context) ([]model.Post, error)
	Get(ctx context.Context, id string) (model.Post, error)
	// ListByCategory matches the category case-insensitively and returns
	// an empty slice (not an error) when nothing matches.
	ListByCategory(ctx context.Context, category string) ([]model.Post, error)
	Create(ctx context.Context, draft model.PostDraft) (model.Post, error)

	// ToggleLike removes the identity from the post's likes if present,
	// adds it otherwise. like_count is recomputed from the likes slice
	// inside this one operation and nowhere else.
	ToggleLike(ctx context.Context, postID string, who model.Like) (liked bool, likeCount int, err error)

	ListComments(ctx context.Context, postID string) ([]model.Comment, error)
	// AddComment rejects empty or whitespace-only text with ErrInvalidInput.
	AddComment(ctx context.Context, postID string, who model.Like, text string) (model.Comment, error)

	// Seed inserts the sample posts if the store is empty. It reports
	// whether anything was inserted and the post count afterwards, so
	// calling it twice is safe.
	Seed(ctx context.Context, posts []model.Post) (seeded bool, count int64, err error)
}
