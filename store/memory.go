package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/student-hub/backend/model"
)

// MemoryStore keeps the whole collection in process memory: a map for
// O(1) lookup plus an id slice holding the listing order (newest first).
// A single RWMutex makes every mutation atomic in arrival order.
type MemoryStore struct {
	mu    sync.RWMutex
	posts map[string]*model.Post
	order []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{posts: make(map[string]*model.Post)}
}

func (s *MemoryStore) List(ctx context.Context) ([]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Post, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, clonePost(s.posts[id]))
	}
	return out, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	if !ok {
		return model.Post{}, ErrPostNotFound
	}
	return clonePost(p), nil
}

func (s *MemoryStore) ListByCategory(ctx context.Context, category string) ([]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Post, 0)
	for _, id := range s.order {
		p := s.posts[id]
		if strings.EqualFold(p.Category, category) {
			out = append(out, clonePost(p))
		}
	}
	return out, nil
}

func (s *MemoryStore) Create(ctx context.Context, draft model.PostDraft) (model.Post, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return model.Post{}, ErrInvalidInput
	}

	post := model.Post{
		ID:             uuid.NewString(),
		Type:           draft.Type,
		Title:          draft.Title,
		Excerpt:        draft.Excerpt,
		Author:         draft.Author,
		AuthorUsername: draft.AuthorUsername,
		Date:           time.Now().UTC(),
		Category:       draft.Category,
		ReadTime:       "3 min read",
		Image:          draft.Image,
		Tags:           draft.Tags,
		Likes:          []model.Like{},
		LikeCount:      0,
		Content:        draft.Content,
		Comments:       []model.Comment{},
		DocumentURL:    draft.DocumentURL,
		JobLink:        draft.JobLink,
		ReferralInfo:   draft.ReferralInfo,
	}
	if post.Type == "" {
		post.Type = model.TypePost
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	s.mu.Lock()
	s.posts[post.ID] = &post
	s.order = append([]string{post.ID}, s.order...)
	s.mu.Unlock()

	return clonePost(&post), nil
}

func (s *MemoryStore) ToggleLike(ctx context.Context, postID string, who model.Like) (bool, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[postID]
	if !ok {
		return false, 0, ErrPostNotFound
	}

	liked := true
	for i, l := range p.Likes {
		if l.UserID == who.UserID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			liked = false
			break
		}
	}
	if liked {
		p.Likes = append(p.Likes, who)
	}
	p.LikeCount = len(p.Likes)

	return liked, p.LikeCount, nil
}

func (s *MemoryStore) ListComments(ctx context.Context, postID string) ([]model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[postID]
	if !ok {
		return nil, ErrPostNotFound
	}
	out := make([]model.Comment, len(p.Comments))
	copy(out, p.Comments)
	return out, nil
}

func (s *MemoryStore) AddComment(ctx context.Context, postID string, who model.Like, text string) (model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return model.Comment{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[postID]
	if !ok {
		return model.Comment{}, ErrPostNotFound
	}

	com := model.Comment{
		UserID:    who.UserID,
		UserName:  who.UserName,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	p.Comments = append(p.Comments, com)
	return com, nil
}

func (s *MemoryStore) Seed(ctx context.Context, posts []model.Post) (bool, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.order) > 0 {
		return false, int64(len(s.order)), nil
	}
	for i := range posts {
		p := posts[i]
		s.posts[p.ID] = &p
		s.order = append(s.order, p.ID)
	}
	return true, int64(len(s.order)), nil
}

// clonePost copies a post and its owned slices so callers can't reach
// back into store state.
func clonePost(p *model.Post) model.Post {
	out := *p
	out.Tags = append([]string(nil), p.Tags...)
	out.Likes = append([]model.Like(nil), p.Likes...)
	out.Comments = append([]model.Comment(nil), p.Comments...)
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if out.Likes == nil {
		out.Likes = []model.Like{}
	}
	if out.Comments == nil {
		out.Comments = []model.Comment{}
	}
	return out
}
