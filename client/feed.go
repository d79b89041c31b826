// Package client is the view-side controller for the feed: it keeps a
// local copy of the listing, applies like actions to it optimistically,
// and treats the server as the source of truth on the next refresh.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/student-hub/backend/internal/feedquery"
	"github.com/student-hub/backend/model"
)

type Feed struct {
	base     string
	http     *http.Client
	limiter  *rate.Limiter
	identity model.Like

	mu    sync.Mutex
	posts []model.Post
}

func New(baseURL string, identity model.Like) *Feed {
	return &Feed{
		base:     baseURL,
		http:     &http.Client{Timeout: 10 * time.Second},
		limiter:  rate.NewLimiter(rate.Limit(10), 10),
		identity: identity,
	}
}

// Open seeds the server if needed and loads the listing. Safe to call
// again; /initialize is a no-op once posts exist.
func (f *Feed) Open(ctx context.Context) error {
	var initResp struct {
		Message string `json:"message"`
		Count   int64  `json:"count"`
	}
	if err := f.do(ctx, http.MethodPost, "/initialize", nil, &initResp); err != nil {
		return err
	}
	return f.Refresh(ctx)
}

// Refresh replaces the local copy with the server listing.
func (f *Feed) Refresh(ctx context.Context) error {
	var posts []model.Post
	if err := f.do(ctx, http.MethodGet, "/posts", nil, &posts); err != nil {
		return err
	}
	f.mu.Lock()
	f.posts = posts
	f.mu.Unlock()
	return nil
}

// Posts returns a copy of the local listing.
func (f *Feed) Posts() []model.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Post(nil), f.posts...)
}

// Visible narrows the local listing for display.
func (f *Feed) Visible(category, search string) []model.Post {
	return feedquery.Apply(f.Posts(), feedquery.Options{Category: category, Search: search})
}

// ToggleLike is optimistic: the local copy is updated with the predicted
// result immediately and the network call is issued without waiting.
// There is no rollback if the call fails; the next Refresh reconciles.
func (f *Feed) ToggleLike(postID string) (liked bool, likeCount int, ok bool) {
	f.mu.Lock()
	for i := range f.posts {
		p := &f.posts[i]
		if p.ID != postID {
			continue
		}
		ok = true
		liked = true
		for j, l := range p.Likes {
			if l.UserID == f.identity.UserID {
				p.Likes = append(p.Likes[:j], p.Likes[j+1:]...)
				liked = false
				break
			}
		}
		if liked {
			p.Likes = append(p.Likes, f.identity)
		}
		p.LikeCount = len(p.Likes)
		likeCount = p.LikeCount
		break
	}
	f.mu.Unlock()
	if !ok {
		return false, 0, false
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		body := map[string]string{"user_id": f.identity.UserID, "user_name": f.identity.UserName}
		if err := f.do(ctx, http.MethodPost, "/posts/"+postID+"/like", body, nil); err != nil {
			log.Printf("like call failed for post %s: %v", postID, err)
		}
	}()
	return liked, likeCount, true
}

// AddComment is pessimistic: it waits for the server acknowledgment and
// then re-fetches the post's comments.
func (f *Feed) AddComment(ctx context.Context, postID, text string) ([]model.Comment, error) {
	body := map[string]string{
		"user_id":   f.identity.UserID,
		"user_name": f.identity.UserName,
		"text":      text,
	}
	if err := f.do(ctx, http.MethodPost, "/posts/"+postID+"/comments", body, nil); err != nil {
		return nil, err
	}

	var comments []model.Comment
	if err := f.do(ctx, http.MethodGet, "/posts/"+postID+"/comments", nil, &comments); err != nil {
		return nil, err
	}

	f.mu.Lock()
	for i := range f.posts {
		if f.posts[i].ID == postID {
			f.posts[i].Comments = comments
			break
		}
	}
	f.mu.Unlock()
	return comments, nil
}

func (f *Feed) do(ctx context.Context, method, path string, body any, out any) error {
	if err := f.limiter.Wait(ctx); err != nil {
		return err
	}

	var buf *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewBuffer(b)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, f.base+path, buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var e struct {
			Detail string `json:"detail"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Detail != "" {
			return fmt.Errorf("%s %s: %s", method, path, e.Detail)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
