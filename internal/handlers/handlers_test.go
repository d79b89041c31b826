package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/student-hub/backend/dto"
	"github.com/student-hub/backend/internal/routes"
	"github.com/student-hub/backend/model"
	"github.com/student-hub/backend/store"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	routes.Register(app, routes.Deps{
		Store:     store.NewMemoryStore(),
		UploadDir: t.TempDir(),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func initialize(t *testing.T, app *fiber.App) {
	t.Helper()
	resp, raw := doJSON(t, app, http.MethodPost, "/initialize", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
}

func TestInitializeIsIdempotent(t *testing.T) {
	app := newApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/initialize", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var first dto.InitializeResponse
	require.NoError(t, json.Unmarshal(raw, &first))
	assert.EqualValues(t, 8, first.Count)

	resp, raw = doJSON(t, app, http.MethodPost, "/initialize", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var second dto.InitializeResponse
	require.NoError(t, json.Unmarshal(raw, &second))
	assert.EqualValues(t, 8, second.Count)
	assert.Equal(t, "Posts already initialized", second.Message)
}

func TestListAndFilterPosts(t *testing.T) {
	app := newApp(t)
	initialize(t, app)

	resp, raw := doJSON(t, app, http.MethodGet, "/posts", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var posts []model.Post
	require.NoError(t, json.Unmarshal(raw, &posts))
	require.Len(t, posts, 8)
	assert.Equal(t, "1", posts[0].ID, "newest first")

	// Server-side narrowing through the same filter the client uses.
	resp, raw = doJSON(t, app, http.MethodGet, "/posts?q=title:machine", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "1", posts[0].ID)

	resp, raw = doJSON(t, app, http.MethodGet, "/posts?category=Career", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "5", posts[0].ID)
}

func TestGetPostByID(t *testing.T) {
	app := newApp(t)
	initialize(t, app)

	resp, raw := doJSON(t, app, http.MethodGet, "/posts/3", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var post model.Post
	require.NoError(t, json.Unmarshal(raw, &post))
	assert.Equal(t, "Telecommunications", post.Category)

	resp, raw = doJSON(t, app, http.MethodGet, "/posts/nonexistent", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &e))
	assert.Equal(t, "Post not found", e.Detail)
}

func TestCategoryEndpointFoldsCase(t *testing.T) {
	app := newApp(t)
	initialize(t, app)

	_, lowerRaw := doJSON(t, app, http.MethodGet, "/posts/category/ai-ml", nil)
	_, upperRaw := doJSON(t, app, http.MethodGet, "/posts/category/AI-ML", nil)
	assert.JSONEq(t, string(upperRaw), string(lowerRaw))

	var posts []model.Post
	require.NoError(t, json.Unmarshal(lowerRaw, &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "1", posts[0].ID)
}

func TestLikeToggleEndpoint(t *testing.T) {
	app := newApp(t)
	initialize(t, app)

	body := dto.LikeRequestDTO{UserID: "u1", UserName: "Alice"}

	resp, raw := doJSON(t, app, http.MethodPost, "/posts/1/like", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var like dto.LikeResponse
	require.NoError(t, json.Unmarshal(raw, &like))
	assert.True(t, like.Liked)
	assert.Equal(t, 3, like.LikeCount)

	resp, raw = doJSON(t, app, http.MethodPost, "/posts/1/like", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &like))
	assert.False(t, like.Liked)
	assert.Equal(t, 2, like.LikeCount)

	resp, _ = doJSON(t, app, http.MethodPost, "/posts/nonexistent/like", body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/posts/1/like", dto.LikeRequestDTO{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreatePostEndpoint(t *testing.T) {
	app := newApp(t)
	initialize(t, app)

	resp, raw := doJSON(t, app, http.MethodPost, "/posts", dto.CreatePostDTO{
		Title:    "New post",
		Excerpt:  "short",
		Content:  "long form",
		Category: "Programming",
		Tags:     []string{"go"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	var created model.Post
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, model.TypePost, created.Type)
	assert.Zero(t, created.LikeCount)

	_, raw = doJSON(t, app, http.MethodGet, "/posts", nil)
	var posts []model.Post
	require.NoError(t, json.Unmarshal(raw, &posts))
	require.Len(t, posts, 9)
	assert.Equal(t, created.ID, posts[0].ID, "created post is prepended")

	resp, _ = doJSON(t, app, http.MethodPost, "/posts", dto.CreatePostDTO{Excerpt: "no title"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateNoteAndJobPosts(t *testing.T) {
	app := newApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/posts", dto.CreatePostDTO{
		Type:        model.TypeNote,
		Title:       "Operating Systems Notes - Scheduling",
		Category:    "Notes",
		DocumentURL: "/uploads/os-scheduling.pdf",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	var note model.Post
	require.NoError(t, json.Unmarshal(raw, &note))
	assert.Equal(t, model.TypeNote, note.Type)
	assert.Equal(t, "/uploads/os-scheduling.pdf", note.DocumentURL)

	resp, raw = doJSON(t, app, http.MethodPost, "/posts", dto.CreatePostDTO{
		Type:         model.TypeJob,
		Title:        "Backend Intern at Initech",
		Category:     "Jobs",
		JobLink:      "https://jobs.initech.example/backend-intern",
		ReferralInfo: "Mail the placement cell for a referral.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	var job model.Post
	require.NoError(t, json.Unmarshal(raw, &job))

	// The stored copy keeps the type-specific fields.
	_, raw = doJSON(t, app, http.MethodGet, "/posts/"+job.ID, nil)
	require.NoError(t, json.Unmarshal(raw, &job))
	assert.Equal(t, model.TypeJob, job.Type)
	assert.Equal(t, "https://jobs.initech.example/backend-intern", job.JobLink)
	assert.Equal(t, "Mail the placement cell for a referral.", job.ReferralInfo)
}

func TestListCategories(t *testing.T) {
	app := newApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var categories []string
	require.NoError(t, json.Unmarshal(raw, &categories))
	assert.Equal(t, model.Categories, categories)
}

func TestCommentEndpoints(t *testing.T) {
	app := newApp(t)
	initialize(t, app)

	resp, raw := doJSON(t, app, http.MethodGet, "/posts/3/comments", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var comments []model.Comment
	require.NoError(t, json.Unmarshal(raw, &comments))
	assert.Empty(t, comments)

	c1 := dto.CreateCommentDTO{UserID: "u1", UserName: "Alice", Text: "first"}
	c2 := dto.CreateCommentDTO{UserID: "u2", UserName: "Bob", Text: "second"}

	resp, _ = doJSON(t, app, http.MethodPost, "/posts/3/comments", c1)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPost, "/posts/3/comments", c2)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	_, raw = doJSON(t, app, http.MethodGet, "/posts/3/comments", nil)
	require.NoError(t, json.Unmarshal(raw, &comments))
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "second", comments[1].Text)

	resp, raw = doJSON(t, app, http.MethodPost, "/posts/3/comments", dto.CreateCommentDTO{UserID: "u1", UserName: "Alice", Text: "  "})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &e))
	assert.NotEmpty(t, e.Detail)

	resp, _ = doJSON(t, app, http.MethodPost, "/posts/nonexistent/comments", c1)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestResourceListings(t *testing.T) {
	app := newApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/resources/papers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var papers []model.QuestionPaper
	require.NoError(t, json.Unmarshal(raw, &papers))
	assert.NotEmpty(t, papers)

	resp, raw = doJSON(t, app, http.MethodGet, "/resources/textbooks", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var books []model.Textbook
	require.NoError(t, json.Unmarshal(raw, &books))
	assert.NotEmpty(t, books)
}

func TestHealthz(t *testing.T) {
	app := newApp(t)
	resp, raw := doJSON(t, app, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(raw))
}
