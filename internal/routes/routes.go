package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/student-hub/backend/internal/handlers"
	"github.com/student-hub/backend/store"
)

// Deps holds shared dependencies to inject into handlers.
type Deps struct {
	Store     store.PostStore
	UploadDir string
}

// Register mounts all HTTP routes in one place.
// Keep paths lowercase, grouped by resource, and easy to discover.
func Register(app *fiber.App, d Deps) {
	// ============================================================
	// Posts
	// ============================================================
	posts := app.Group("/posts")

	// GET /posts
	// Example:
	//   curl http://localhost:3000/posts
	//   curl "http://localhost:3000/posts?category=AI-ML&q=title:ml"
	posts.Get("/", handlers.GetPostsHandler(d.Store))

	// GET /posts/category/:category (before /:id so it isn't shadowed)
	posts.Get("/category/:category", handlers.GetPostsByCategoryHandler(d.Store))

	// GET /posts/:id
	posts.Get("/:id", handlers.GetPostByIDHandler(d.Store))

	// POST /posts
	// Example:
	//   curl -X POST http://localhost:3000/posts \
	//   -H "Content-Type: application/json" \
	//   -d '{"title":"hello","excerpt":"world","category":"Other"}'
	posts.Post("/", handlers.CreatePostHandler(d.Store))

	// POST /posts/:id/like — toggles
	posts.Post("/:id/like", handlers.LikePostHandler(d.Store))

	// GET  /posts/:id/comments
	// POST /posts/:id/comments
	posts.Get("/:id/comments", handlers.GetCommentsHandler(d.Store))
	posts.Post("/:id/comments", handlers.AddCommentHandler(d.Store))

	// ============================================================
	// Seeding / uploads / resources
	// ============================================================

	// GET /categories — fixed list the composer offers
	app.Get("/categories", handlers.GetCategoriesHandler())

	// POST /initialize — idempotent demo seeding
	app.Post("/initialize", handlers.InitializeHandler(d.Store))

	// POST /upload → {url}
	app.Post("/upload", handlers.UploadHandler(d.UploadDir))
	app.Static("/uploads", d.UploadDir)

	resources := app.Group("/resources")
	resources.Get("/papers", handlers.GetQuestionPapersHandler())
	resources.Get("/textbooks", handlers.GetTextbooksHandler())

	// ============================================================
	// Misc
	// ============================================================

	// Health check
	// GET /healthz → "ok"
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
}
