package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/student-hub/backend/dto"
	"github.com/student-hub/backend/internal/feedquery"
	"github.com/student-hub/backend/model"
	"github.com/student-hub/backend/store"
)

// GetPostsHandler godoc
// @Summary      List posts
// @Description  Full listing, newest first. Optional category/q narrow the result server-side.
// @Tags         posts
// @Produce      json
// @Param        category  query     string  false  "category or 'all'"
// @Param        q         query     string  false  "search term, optionally prefixed title:/tag:/user:"
// @Success      200       {array}   model.Post
// @Failure      500       {object}  dto.ErrorResponse
// @Router       /posts [get]
func GetPostsHandler(s store.PostStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		posts, err := s.List(c.Context())
		if err != nil {
			return storeErr(c, err)
		}
		posts = feedquery.Apply(posts, feedquery.Options{
			Category: c.Query("category", feedquery.CategoryAll),
			Search:   c.Query("q"),
		})
		return c.JSON(posts)
	}
}

// GetPostByIDHandler godoc
// @Summary      Get one post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "post id"
// @Success      200  {object}  model.Post
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id} [get]
func GetPostByIDHandler(s store.PostStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		post, err := s.Get(c.Context(), c.Params("id"))
		if err != nil {
			return storeErr(c, err)
		}
		return c.JSON(post)
	}
}

// GetPostsByCategoryHandler godoc
// @Summary      List posts in a category
// @Description  Case-insensitive exact match; empty array when nothing matches.
// @Tags         posts
// @Produce      json
// @Param        category  path      string  true  "category"
// @Success      200       {array}   model.Post
// @Router       /posts/category/{category} [get]
func GetPostsByCategoryHandler(s store.PostStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		posts, err := s.ListByCategory(c.Context(), c.Params("category"))
		if err != nil {
			return storeErr(c, err)
		}
		return c.JSON(posts)
	}
}

// GetCategoriesHandler godoc
// @Summary      List post categories
// @Description  The fixed set of categories the composer offers.
// @Tags         posts
// @Produce      json
// @Success      200  {array}  string
// @Router       /categories [get]
func GetCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.Categories)
	}
}

// CreatePostHandler godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        data  body      dto.CreatePostDTO  true  "post draft"
// @Success      201   {object}  model.Post
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /posts [post]
func CreatePostHandler(s store.PostStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CreatePostDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "invalid body"})
		}
		if body.Title == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "title is required"})
		}

		// Attribution comes from the verified identity when present.
		who := identityFrom(c, "currentuser", "Current User")

		post, err := s.Create(c.Context(), model.PostDraft{
			Type:           body.Type,
			Title:          body.Title,
			Excerpt:        body.Excerpt,
			Content:        body.Content,
			Category:       body.Category,
			Tags:           body.Tags,
			Author:         who.UserName,
			AuthorUsername: who.UserID,
			Image:          body.Image,
			DocumentURL:    body.DocumentURL,
			JobLink:        body.JobLink,
			ReferralInfo:   body.ReferralInfo,
		})
		if err != nil {
			return storeErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(post)
	}
}
