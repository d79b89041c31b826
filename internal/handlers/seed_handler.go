package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/student-hub/backend/bootstrap"
	"github.com/student-hub/backend/dto"
	"github.com/student-hub/backend/store"
)

// InitializeHandler godoc
// @Summary      Seed demo posts
// @Description  Inserts the sample feed once; a no-op when posts already exist.
// @Tags         posts
// @Produce      json
// @Success      200  {object}  dto.InitializeResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /initialize [post]
func InitializeHandler(s store.PostStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		seeded, count, err := s.Seed(c.Context(), bootstrap.SamplePosts())
		if err != nil {
			return storeErr(c, err)
		}
		msg := "Posts already initialized"
		if seeded {
			msg = "Posts initialized successfully"
		}
		return c.JSON(dto.InitializeResponse{Message: msg, Count: count})
	}
}
