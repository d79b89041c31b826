package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/student-hub/backend/dto"
	"github.com/student-hub/backend/store"
)

// LikePostHandler godoc
// @Summary      Toggle a like
// @Description  Likes the post for this user, or removes the like if it already exists.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "post id"
// @Param        data  body      dto.LikeRequestDTO true  "liker identity"
// @Success      200   {object}  dto.LikeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /posts/{id}/like [post]
func LikePostHandler(s store.PostStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LikeRequestDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "invalid body"})
		}

		who := identityFrom(c, body.UserID, body.UserName)
		if who.UserID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "user_id is required"})
		}

		liked, count, err := s.ToggleLike(c.Context(), c.Params("id"), who)
		if err != nil {
			return storeErr(c, err)
		}
		return c.JSON(dto.LikeResponse{Liked: liked, LikeCount: count})
	}
}
