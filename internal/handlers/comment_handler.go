package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/student-hub/backend/dto"
	"github.com/student-hub/backend/store"
)

// GetCommentsHandler godoc
// @Summary      List comments on a post
// @Description  Insertion order, empty array when there are none.
// @Tags         comments
// @Produce      json
// @Param        id   path      string  true  "post id"
// @Success      200  {array}   model.Comment
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id}/comments [get]
func GetCommentsHandler(s store.PostStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		comments, err := s.ListComments(c.Context(), c.Params("id"))
		if err != nil {
			return storeErr(c, err)
		}
		return c.JSON(comments)
	}
}

// AddCommentHandler godoc
// @Summary      Add a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "post id"
// @Param        data  body      dto.CreateCommentDTO true  "comment"
// @Success      201   {object}  model.Comment
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /posts/{id}/comments [post]
func AddCommentHandler(s store.PostStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CreateCommentDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "invalid body"})
		}

		who := identityFrom(c, body.UserID, body.UserName)
		com, err := s.AddComment(c.Context(), c.Params("id"), who, body.Text)
		if err != nil {
			return storeErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(com)
	}
}
