package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/student-hub/backend/bootstrap"
)

// Static reference listings. These pages are read-only in the app, so
// the seed content is served directly.

// GetQuestionPapersHandler godoc
// @Summary      List question papers
// @Tags         resources
// @Produce      json
// @Success      200  {array}  model.QuestionPaper
// @Router       /resources/papers [get]
func GetQuestionPapersHandler() fiber.Handler {
	papers := bootstrap.SampleQuestionPapers()
	return func(c *fiber.Ctx) error {
		return c.JSON(papers)
	}
}

// GetTextbooksHandler godoc
// @Summary      List textbooks
// @Tags         resources
// @Produce      json
// @Success      200  {array}  model.Textbook
// @Router       /resources/textbooks [get]
func GetTextbooksHandler() fiber.Handler {
	books := bootstrap.SampleTextbooks()
	return func(c *fiber.Ctx) error {
		return c.JSON(books)
	}
}
