package handlers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/student-hub/backend/dto"
)

// UploadHandler godoc
// @Summary      Upload an image or document for a post
// @Description  Stores the file under the upload dir and returns a retrievable URL.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "file"
// @Success      200   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /upload [post]
func UploadHandler(uploadDir string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "file is required"})
		}

		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: err.Error()})
		}

		// Random name, original extension only.
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		name := uuid.NewString() + ext
		if err := c.SaveFile(fh, filepath.Join(uploadDir, name)); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: err.Error()})
		}

		return c.JSON(dto.UploadResponse{URL: "/uploads/" + name})
	}
}
