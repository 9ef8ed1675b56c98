package faq

import (
	"strconv"
	"strings"

	"github.com/euromove/euromove-server-go/database"
	"github.com/gofiber/fiber/v2"
)

type AnswerRequest struct {
	Answer string `json:"answer" form:"answer"`
}

// Answer handles POST /admin/faq/:id/answer - sets the answer on a visitor
// question.
func Answer(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if strings.TrimSpace(req.Answer) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Answer is required")
	}

	db := database.DBConn
	result := db.Model(&FAQ{}).Where("id = ?", id).Update("answer", req.Answer)

	if result.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to answer question")
	}

	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Question not found")
	}

	return c.JSON(fiber.Map{"ret": 0, "status": "Success"})
}

// Delete handles DELETE /admin/faq/:id.
func Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	db := database.DBConn
	result := db.Delete(&FAQ{}, id)

	if result.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete question")
	}

	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Question not found")
	}

	return c.JSON(fiber.Map{"ret": 0, "status": "Success"})
}
