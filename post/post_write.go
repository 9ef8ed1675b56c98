package post

import (
	"strconv"
	"strings"

	"github.com/euromove/euromove-server-go/database"
	"github.com/euromove/euromove-server-go/utils"
	"github.com/gofiber/fiber/v2"
)

type CreateRequest struct {
	Title     string  `json:"title" form:"title"`
	Content   string  `json:"content" form:"content"`
	Category  string  `json:"category" form:"category"`
	ImageFile *string `json:"image_file" form:"image_file"`
}

// Create handles POST /admin/post.  Category is a closed set - a typo here
// would silently drop the post from every public page.
func Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if strings.TrimSpace(req.Title) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Title is required")
	}
	if !utils.ValidCategory(req.Category) {
		return fiber.NewError(fiber.StatusBadRequest, "Category must be one of 'about_us', 'opportunity', 'privacy_policy', 'workshop_info'")
	}

	post := Post{
		Title:     strings.TrimSpace(req.Title),
		Content:   req.Content,
		Category:  req.Category,
		ImageFile: req.ImageFile,
	}

	db := database.DBConn
	result := db.Create(&post)

	if result.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create post")
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

// Delete handles DELETE /admin/post/:id.
func Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	db := database.DBConn
	result := db.Delete(&Post{}, id)

	if result.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete post")
	}

	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Post not found")
	}

	return c.JSON(fiber.Map{"ret": 0, "status": "Success"})
}
