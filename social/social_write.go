package social

import (
	"strconv"
	"strings"

	"github.com/euromove/euromove-server-go/database"
	"github.com/gofiber/fiber/v2"
	"mvdan.cc/xurls/v2"
)

var strictURL = xurls.Strict()

type CreateRequest struct {
	PlatformName string `json:"platform_name" form:"platform_name"`
	URL          string `json:"url" form:"url"`
}

// Create handles POST /admin/social.  The URL has to parse as a real link;
// a broken one ends up in the site footer.
func Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if strings.TrimSpace(req.PlatformName) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Platform name is required")
	}

	url := strings.TrimSpace(req.URL)
	if strictURL.FindString(url) != url || url == "" {
		return fiber.NewError(fiber.StatusBadRequest, "URL must be a valid link including scheme")
	}

	social := SocialLink{
		PlatformName: strings.TrimSpace(req.PlatformName),
		URL:          url,
	}

	db := database.DBConn
	result := db.Create(&social)

	if result.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create social link")
	}

	return c.Status(fiber.StatusOK).JSON(social)
}

// Delete handles DELETE /admin/social/:id.
func Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	db := database.DBConn
	result := db.Delete(&SocialLink{}, id)

	if result.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete social link")
	}

	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Social link not found")
	}

	return c.JSON(fiber.Map{"ret": 0, "status": "Success"})
}
