package logo

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/euromove/euromove-server-go/database"
	"github.com/euromove/euromove-server-go/session"
	"github.com/euromove/euromove-server-go/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadDir returns where logo files are stored on disk.
func UploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")

	if dir == "" {
		dir = "static/uploads"
	}

	return dir
}

// GetAdminLogo handles GET /admin/logo - the upload form payload, listing
// what's been uploaded so far.
func GetAdminLogo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"logos": List(),
		"logo":  Current(),
		"flash": session.Flashes(c),
	})
}

// Upload handles POST /admin/logo.  Multipart field "logo"; png/jpg/jpeg/gif
// only.  The stored name gets a random hex prefix so concurrent uploads of
// the same file can't collide.
//
// @Summary Upload site logo
// @Tags logo
// @Accept multipart/form-data
// @Param logo formData file true "Logo image"
// @Router /admin/logo [post]
func Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("logo")

	if err != nil {
		session.Flash(c, utils.FLASH_DANGER, "No file part")
		return c.Redirect("/admin/logo", fiber.StatusFound)
	}

	if file.Filename == "" {
		session.Flash(c, utils.FLASH_DANGER, "No selected file")
		return c.Redirect("/admin/logo", fiber.StatusFound)
	}

	if !utils.AllowedFile(file.Filename) {
		session.Flash(c, utils.FLASH_DANGER, "Invalid file type")
		return c.Redirect("/admin/logo", fiber.StatusFound)
	}

	filename := strings.ReplaceAll(uuid.New().String(), "-", "") + "_" + utils.SecureFilename(file.Filename)

	dir := UploadDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create upload directory")
	}

	if err := c.SaveFile(file, filepath.Join(dir, filename)); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save file")
	}

	logo := Logo{FileName: filename}

	db := database.DBConn
	result := db.Create(&logo)

	if result.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record logo")
	}

	session.Flash(c, utils.FLASH_SUCCESS, "Logo uploaded successfully!")
	return c.Redirect("/admin/logo", fiber.StatusFound)
}
