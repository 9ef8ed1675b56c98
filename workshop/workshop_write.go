package workshop

import (
	"strconv"
	"strings"

	"github.com/euromove/euromove-server-go/database"
	"github.com/euromove/euromove-server-go/session"
	"github.com/euromove/euromove-server-go/utils"
	"github.com/gofiber/fiber/v2"
)

// Book handles POST /book/:workshopid.  Form fields user_name, email, phone.
// The booking is recorded as-is: no existence check on the workshop, no
// duplicate or capacity rules.  Staff chase up by email.
//
// @Summary Book a workshop
// @Tags workshop
// @Accept x-www-form-urlencoded
// @Param workshopid path integer true "Workshop ID"
// @Router /book/{workshopid} [post]
func Book(c *fiber.Ctx) error {
	workshopID, err := strconv.ParseUint(c.Params("workshopid"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid workshop ID")
	}

	booking := Booking{
		WorkshopID: workshopID,
		UserName:   c.FormValue("user_name"),
		Email:      c.FormValue("email"),
		Phone:      c.FormValue("phone"),
	}

	db := database.DBConn
	db.Create(&booking)

	session.Flash(c, utils.FLASH_SUCCESS, "Workshop booked successfully!")
	return c.Redirect("/workshops", fiber.StatusFound)
}

type CreateRequest struct {
	Title       string  `json:"title" form:"title"`
	Description string  `json:"description" form:"description"`
	Date        string  `json:"date" form:"date"`
	Location    string  `json:"location" form:"location"`
	Mode        string  `json:"mode" form:"mode"`
	ImageFile   *string `json:"image_file" form:"image_file"`
}

// Create handles POST /admin/workshop.
func Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if strings.TrimSpace(req.Title) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Title is required")
	}
	if !utils.ValidMode(req.Mode) {
		return fiber.NewError(fiber.StatusBadRequest, "Mode must be 'Online' or 'Physical'")
	}

	workshop := Workshop{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Mode:        req.Mode,
		ImageFile:   req.ImageFile,
	}

	db := database.DBConn
	result := db.Create(&workshop)

	if result.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create workshop")
	}

	return c.Status(fiber.StatusOK).JSON(workshop)
}

// Delete handles DELETE /admin/workshop/:id.  Bookings against the workshop
// are left in place; they're the contact record.
func Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	db := database.DBConn
	result := db.Delete(&Workshop{}, id)

	if result.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete workshop")
	}

	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Workshop not found")
	}

	return c.JSON(fiber.Map{"ret": 0, "status": "Success"})
}
