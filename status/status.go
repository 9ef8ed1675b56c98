package status

import (
	"github.com/euromove/euromove-server-go/database"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CheckDB handles GET /check_db.  Operational check only: confirms we can
// reach the database and reports the table names from the schema catalog.
//
// @Summary Database connectivity check
// @Tags status
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /check_db [get]
func CheckDB(c *fiber.Ctx) error {
	db := database.DBConn

	tables := []string{}

	var result *gorm.DB
	if database.Dialect() == "mysql" {
		result = db.Raw("SELECT table_name FROM information_schema.tables WHERE table_schema = DATABASE()").Scan(&tables)
	} else {
		result = db.Raw("SELECT name FROM sqlite_master WHERE type = 'table'").Scan(&tables)
	}

	if result.Error != nil {
		return c.JSON(fiber.Map{
			"ret":    1,
			"status": "Database error: " + result.Error.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"ret":    0,
		"status": "Database connected!",
		"tables": tables,
	})
}
