package workshop

import (
	"time"

	"github.com/euromove/euromove-server-go/database"
	"github.com/euromove/euromove-server-go/logo"
	"github.com/euromove/euromove-server-go/session"
	"github.com/gofiber/fiber/v2"
)

func (Workshop) TableName() string {
	return "workshops"
}

type Workshop struct {
	ID          uint64    `json:"id" gorm:"primary_key"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Location    string    `json:"location"`
	Mode        string    `json:"mode"` // Online or Physical
	ImageFile   *string   `json:"image_file"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Booking) TableName() string {
	return "workshop_bookings"
}

type Booking struct {
	ID         uint64    `json:"id" gorm:"primary_key"`
	WorkshopID uint64    `json:"workshop_id"`
	UserName   string    `json:"user_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	BookedAt   time.Time `json:"booked_at" gorm:"autoCreateTime"`
}

// ListWorkshops returns all workshops ordered by the date column.  The date
// is stored as a string, so this is a lexicographic sort, not a calendar
// one - longstanding site behaviour we keep so listings don't reorder.
func ListWorkshops() []Workshop {
	db := database.DBConn

	workshops := []Workshop{}
	db.Order("date ASC").Find(&workshops)

	return workshops
}

// Workshops handles GET /workshops.
func Workshops(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"workshops": ListWorkshops(),
		"logo":      logo.Current(),
		"flash":     session.Flashes(c),
	})
}
