package social

import (
	"time"

	"github.com/euromove/euromove-server-go/database"
	"github.com/euromove/euromove-server-go/logo"
	"github.com/euromove/euromove-server-go/session"
	"github.com/gofiber/fiber/v2"
)

func (SocialLink) TableName() string {
	return "social_links"
}

type SocialLink struct {
	ID           uint64    `json:"id" gorm:"primary_key"`
	PlatformName string    `json:"platform_name"`
	URL          string    `json:"url"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListAll returns every social link, newest first.
func ListAll() []SocialLink {
	db := database.DBConn

	socials := []SocialLink{}
	db.Order("created_at DESC, id DESC").Find(&socials)

	return socials
}

// Contact handles GET /contact.
func Contact(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"socials": ListAll(),
		"logo":    logo.Current(),
		"flash":   session.Flashes(c),
	})
}
