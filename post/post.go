package post

import (
	"time"

	"github.com/euromove/euromove-server-go/database"
	"github.com/euromove/euromove-server-go/logo"
	"github.com/euromove/euromove-server-go/session"
	"github.com/euromove/euromove-server-go/utils"
	"github.com/gofiber/fiber/v2"
)

func (Post) TableName() string {
	return "posts"
}

type Post struct {
	ID        uint64    `json:"id" gorm:"primary_key"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"` // about_us, opportunity, privacy_policy, workshop_info
	ImageFile *string   `json:"image_file"`
	CreatedAt time.Time `json:"created_at"`
}

// ListByCategory returns all posts in a category, newest first.
func ListByCategory(category string) []Post {
	db := database.DBConn

	posts := []Post{}
	db.Where("category = ?", category).Order("created_at DESC, id DESC").Find(&posts)

	return posts
}

// ListAll returns every post, newest first, for the admin dashboard.
func ListAll() []Post {
	db := database.DBConn

	posts := []Post{}
	db.Order("created_at DESC, id DESC").Find(&posts)

	return posts
}

func categoryPage(c *fiber.Ctx, category string) error {
	return c.JSON(fiber.Map{
		"content": ListByCategory(category),
		"logo":    logo.Current(),
		"flash":   session.Flashes(c),
	})
}

// About handles GET /about.
func About(c *fiber.Ctx) error {
	return categoryPage(c, utils.CATEGORY_ABOUT_US)
}

// Opportunities handles GET /opportunities.
func Opportunities(c *fiber.Ctx) error {
	return categoryPage(c, utils.CATEGORY_OPPORTUNITY)
}

// Privacy handles GET /privacy.
func Privacy(c *fiber.Ctx) error {
	return categoryPage(c, utils.CATEGORY_PRIVACY_POLICY)
}
