package faq

import (
	"time"

	"github.com/euromove/euromove-server-go/database"
	"github.com/euromove/euromove-server-go/logo"
	"github.com/euromove/euromove-server-go/session"
	"github.com/euromove/euromove-server-go/utils"
	"github.com/gofiber/fiber/v2"
)

func (FAQ) TableName() string {
	return "faqs"
}

type FAQ struct {
	ID        uint64    `json:"id" gorm:"primary_key"`
	Question  string    `json:"question"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	Answer    *string   `json:"answer"` // Set by an admin; nil until then.
	CreatedAt time.Time `json:"created_at"`
}

// ListAll returns every question, newest first, answered or not.
func ListAll() []FAQ {
	db := database.DBConn

	faqs := []FAQ{}
	db.Order("created_at DESC, id DESC").Find(&faqs)

	return faqs
}

// List handles GET /faqs.
func List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"faqs":  ListAll(),
		"logo":  logo.Current(),
		"flash": session.Flashes(c),
	})
}

// Submit handles POST /faqs.  Form fields user_name, user_email, question -
// all optional, matching the site form, which marks nothing required.
func Submit(c *fiber.Ctx) error {
	faq := FAQ{
		UserName:  c.FormValue("user_name"),
		UserEmail: c.FormValue("user_email"),
		Question:  c.FormValue("question"),
	}

	db := database.DBConn
	db.Create(&faq)

	session.Flash(c, utils.FLASH_SUCCESS, "Your question has been submitted!")
	return c.Redirect("/faqs", fiber.StatusFound)
}
