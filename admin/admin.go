package admin

import (
	"github.com/euromove/euromove-server-go/faq"
	"github.com/euromove/euromove-server-go/logo"
	"github.com/euromove/euromove-server-go/post"
	"github.com/euromove/euromove-server-go/session"
	"github.com/euromove/euromove-server-go/social"
	"github.com/euromove/euromove-server-go/workshop"
	"github.com/gofiber/fiber/v2"
)

// Dashboard handles GET /admin - one read across everything the panel
// manages.  Reached only through the session guard in the router.
//
// @Summary Admin dashboard
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin [get]
func Dashboard(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"posts":     post.ListAll(),
		"workshops": workshop.ListWorkshops(),
		"faqs":      faq.ListAll(),
		"socials":   social.ListAll(),
		"logos":     logo.List(),
		"flash":     session.Flashes(c),
	})
}
