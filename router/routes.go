package router

import (
	"github.com/euromove/euromove-server-go/admin"
	"github.com/euromove/euromove-server-go/faq"
	"github.com/euromove/euromove-server-go/logo"
	"github.com/euromove/euromove-server-go/post"
	"github.com/euromove/euromove-server-go/session"
	"github.com/euromove/euromove-server-go/social"
	"github.com/euromove/euromove-server-go/status"
	"github.com/euromove/euromove-server-go/workshop"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App) {
	// Public pages.  Every page payload carries the current logo and any
	// pending flash messages.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"logo":  logo.Current(),
			"flash": session.Flashes(c),
		})
	})
	app.Get("/about", post.About)
	app.Get("/opportunities", post.Opportunities)
	app.Get("/privacy", post.Privacy)
	app.Get("/faqs", faq.List)
	app.Post("/faqs", faq.Submit)
	app.Get("/contact", social.Contact)
	app.Get("/workshops", workshop.Workshops)
	app.Post("/book/:workshopid", workshop.Book)

	app.Get("/check_db", status.CheckDB)

	// Admin.  Login and logout sit outside the guard; everything else needs
	// the session flag.
	app.Get("/admin/login", session.GetLogin)
	app.Post("/admin/login", session.Login)
	app.Get("/admin/logout", session.Logout)

	adm := app.Group("/admin", session.AdminRequired())
	adm.Get("/", admin.Dashboard)
	adm.Get("/logo", logo.GetAdminLogo)
	adm.Post("/logo", logo.Upload)
	adm.Post("/post", post.Create)
	adm.Delete("/post/:id", post.Delete)
	adm.Post("/workshop", workshop.Create)
	adm.Delete("/workshop/:id", workshop.Delete)
	adm.Post("/social", social.Create)
	adm.Delete("/social/:id", social.Delete)
	adm.Post("/faq/:id/answer", faq.Answer)
	adm.Delete("/faq/:id", faq.Delete)
}
