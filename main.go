package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/euromove/euromove-server-go/database"
	"github.com/euromove/euromove-server-go/faq"
	"github.com/euromove/euromove-server-go/logo"
	"github.com/euromove/euromove-server-go/misc"
	"github.com/euromove/euromove-server-go/post"
	"github.com/euromove/euromove-server-go/router"
	"github.com/euromove/euromove-server-go/session"
	"github.com/euromove/euromove-server-go/social"
	"github.com/euromove/euromove-server-go/workshop"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Without the password hash nobody can ever log in to the admin panel,
	// so refuse to start rather than run a half-working site.
	if os.Getenv("ADMIN_PASSWORD_HASH") == "" {
		fmt.Println("ADMIN_PASSWORD_HASH must be set (bcrypt hash of the admin password)")
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Map this to a standardised error response.
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			return ctx.Status(code).JSON(fiber.Map{
				"error":   code,
				"message": err.Error(),
			})
		},
	})

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Enable CORS - the public pages are read by the site frontend and we don't care who else reads them.
	// Set MaxAge so that OPTIONS preflight requests are cached.
	app.Use(cors.New(cors.Config{
		MaxAge: 86400,
	}))

	app.Use(misc.NewLokiMiddleware(misc.LokiMiddlewareConfig{}))

	database.InitDatabase()

	if database.Dialect() == "mysql" {
		app.Use(database.NewPingMiddleware(database.Config{}))
	}

	// Schema is small enough to keep in step automatically, the same way the
	// previous deployment created it on first run.
	if err := database.DBConn.AutoMigrate(
		&post.Post{},
		&workshop.Workshop{},
		&workshop.Booking{},
		&faq.FAQ{},
		&social.SocialLink{},
		&logo.Logo{},
	); err != nil {
		panic(err)
	}

	if err := os.MkdirAll(logo.UploadDir(), 0755); err != nil {
		panic(err)
	}

	session.Init()
	router.SetupRoutes(app)

	// We can signal to stop using SIGINT.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)

	serverShutdown := make(chan struct{})

	go func() {
		_ = <-c
		fmt.Println("Gracefully shutting down...")
		_ = app.Shutdown()
		serverShutdown <- struct{}{}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8192"
	}

	app.Listen(":" + port)

	<-serverShutdown

	fmt.Println("...exiting")
}
