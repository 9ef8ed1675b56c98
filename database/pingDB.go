package database

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
}

func NewPingMiddleware(config Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		db, _ := DBConn.DB()

		// Ping the connection to make sure it's ok and re-establish if need be.  Long-lived MySQL connections
		// can go stale, at which point every request fails until we reconnect.
		err := db.Ping()

		if err != nil {
			fmt.Println("Ping failed, reconnecting")
			db.Close()
			InitDatabase()
			db, _ := DBConn.DB()
			err := db.Ping()

			if err != nil {
				fmt.Println("Reconnect failed")
				os.Exit(1)
			}
		}

		return c.Next()
	}
}
