package status_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/euromove/euromove-server-go/database"
	"github.com/euromove/euromove-server-go/faq"
	"github.com/euromove/euromove-server-go/logo"
	"github.com/euromove/euromove-server-go/post"
	"github.com/euromove/euromove-server-go/router"
	"github.com/euromove/euromove-server-go/session"
	"github.com/euromove/euromove-server-go/social"
	"github.com/euromove/euromove-server-go/workshop"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestCheckDB(t *testing.T) {
	t.Setenv("DB_DIALECT", "")
	t.Setenv("DB_PATH", "file:"+strings.ReplaceAll(t.Name(), "/", "_")+"?mode=memory&cache=shared")

	database.InitDatabase()
	assert.NoError(t, database.DBConn.AutoMigrate(
		&post.Post{}, &workshop.Workshop{}, &workshop.Booking{},
		&faq.FAQ{}, &social.SocialLink{}, &logo.Logo{},
	))

	session.Init()

	app := fiber.New()
	router.SetupRoutes(app)

	resp, _ := app.Test(httptest.NewRequest("GET", "/check_db", nil))
	assert.Equal(t, 200, resp.StatusCode)

	var result map[string]interface{}
	body, _ := io.ReadAll(resp.Body)
	json.Unmarshal(body, &result)

	assert.Equal(t, float64(0), result["ret"])

	tables, _ := result["tables"].([]interface{})
	names := make(map[string]bool)
	for _, table := range tables {
		names[table.(string)] = true
	}

	for _, expected := range []string{"posts", "workshops", "workshop_bookings", "faqs", "social_links", "logos"} {
		assert.True(t, names[expected], expected)
	}
}
